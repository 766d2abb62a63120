package serrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

var errSample = NewError("SAMPLE", "sample failure", "Errors.Sample")

func TestBaseError_IsMatchesByCode(t *testing.T) {
	wrapped := errSample.Wrap(errors.New("io timeout"))
	require.ErrorIs(t, wrapped, errSample)
	require.ErrorIs(t, fmt.Errorf("outer: %w", wrapped), errSample)

	other := NewError("OTHER", "sample failure", "Errors.Sample")
	require.NotErrorIs(t, wrapped, other)
}

func TestBaseError_WrapKeepsCause(t *testing.T) {
	cause := errors.New("io timeout")
	wrapped := errSample.Wrap(cause)
	require.ErrorIs(t, wrapped, cause)
	require.Contains(t, wrapped.Error(), "SAMPLE")
	require.Contains(t, wrapped.Error(), "io timeout")
}

func TestBaseError_WithTemplateDataDoesNotMutateOriginal(t *testing.T) {
	templated := errSample.WithTemplateData(map[string]string{"Reason": "too big"})
	require.Equal(t, "too big", templated.TemplateData["Reason"])
	require.Nil(t, errSample.TemplateData)
	require.ErrorIs(t, templated, errSample)
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, "SAMPLE", CodeOf(errSample))
	require.Equal(t, "SAMPLE", CodeOf(fmt.Errorf("outer: %w", errSample)))
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.Equal(t, "", CodeOf(nil))
}
