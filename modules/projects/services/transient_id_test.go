package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTransientIDMap_SentinelResolvesToNoParent(t *testing.T) {
	m := newTransientIDMap()
	id, ok := m.resolve(NoParent)
	require.True(t, ok)
	require.Nil(t, id)
}

func TestTransientIDMap_UnknownReferenceDoesNotResolve(t *testing.T) {
	m := newTransientIDMap()
	id, ok := m.resolve(TransientID(3))
	require.False(t, ok)
	require.Nil(t, id)
}

func TestTransientIDMap_BindThenResolve(t *testing.T) {
	m := newTransientIDMap()
	persisted := uuid.New()
	m.bind(TransientID(1), persisted)

	id, ok := m.resolve(TransientID(1))
	require.True(t, ok)
	require.NotNil(t, id)
	require.Equal(t, persisted, *id)
}

func TestTransientIDMap_BindingSentinelIsIgnored(t *testing.T) {
	m := newTransientIDMap()
	m.bind(NoParent, uuid.New())

	id, ok := m.resolve(NoParent)
	require.True(t, ok)
	require.Nil(t, id)
}
