package workitem

import "time"

// CandidateItem is one entry of an externally produced flat work breakdown,
// either submitted by a user or generated by the AI collaborator. ParentRef
// is a 1-based position into the same candidate array; 0 means "root".
// Candidates exist only for the duration of one import call.
type CandidateItem struct {
	Content   string     `json:"content" validate:"required"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	ParentRef int        `json:"parent_ref"`
	Order     int        `json:"order"`
}
