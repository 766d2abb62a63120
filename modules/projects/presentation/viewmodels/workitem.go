package viewmodels

import "time"

type WorkItemNode struct {
	ID           string         `json:"id"`
	Content      string         `json:"content"`
	Deadline     *time.Time     `json:"deadline,omitempty"`
	Status       string         `json:"status"`
	Progress     int            `json:"progress"`
	Order        int            `json:"order"`
	AuthorID     string         `json:"author_id"`
	RegisteredAt time.Time      `json:"registered_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Children     []WorkItemNode `json:"children"`
}

type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	AuthorID     string    `json:"author_id"`
	CompanyCode  string    `json:"company_code,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
