package models

import "time"

// Dataset is an uploaded batch of support question/answer records that feeds
// the chat knowledge base.
type Dataset struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	RecordCount int64     `db:"record_count" json:"record_count"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	UploadedAt  time.Time `db:"uploaded_at" json:"uploaded_at"`
}

// KnowledgeEntry is one question/answer pair. Source carries the owning
// dataset's name.
type KnowledgeEntry struct {
	ID        int64  `db:"id" json:"id"`
	DatasetID int64  `db:"dataset_id" json:"dataset_id"`
	Input     string `db:"input" json:"input"`
	Output    string `db:"output" json:"output"`
	Source    string `db:"source" json:"source"`
}

// SearchResult is a knowledge entry scored against a query.
type SearchResult struct {
	Input      string  `json:"input"`
	Output     string  `json:"output"`
	Similarity float64 `json:"similarity"`
	Source     string  `json:"source"`
}
