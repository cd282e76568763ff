package models

import (
	"encoding/json"
	"time"
)

const (
	ProjectStatusUploaded  = "uploaded"
	ProjectStatusAnalyzing = "analyzing"
	ProjectStatusAnalyzed  = "analyzed"
	ProjectStatusFailed    = "failed"
)

// Project is an uploaded artifact owned by exactly one user. Analysis holds
// the raw analyzer result blob and is returned to clients untouched.
type Project struct {
	ID        int64           `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"user_id"`
	FileName  string          `db:"file_name" json:"file_name"`
	FilePath  string          `db:"file_path" json:"file_path"`
	FileSize  int64           `db:"file_size" json:"file_size"`
	Framework string          `db:"framework" json:"framework"`
	Analysis  json.RawMessage `db:"analysis" json:"analysis,omitempty"`
	Status    string          `db:"status" json:"status"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
