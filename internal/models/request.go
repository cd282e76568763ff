package models

import "encoding/json"

// Request bodies double as the insert schemas: every create endpoint binds
// exactly the allow-listed field subset, so server-managed columns (ids,
// timestamps) cannot be supplied by a client. Unknown JSON fields are
// silently dropped by the decoder.

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Status  string `json:"status" binding:"omitempty,oneof=active inactive prospect"`
}

type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Status  string `json:"status" binding:"required,oneof=active inactive prospect"`
}

type CreateProjectRequest struct {
	FileName  string `json:"file_name" binding:"required"`
	FilePath  string `json:"file_path" binding:"required"`
	FileSize  int64  `json:"file_size" binding:"omitempty,min=0"`
	Framework string `json:"framework"`
}

type UpdateProjectStatusRequest struct {
	Status   string          `json:"status" binding:"required,oneof=uploaded analyzing analyzed failed"`
	Analysis json.RawMessage `json:"analysis,omitempty"`
}

type CreateDeploymentRequest struct {
	ProjectID int64 `json:"project_id" binding:"required"`
}

type UpdateDeploymentStatusRequest struct {
	Status string   `json:"status" binding:"required,oneof=pending deploying deployed failed"`
	URL    string   `json:"url"`
	Logs   string   `json:"logs"`
	Cost   *float64 `json:"cost"`
}

type CreateTransactionRequest struct {
	Type            string          `json:"type" binding:"required"`
	Amount          float64         `json:"amount" binding:"required"`
	Currency        string          `json:"currency"`
	DeploymentID    *int64          `json:"deployment_id"`
	PaymentIntentID string          `json:"payment_intent_id"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
}

type CreateQuoteRequest struct {
	CustomerID int64   `json:"customer_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	ValidUntil *string `json:"valid_until"` // RFC 3339, optional
	ValidDays  *int    `json:"valid_days" binding:"omitempty,min=1"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending sent accepted rejected"`
}

type PostChatMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type SessionFeedbackRequest struct {
	SessionID    string `json:"session_id" binding:"omitempty,max=128"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback     string `json:"feedback"`
	MessageCount int    `json:"message_count" binding:"omitempty,min=0"`
}

type CreateBlogPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type DatasetRecord struct {
	Input  string `json:"input" binding:"required"`
	Output string `json:"output" binding:"required"`
}

type UploadDatasetRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Records     []DatasetRecord `json:"records" binding:"required,min=1,dive"`
}

type CreateCommandRequest struct {
	Command string `json:"command" binding:"required"`
	Async   bool   `json:"async"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
