package models

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CustomerListResponse struct {
	Customers []Customer `json:"customers"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
}

type DeploymentListResponse struct {
	Deployments []Deployment `json:"deployments"`
}

type TransactionListResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type QuoteListResponse struct {
	Quotes []Quote `json:"quotes"`
}

type ChatSessionListResponse struct {
	Sessions []ChatSession `json:"sessions"`
}

type ChatMessagePairResponse struct {
	UserMessage      ChatMessage `json:"user_message"`
	AssistantMessage ChatMessage `json:"assistant_message"`
}

type CommandListResponse struct {
	Commands []Command `json:"commands"`
}

type BlogListResponse struct {
	Posts []BlogPost `json:"posts"`
}

type DatasetListResponse struct {
	Datasets []Dataset `json:"datasets"`
	Total    int       `json:"total"`
}

type DatasetUploadResponse struct {
	Dataset      Dataset `json:"dataset"`
	RecordsAdded int     `json:"records_added"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

type FeedbackStatsResponse struct {
	TotalFeedback    int64   `json:"total_feedback"`
	PositiveFeedback int64   `json:"positive_feedback"`
	NegativeFeedback int64   `json:"negative_feedback"`
	AverageRating    float64 `json:"average_rating"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
