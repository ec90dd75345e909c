package types

import "time"

// AIQuery is the request body of /ai/query.
type AIQuery struct {
	Query     string         `json:"query"`
	Context   map[string]any `json:"context,omitempty"`
	QueryType string         `json:"query_type,omitempty"`
}

// AIAnswer is one processed assistant query with its response.
type AIAnswer struct {
	ID         string         `json:"id,omitempty"`
	UserID     UserID         `json:"user_id,omitempty"`
	Query      string         `json:"query"`
	Response   string         `json:"response"`
	QueryType  string         `json:"query_type,omitempty"`
	Context    map[string]any `json:"context_data,omitempty"`
	Confidence float64        `json:"confidence_score,omitempty"`
	CreatedAt  time.Time      `json:"created_at,omitzero"`
}

// AIInsight is one generated business insight.
type AIInsight struct {
	ID             string         `json:"id,omitempty"`
	Type           string         `json:"insight_type"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Data           map[string]any `json:"data,omitempty"`
	Priority       string         `json:"priority,omitempty"`
	ActionRequired bool           `json:"action_required"`
	CreatedAt      time.Time      `json:"created_at,omitzero"`
}

// AIRecommendation is one generated action recommendation.
type AIRecommendation struct {
	ID          string   `json:"id,omitempty"`
	Type        string   `json:"recommendation_type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImpactScore float64  `json:"impact_score"`
	Difficulty  string   `json:"implementation_difficulty,omitempty"`
	Outcome     string   `json:"expected_outcome,omitempty"`
	ActionItems []string `json:"action_items,omitempty"`
}

// AIFeedback rates a previous assistant answer.
type AIFeedback struct {
	QueryID string `json:"query_id"`
	Helpful bool   `json:"helpful"`
	Comment string `json:"comment,omitempty"`
}
