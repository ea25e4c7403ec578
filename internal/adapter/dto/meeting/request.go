package meeting

// ChatRequest represents a follow-up question about a meeting
type ChatRequest struct {
	Message  string `json:"message" validate:"required"`
	Provider string `json:"provider,omitempty"`
}

// ListMeetingsRequest represents the listing query
type ListMeetingsRequest struct {
	Query string `query:"q"`
}
