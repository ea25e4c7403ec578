package meeting

import "time"

// MeetingListItem represents one row of the meeting listing
type MeetingListItem struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Date     string     `json:"date,omitempty"`
	Created  *time.Time `json:"created_at,omitempty"`
	Preview  string     `json:"preview"`
	Provider string     `json:"provider"`
	// Processing is true while the summary has not been written
	Processing bool `json:"processing"`
}

// MeetingListResponse represents the meeting listing
type MeetingListResponse struct {
	Query    string             `json:"query,omitempty"`
	Total    int                `json:"total"`
	Meetings []*MeetingListItem `json:"meetings"`
}

// MeetingResponse represents a finished meeting
type MeetingResponse struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Date       string            `json:"date,omitempty"`
	Created    *time.Time        `json:"created_at,omitempty"`
	Summary    string            `json:"summary"`
	Sections   map[string]string `json:"sections,omitempty"`
	Transcript string            `json:"transcript"`
	Provider   string            `json:"provider"`
}

// ChatResponse represents a chat answer
type ChatResponse struct {
	Reply    string `json:"reply"`
	Provider string `json:"provider,omitempty"`
}

// HealthResponse represents the service status
type HealthResponse struct {
	Status      string   `json:"status"`
	Environment string   `json:"environment"`
	Providers   []string `json:"providers"`
	Transcriber string   `json:"transcriber,omitempty"`
	Storage     string   `json:"storage"`
}
