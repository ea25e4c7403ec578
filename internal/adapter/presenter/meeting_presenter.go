package presenter

import (
	"strings"
	"time"
	"unicode/utf8"

	dto "github.com/johnquangdev/meeting-scribe/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	aiuc "github.com/johnquangdev/meeting-scribe/internal/usecase/ai"
)

// DateLayout is how meeting dates are displayed, e.g. "Mar 04, 2025"
const DateLayout = "Jan 02, 2006"

// PreviewLength is the number of characters shown in listings
const PreviewLength = 200

// FormatDate renders a meeting date, or "" when unknown
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(DateLayout)
}

// Truncate shortens s to at most n characters, adding an ellipsis when cut
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "..."
}

// ToMeetingListItem converts a Meeting entity to a listing row
func ToMeetingListItem(m *entities.Meeting) *dto.MeetingListItem {
	if m == nil {
		return nil
	}
	preview := m.Summary
	if preview == "" {
		preview = m.Transcript
	}
	return &dto.MeetingListItem{
		ID:         m.ID,
		Title:      m.Title,
		Date:       FormatDate(m.CreatedAt),
		Created:    m.CreatedAt,
		Preview:    Truncate(preview, PreviewLength),
		Provider:   m.Provider.String(),
		Processing: !m.HasSummary(),
	}
}

// ToMeetingListResponse converts meetings to the listing response
func ToMeetingListResponse(meetings []*entities.Meeting, query string) *dto.MeetingListResponse {
	items := make([]*dto.MeetingListItem, len(meetings))
	for i, m := range meetings {
		items[i] = ToMeetingListItem(m)
	}
	return &dto.MeetingListResponse{
		Query:    query,
		Total:    len(items),
		Meetings: items,
	}
}

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *dto.MeetingResponse {
	if m == nil {
		return nil
	}
	return &dto.MeetingResponse{
		ID:         m.ID,
		Title:      m.Title,
		Date:       FormatDate(m.CreatedAt),
		Created:    m.CreatedAt,
		Summary:    m.Summary,
		Sections:   aiuc.Sections(m.Summary),
		Transcript: m.Transcript,
		Provider:   m.Provider.String(),
	}
}
