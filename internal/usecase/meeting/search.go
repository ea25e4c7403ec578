package meeting

import (
	"context"
	"sort"
	"strings"

	apperrors "github.com/johnquangdev/meeting-scribe/errors"
	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

// List loads every meeting, newest id first. A non-empty query keeps the
// meetings whose title, summary or transcript contains it, ignoring case.
func (s *MeetingService) List(ctx context.Context, query string) ([]*entities.Meeting, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("list", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))

	term := strings.ToLower(strings.TrimSpace(query))
	meetings := make([]*entities.Meeting, 0, len(ids))
	for _, id := range ids {
		m, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, apperrors.ErrStorageFailed("get", err)
		}
		if term == "" || Matches(m, term) {
			meetings = append(meetings, m)
		}
	}

	if s.order == config.OrderByCreated {
		sortByCreated(meetings)
	}
	return meetings, nil
}

// Matches reports whether the lowercase term is a substring of the meeting's
// lowercase title, summary or transcript
func Matches(m *entities.Meeting, term string) bool {
	return strings.Contains(strings.ToLower(m.Title), term) ||
		strings.Contains(strings.ToLower(m.Summary), term) ||
		strings.Contains(strings.ToLower(m.Transcript), term)
}

// sortByCreated orders newest first. Meetings without a date go last; ties
// keep the id order they arrived in.
func sortByCreated(meetings []*entities.Meeting) {
	sort.SliceStable(meetings, func(i, j int) bool {
		a, b := meetings[i].CreatedAt, meetings[j].CreatedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.After(*b)
	})
}

// Get returns a meeting that has a summary. Meetings that are unknown or
// still processing are reported as not found.
func (s *MeetingService) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, apperrors.ErrStorageFailed("get", err)
	}
	if !m.HasSummary() {
		return nil, apperrors.ErrMeetingNotFound(id)
	}
	return m, nil
}
