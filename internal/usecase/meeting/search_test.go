package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/johnquangdev/meeting-scribe/errors"
	"github.com/johnquangdev/meeting-scribe/pkg/config"
)

func ids(t *testing.T, svc *MeetingService, query string) []string {
	t.Helper()
	meetings, err := svc.List(context.Background(), query)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	out := make([]string, len(meetings))
	for i, m := range meetings {
		out[i] = m.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestList_Search(t *testing.T) {
	f := newFixture(t)
	seed(t, f.repo, "aaa", "Budget Review", "numbers", "we spent money")
	seed(t, f.repo, "bbb", "Roadmap", "plans", "next year")

	if got := ids(t, f.svc, "budget"); !equal(got, []string{"aaa"}) {
		t.Errorf("search budget = %v", got)
	}
	if got := ids(t, f.svc, ""); !equal(got, []string{"bbb", "aaa"}) {
		t.Errorf("empty search = %v, want descending ids", got)
	}
	if got := ids(t, f.svc, "   "); !equal(got, []string{"bbb", "aaa"}) {
		t.Errorf("blank search = %v", got)
	}
}

func TestList_SearchFields(t *testing.T) {
	f := newFixture(t)
	seed(t, f.repo, "m1", "Standup", "Decisions Made: ship it", "hello")
	seed(t, f.repo, "m2", "Retro", "none", "The CUSTOMER called")
	seed(t, f.repo, "m3", "Planning", "none", "nothing")

	tests := []struct {
		query string
		want  []string
	}{
		{query: "SHIP", want: []string{"m1"}},
		{query: "customer", want: []string{"m2"}},
		{query: "none", want: []string{"m3", "m2"}},
		{query: "plan", want: []string{"m3"}},
		{query: "missing", want: []string{}},
	}
	for _, tt := range tests {
		if got := ids(t, f.svc, tt.query); !equal(got, tt.want) {
			t.Errorf("query %q = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestList_IncludesInProgressMeetings(t *testing.T) {
	f := newFixture(t)
	seed(t, f.repo, "partial", "", "", "only a transcript")

	meetings, err := f.svc.List(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(meetings) != 1 || meetings[0].Title != "partial" || meetings[0].Summary != "" {
		t.Fatalf("unexpected listing %+v", meetings)
	}
}

func TestList_OrderByCreated(t *testing.T) {
	f := newFixture(t)
	seed(t, f.repo, "zzz", "Old", "s", "t")
	seed(t, f.repo, "aaa", "New", "s", "t")
	seed(t, f.repo, "mmm", "Middle", "s", "t")
	now := time.Now()
	setMtime(t, f.repo, "zzz", now.Add(-2*time.Hour))
	setMtime(t, f.repo, "mmm", now.Add(-time.Hour))
	setMtime(t, f.repo, "aaa", now)

	if got := ids(t, f.svc, ""); !equal(got, []string{"zzz", "mmm", "aaa"}) {
		t.Errorf("default order = %v", got)
	}
	f.svc.order = config.OrderByCreated
	if got := ids(t, f.svc, ""); !equal(got, []string{"aaa", "mmm", "zzz"}) {
		t.Errorf("created order = %v", got)
	}
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	seed(t, f.repo, "done", "Done", "a summary", "t")
	seed(t, f.repo, "pending", "", "", "t")

	m, err := f.svc.Get(context.Background(), "done")
	if err != nil || m.Title != "Done" {
		t.Fatalf("Get(done) = %+v, %v", m, err)
	}

	for _, id := range []string{"pending", "unknown", "../etc"} {
		_, err := f.svc.Get(context.Background(), id)
		var appErr apperrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_MEETING_NOT_FOUND {
			t.Errorf("Get(%s): expected not found, got %v", id, err)
		}
	}
}
