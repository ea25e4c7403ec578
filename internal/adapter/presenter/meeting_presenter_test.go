package presenter

import (
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
)

func TestFormatDate(t *testing.T) {
	if FormatDate(nil) != "" {
		t.Error("nil date should render empty")
	}
	d := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.Local)
	if got := FormatDate(&d); got != "Mar 04, 2025" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("  short  ", 10); got != "short" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("héllo wörld", 5); got != "héllo..." {
		t.Errorf("Truncate runes = %q", got)
	}
}

func TestToMeetingListItem(t *testing.T) {
	m := entities.NewMeeting("abc")
	m.Transcript = strings.Repeat("a", PreviewLength+50)

	item := ToMeetingListItem(m)
	if !item.Processing {
		t.Error("meeting without summary should be processing")
	}
	if item.Title != "abc" || item.Provider != "gemini" || item.Date != "" {
		t.Errorf("unexpected defaults %+v", item)
	}
	if len(item.Preview) != PreviewLength+3 {
		t.Errorf("preview length = %d", len(item.Preview))
	}

	m.Summary = "**Decisions Made:** None."
	resp := ToMeetingResponse(m)
	if resp.Sections["Decisions Made"] != "None." {
		t.Errorf("sections = %v", resp.Sections)
	}
	if ToMeetingListItem(m).Preview != "**Decisions Made:** None." {
		t.Error("preview should prefer the summary")
	}
}
