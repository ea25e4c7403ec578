package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
)

// dateLayout matches the web listing
const dateLayout = "Jan 02, 2006"

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) Processing(filename, provider string) {
	if provider == "" {
		provider = entities.DefaultProvider.String()
	}
	fmt.Fprintf(f.w, "📝 Transcribing and summarizing %s with %s...\n", filename, provider)
}

func (f *Formatter) ProcessDone(id, title string, provider entities.Provider, took time.Duration) {
	fmt.Fprintf(f.w, "✅ %s (%s, %s)\n", title, provider, formatDuration(took))
	fmt.Fprintf(f.w, "\n📁 Meeting saved: %s\n", id)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) MeetingListHeader(query string) {
	if query != "" {
		fmt.Fprintf(f.w, "🔎 Meetings matching %q:\n\n", query)
		return
	}
	fmt.Fprintf(f.w, "📁 Meetings:\n\n")
}

func (f *Formatter) MeetingListItem(m *entities.Meeting) {
	status := " ✅"
	if !m.HasSummary() {
		status = ""
		if m.Transcript != "" {
			status = " 📝"
		}
	}
	date := ""
	if m.CreatedAt != nil {
		date = m.CreatedAt.Local().Format(dateLayout) + "  "
	}
	fmt.Fprintf(f.w, "  %s  %s%s%s\n", m.ID, date, m.Title, status)
}

func (f *Formatter) Meeting(m *entities.Meeting, withTranscript bool) {
	fmt.Fprintf(f.w, "# %s\n", m.Title)
	meta := []string{m.ID, "provider: " + m.Provider.String()}
	if m.CreatedAt != nil {
		meta = append(meta, m.CreatedAt.Local().Format(dateLayout))
	}
	fmt.Fprintf(f.w, "%s\n\n", strings.Join(meta, " · "))
	fmt.Fprintf(f.w, "%s\n", strings.TrimSpace(m.Summary))
	if withTranscript {
		fmt.Fprintf(f.w, "\n## Transcript\n\n%s\n", strings.TrimSpace(m.Transcript))
	}
}

func (f *Formatter) Reply(provider entities.Provider, reply string) {
	fmt.Fprintf(f.w, "🤖 %s: %s\n", provider, strings.TrimSpace(reply))
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
