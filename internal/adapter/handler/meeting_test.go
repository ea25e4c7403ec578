package handler

import (
	"bytes"
	"context"
	"encoding/json"
	stdErrors "errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-scribe/errors"
	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	meetinguc "github.com/johnquangdev/meeting-scribe/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-scribe/pkg/config"
	"github.com/johnquangdev/meeting-scribe/pkg/validator"
)

type stubService struct {
	meetings  []*entities.Meeting
	processed meetinguc.ProcessInput
	upload    string
	processFn func(meetinguc.ProcessInput) (*meetinguc.ProcessOutput, error)
	asked     *meetinguc.AskInput
	askFn     func(meetinguc.AskInput) (*meetinguc.AskOutput, error)
	query     string
}

func (s *stubService) Process(ctx context.Context, input meetinguc.ProcessInput) (*meetinguc.ProcessOutput, error) {
	s.processed = input
	if input.Content != nil {
		b, _ := io.ReadAll(input.Content)
		s.upload = string(b)
	}
	return s.processFn(input)
}

func (s *stubService) List(ctx context.Context, query string) ([]*entities.Meeting, error) {
	s.query = query
	return s.meetings, nil
}

func (s *stubService) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	for _, m := range s.meetings {
		if m.ID == id && m.HasSummary() {
			return m, nil
		}
	}
	return nil, errors.ErrMeetingNotFound(id)
}

func (s *stubService) Ask(ctx context.Context, input meetinguc.AskInput) (*meetinguc.AskOutput, error) {
	s.asked = &input
	return s.askFn(input)
}

func (s *stubService) Providers() []entities.Provider {
	return []entities.Provider{entities.ProviderGemini}
}

func newTestServer(t *testing.T, svc *stubService) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()
	renderer, err := NewTemplateRenderer()
	if err != nil {
		t.Fatalf("NewTemplateRenderer error: %v", err)
	}
	e.Renderer = renderer
	NewRouter(&config.Config{}, NewMeeting(svc, nil), "whisper").Setup(e)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func flashOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge > 0 {
			v, err := url.QueryUnescape(c.Value)
			if err != nil {
				t.Fatal(err)
			}
			return v
		}
	}
	return ""
}

func chatRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/result/m1/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestChat(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		askErr error
		status int
		reply  string
		errMsg string
	}{
		{name: "success", body: `{"message":"who owns it?","provider":"openai"}`, status: http.StatusOK, reply: "Ana."},
		{name: "missing message", body: `{"provider":"openai"}`, status: http.StatusBadRequest, errMsg: "Message is required"},
		{name: "blank message", body: `{"message":"   "}`, status: http.StatusBadRequest, errMsg: "Message is required"},
		{name: "invalid json", body: `{"message":`, status: http.StatusBadRequest, errMsg: "Invalid payload"},
		{name: "no transcript", body: `{"message":"q"}`, askErr: errors.ErrTranscriptNotFound("m1"), status: http.StatusNotFound, errMsg: "Transcript not found for this meeting"},
		{
			name:   "provider unavailable",
			body:   `{"message":"q","provider":"claude"}`,
			askErr: errors.ErrProviderUnavailable("claude", stdErrors.New("chat with claude: unknown provider")),
			status: http.StatusInternalServerError,
			errMsg: `AI provider "claude" is not available: chat with claude: unknown provider`,
		},
		{name: "unexpected failure", body: `{"message":"q"}`, askErr: stdErrors.New("boom"), status: http.StatusInternalServerError, errMsg: "Internal server error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{askFn: func(in meetinguc.AskInput) (*meetinguc.AskOutput, error) {
				if tt.askErr != nil {
					return nil, tt.askErr
				}
				return &meetinguc.AskOutput{Reply: "Ana.", Provider: entities.ProviderOpenAI}, nil
			}}
			rec := serve(newTestServer(t, svc), chatRequest(tt.body))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			body := decodeBody(t, rec)
			if tt.reply != "" && body["reply"] != tt.reply {
				t.Errorf("reply = %v", body["reply"])
			}
			if tt.errMsg != "" && body["error"] != tt.errMsg {
				t.Errorf("error = %v, want %q", body["error"], tt.errMsg)
			}
		})
	}
}

func TestChat_ValidationDetail(t *testing.T) {
	svc := &stubService{askFn: func(in meetinguc.AskInput) (*meetinguc.AskOutput, error) {
		t.Error("Ask should not be called without a message")
		return nil, nil
	}}
	rec := serve(newTestServer(t, svc), chatRequest(`{"message":"  "}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["code"] != "MISSING_MESSAGE" {
		t.Errorf("code = %v", body["code"])
	}
	details, _ := body["details"].(map[string]interface{})
	if details["validation"] != "message is required" {
		t.Errorf("details = %v", body["details"])
	}
}

func TestChat_PassesInput(t *testing.T) {
	svc := &stubService{askFn: func(in meetinguc.AskInput) (*meetinguc.AskOutput, error) {
		return &meetinguc.AskOutput{Reply: "ok"}, nil
	}}
	serve(newTestServer(t, svc), chatRequest(`{"message":" hi ","provider":"openai"}`))

	if svc.asked == nil || svc.asked.MeetingID != "m1" || svc.asked.Question != "hi" || svc.asked.Provider != "openai" {
		t.Fatalf("unexpected ask input %+v", svc.asked)
	}
}

func multipartUpload(t *testing.T, fields map[string]string, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if filename != "" {
		part, err := w.CreateFormFile(FormFieldAudio, filename)
		if err != nil {
			t.Fatal(err)
		}
		_, _ = part.Write([]byte(content))
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		filename   string
		processErr error
		location   string
		flash      string
	}{
		{name: "no file part", fields: map[string]string{FormFieldProvider: "gemini"}, location: "/", flash: "No file part"},
		{name: "no selected file", fields: map[string]string{FormFieldAudio: ""}, location: "/", flash: "No selected file"},
		{
			name:       "rejected extension",
			filename:   "notes.txt",
			processErr: errors.ErrFileTypeNotAllowed("notes.txt"),
			location:   "/",
			flash:      "File type not allowed",
		},
		{
			name:       "transcription failure",
			filename:   "call.mp3",
			processErr: errors.ErrTranscriptionFailed(stdErrors.New("model crashed")),
			location:   "/",
			flash:      "An error occurred during processing: Audio transcription failed: model crashed",
		},
		{
			name:     "success",
			fields:   map[string]string{FormFieldProvider: "openai"},
			filename: "call.mp3",
			location: "/result/job-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{processFn: func(in meetinguc.ProcessInput) (*meetinguc.ProcessOutput, error) {
				if tt.processErr != nil {
					return nil, tt.processErr
				}
				return &meetinguc.ProcessOutput{JobID: "job-1", Title: "T", Provider: entities.ProviderOpenAI}, nil
			}}
			rec := serve(newTestServer(t, svc), multipartUpload(t, tt.fields, tt.filename, "audio bytes"))

			if rec.Code != http.StatusFound {
				t.Fatalf("status = %d, want 302 (body %s)", rec.Code, rec.Body.String())
			}
			if loc := rec.Header().Get(echo.HeaderLocation); loc != tt.location {
				t.Errorf("location = %q, want %q", loc, tt.location)
			}
			if got := flashOf(t, rec); got != tt.flash {
				t.Errorf("flash = %q, want %q", got, tt.flash)
			}
		})
	}
}

func TestUpload_PassesFileAndProvider(t *testing.T) {
	svc := &stubService{processFn: func(in meetinguc.ProcessInput) (*meetinguc.ProcessOutput, error) {
		return &meetinguc.ProcessOutput{JobID: "job-1"}, nil
	}}
	serve(newTestServer(t, svc), multipartUpload(t, map[string]string{FormFieldProvider: "openai"}, "Weekly Sync.mp3", "audio bytes"))

	if svc.processed.Filename != "Weekly Sync.mp3" || svc.processed.Provider != "openai" {
		t.Errorf("unexpected input %+v", svc.processed)
	}
	if svc.upload != "audio bytes" {
		t.Errorf("upload content = %q", svc.upload)
	}
}

func TestResult(t *testing.T) {
	created := time.Date(2025, time.March, 4, 12, 0, 0, 0, time.Local)
	done := entities.NewMeeting("done")
	done.Title = "Budget Review"
	done.Summary = "**Decisions Made:** None."
	done.Transcript = "we talked"
	done.CreatedAt = &created
	pending := entities.NewMeeting("pending")
	pending.Transcript = "partial"
	e := newTestServer(t, &stubService{meetings: []*entities.Meeting{done, pending}})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/result/done", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, want := range []string{"Budget Review", "Mar 04, 2025", "we talked", "chat-form"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("page missing %q", want)
		}
	}

	for _, id := range []string{"pending", "unknown"} {
		rec := serve(e, httptest.NewRequest(http.MethodGet, "/result/"+id, nil))
		if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/" {
			t.Fatalf("%s: status = %d location = %q", id, rec.Code, rec.Header().Get(echo.HeaderLocation))
		}
		if got := flashOf(t, rec); got != "Result not found." {
			t.Errorf("%s: flash = %q", id, got)
		}
	}
}

func TestIndex(t *testing.T) {
	m := entities.NewMeeting("m1")
	m.Title = "Budget <Review>"
	m.Summary = "numbers"
	svc := &stubService{meetings: []*entities.Meeting{m}}
	e := newTestServer(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/?q=+budget+", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: url.QueryEscape("Result not found.")})
	rec := serve(e, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.query != "budget" {
		t.Errorf("query = %q", svc.query)
	}
	body := rec.Body.String()
	for _, want := range []string{"Budget &lt;Review&gt;", "/result/m1", "Result not found.", `value="budget"`} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestAPI(t *testing.T) {
	m := entities.NewMeeting("m1")
	m.Title = "Roadmap"
	m.Summary = "plans"
	e := newTestServer(t, &stubService{meetings: []*entities.Meeting{m}})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/meetings", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	if data["total"].(float64) != 1 {
		t.Errorf("total = %v", data["total"])
	}

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/meetings/m1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/api/meetings/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d", rec.Code)
	}
	if code := decodeBody(t, rec)["code"]; code != float64(errors.ErrorCode_MEETING_NOT_FOUND) {
		t.Errorf("code = %v", code)
	}
}

func TestHealth(t *testing.T) {
	rec := serve(newTestServer(t, &stubService{}), httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "ok" || body["transcriber"] != "whisper" {
		t.Errorf("unexpected body %v", body)
	}
}
