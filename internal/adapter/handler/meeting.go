package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scribe/errors"
	"github.com/johnquangdev/meeting-scribe/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-scribe/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	meetinguc "github.com/johnquangdev/meeting-scribe/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-scribe/pkg/validator"
)

// Form fields of the upload page
const (
	FormFieldAudio    = "audio_file"
	FormFieldProvider = "ai_provider"
)

// ProviderOption is one entry of the provider selector
type ProviderOption struct {
	Key        string
	Label      string
	Configured bool
}

// IndexPage is the data of the listing page
type IndexPage struct {
	Flashes   []string
	Query     string
	Meetings  []*meeting.MeetingListItem
	Providers []ProviderOption
}

// ResultPage is the data of the detail page
type ResultPage struct {
	Flashes   []string
	Meeting   *meeting.MeetingResponse
	Providers []ProviderOption
}

// Meeting handles the upload, listing, detail and chat endpoints
type Meeting struct {
	svc    meetinguc.Service
	logger *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(svc meetinguc.Service, logger *zap.Logger) *Meeting {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Meeting{svc: svc, logger: logger}
}

func (h *Meeting) providerOptions() []ProviderOption {
	configured := make(map[entities.Provider]bool)
	for _, p := range h.svc.Providers() {
		configured[p] = true
	}
	labels := map[entities.Provider]string{
		entities.ProviderGemini: "Google Gemini",
		entities.ProviderOpenAI: "OpenAI GPT",
	}
	out := make([]ProviderOption, 0, len(entities.Providers))
	for _, p := range entities.Providers {
		out = append(out, ProviderOption{Key: p.String(), Label: labels[p], Configured: configured[p]})
	}
	return out
}

// Index renders the meeting list
// @Summary      List meetings
// @Description  Renders all meetings, newest id first, optionally filtered by a search term
// @Tags         Meetings
// @Produce      html
// @Param        q  query  string  false  "Case-insensitive search term"
// @Success      200
// @Router       / [get]
func (h *Meeting) Index(c echo.Context) error {
	var req meeting.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	query := strings.TrimSpace(req.Query)

	meetings, err := h.svc.List(c.Request().Context(), query)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.Render(http.StatusOK, TemplateIndex, IndexPage{
		Flashes:   PopFlash(c),
		Query:     query,
		Meetings:  presenter.ToMeetingListResponse(meetings, query).Meetings,
		Providers: h.providerOptions(),
	})
}

// Upload processes an uploaded recording and redirects to its result
// @Summary      Upload a recording
// @Description  Transcribes and summarizes the recording, then redirects to the result page
// @Tags         Meetings
// @Accept       multipart/form-data
// @Param        audio_file   formData  file    true   "Audio or video file (wav, mp3, m4a, ogg, mp4)"
// @Param        ai_provider  formData  string  false  "gemini or openai"
// @Success      302
// @Router       / [post]
func (h *Meeting) Upload(c echo.Context) error {
	back := c.Request().URL.RequestURI()

	fileHeader, err := c.FormFile(FormFieldAudio)
	if err != nil {
		if !stdErrors.Is(err, http.ErrMissingFile) {
			h.logger.Warn("failed to read upload", zap.Error(err))
		}
		// browsers send an empty value when the file input was left blank
		if form := c.Request().MultipartForm; form != nil {
			if _, ok := form.Value[FormFieldAudio]; ok {
				return redirectWithFlash(c, back, errors.ErrNoSelectedFile().Message)
			}
		}
		return redirectWithFlash(c, back, errors.ErrNoFilePart().Message)
	}
	if fileHeader.Filename == "" {
		return redirectWithFlash(c, back, errors.ErrNoSelectedFile().Message)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return redirectWithFlash(c, back, processingFailed(errors.ErrUploadSaveFailed(err)))
	}
	defer src.Close()

	out, err := h.svc.Process(c.Request().Context(), meetinguc.ProcessInput{
		Filename: fileHeader.Filename,
		Content:  src,
		Provider: c.FormValue(FormFieldProvider),
	})
	if err != nil {
		appErr := asAppError(err)
		logError(h.logger, c, appErr)
		if appErr.HTTPCode == http.StatusBadRequest {
			return redirectWithFlash(c, back, appErr.Message)
		}
		return redirectWithFlash(c, back, processingFailed(appErr))
	}

	h.logger.Info("http.response.success",
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Path()),
		zap.String("job_id", out.JobID),
	)
	return c.Redirect(http.StatusFound, "/result/"+out.JobID)
}

func processingFailed(appErr errors.AppError) string {
	return fmt.Sprintf("An error occurred during processing: %s", appErr.UserMessage())
}

// Result renders a finished meeting
// @Summary      Show a meeting
// @Tags         Meetings
// @Produce      html
// @Param        id  path  string  true  "Meeting ID"
// @Success      200
// @Success      302  "Redirect to / when the meeting has no summary"
// @Router       /result/{id} [get]
func (h *Meeting) Result(c echo.Context) error {
	m, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		appErr := asAppError(err)
		if appErr.Code == errors.ErrorCode_MEETING_NOT_FOUND {
			return redirectWithFlash(c, "/", "Result not found.")
		}
		return HandleError(h.logger, c, appErr)
	}

	return c.Render(http.StatusOK, TemplateResult, ResultPage{
		Flashes:   PopFlash(c),
		Meeting:   presenter.ToMeetingResponse(m),
		Providers: h.providerOptions(),
	})
}

// Chat answers a question about a meeting
// @Summary      Ask about a meeting
// @Description  Answers one question using only the meeting transcript. No history is kept.
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Meeting ID"
// @Param        request  body      meeting.ChatRequest   true  "Question"
// @Success      200      {object}  meeting.ChatResponse
// @Failure      400      {object}  common.ErrorResponse  "Missing message"
// @Failure      404      {object}  common.ErrorResponse  "No transcript"
// @Failure      500      {object}  common.ErrorResponse  "Provider unavailable or failed"
// @Router       /result/{id}/chat [post]
func (h *Meeting) Chat(c echo.Context) error {
	var req meeting.ChatRequest
	if err := c.Bind(&req); err != nil {
		return HandleJSONError(h.logger, c, errors.ErrInvalidPayload())
	}
	req.Message = strings.TrimSpace(req.Message)
	if err := c.Validate(&req); err != nil {
		return HandleJSONError(h.logger, c, errors.ErrMissingMessage().WithDetail("validation", validator.Describe(err)))
	}

	out, err := h.svc.Ask(c.Request().Context(), meetinguc.AskInput{
		MeetingID: c.Param("id"),
		Question:  req.Message,
		Provider:  req.Provider,
	})
	if err != nil {
		return HandleJSONError(h.logger, c, err)
	}

	h.logger.Info("http.response.success",
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Path()),
	)
	return c.JSON(http.StatusOK, meeting.ChatResponse{Reply: out.Reply, Provider: out.Provider.String()})
}

// ListAPI returns the meeting list as JSON
// @Summary      List meetings (JSON)
// @Tags         API
// @Produce      json
// @Param        q  query  string  false  "Case-insensitive search term"
// @Success      200  {object}  meeting.MeetingListResponse
// @Router       /api/meetings [get]
func (h *Meeting) ListAPI(c echo.Context) error {
	var req meeting.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	query := strings.TrimSpace(req.Query)

	meetings, err := h.svc.List(c.Request().Context(), query)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings, query))
}

// GetAPI returns a finished meeting as JSON
// @Summary      Show a meeting (JSON)
// @Tags         API
// @Produce      json
// @Param        id  path  string  true  "Meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/meetings/{id} [get]
func (h *Meeting) GetAPI(c echo.Context) error {
	m, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}
