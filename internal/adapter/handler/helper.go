package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scribe/errors"
	"github.com/johnquangdev/meeting-scribe/internal/adapter/dto/common"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// getRequestID reads the id set by the RequestID middleware, falling back to
// the incoming header
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// asAppError converts any error into an AppError, treating unknown errors as internal
func asAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}
	return errors.ErrInternal(err)
}

func logError(logger *zap.Logger, c echo.Context, appErr errors.AppError) {
	if logger == nil {
		return
	}
	logger.Error("http.response.error",
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Path()),
		zap.Any("app_code", appErr.Code),
		zap.Error(appErr),
	)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := asAppError(err)
	logError(logger, c, appErr)

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
	})
}

// HandleJSONError writes the bare {"error": "..."} body used by the chat endpoint
func HandleJSONError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := asAppError(err)
	logError(logger, c, appErr)

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Error:   appErr.UserMessage(),
		Code:    appErr.Code.String(),
		Details: appErr.Details,
	})
}
