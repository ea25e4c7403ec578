package errors

// ErrorCode identifies an application failure in API responses and logs.
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = 0
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Upload validation
	ErrorCode_UPLOAD_NO_FILE_PART       ErrorCode = 2000
	ErrorCode_UPLOAD_NO_SELECTED_FILE   ErrorCode = 2001
	ErrorCode_UPLOAD_FILE_TYPE_REJECTED ErrorCode = 2002
	ErrorCode_UPLOAD_SAVE_FAILED        ErrorCode = 2003

	// Meetings
	ErrorCode_MEETING_NOT_FOUND    ErrorCode = 3000
	ErrorCode_TRANSCRIPT_NOT_FOUND ErrorCode = 3001
	ErrorCode_MISSING_MESSAGE      ErrorCode = 3002

	// AI
	ErrorCode_AI_PROVIDER_UNAVAILABLE ErrorCode = 4000
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 4001
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 4002
	ErrorCode_AI_CHAT_FAILED          ErrorCode = 4003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 5001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                    "UNKNOWN",
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_UPLOAD_NO_FILE_PART:        "UPLOAD_NO_FILE_PART",
	ErrorCode_UPLOAD_NO_SELECTED_FILE:    "UPLOAD_NO_SELECTED_FILE",
	ErrorCode_UPLOAD_FILE_TYPE_REJECTED:  "UPLOAD_FILE_TYPE_REJECTED",
	ErrorCode_UPLOAD_SAVE_FAILED:         "UPLOAD_SAVE_FAILED",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_TRANSCRIPT_NOT_FOUND:       "TRANSCRIPT_NOT_FOUND",
	ErrorCode_MISSING_MESSAGE:            "MISSING_MESSAGE",
	ErrorCode_AI_PROVIDER_UNAVAILABLE:    "AI_PROVIDER_UNAVAILABLE",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:          "AI_SUMMARY_FAILED",
	ErrorCode_AI_CHAT_FAILED:             "AI_CHAT_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return errorCodeNames[ErrorCode_UNKNOWN]
}
