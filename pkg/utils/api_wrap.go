package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEntryNotFound):
		RespondError(c, http.StatusNotFound, "Journal entry not found")
	case errors.Is(err, ErrBadgeNotFound):
		RespondError(c, http.StatusNotFound, "Badge not found")
	case errors.Is(err, ErrInvalidMood):
		RespondError(c, http.StatusBadRequest, "Mood must be one of: struggling, low, neutral, good, amazing")
	case errors.Is(err, ErrEmptyContent):
		RespondError(c, http.StatusBadRequest, "Entry content must not be empty")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrUnknownCategory):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidBadgeTarget):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
