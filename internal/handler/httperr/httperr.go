package httperr

import (
	"net/http"

	"turf-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Stable machine-readable error codes.
const (
	CodeSlotUnavailable   = "SLOT_UNAVAILABLE"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeNotFound          = "NOT_FOUND"
	CodeAccessDenied      = "ACCESS_DENIED"
	CodeValidation        = "VALIDATION_FAILED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeRateLimited       = "RATE_LIMITED"
	CodeInternal          = "INTERNAL"

	ReasonContention = "contention"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Reason  string `json:"reason,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, codeForStatus(status), "", err, msg, detail)
}

// AbortWithUseCaseError picks status and code from the error class attached by
// the use case layer. Unclassified errors are reported as internal.
func AbortWithUseCaseError(c *gin.Context, err error, detail any) {
	status, code, reason, msg := Classify(err)
	if status == http.StatusInternalServerError {
		detail = nil
	}
	abort(c, status, code, reason, err, msg, detail)
}

func Classify(err error) (status int, code, reason, msg string) {
	switch {
	case errs.Is(err, errs.ErrSlotUnavailable):
		return http.StatusConflict, CodeSlotUnavailable, ReasonContention, "Slot is not available"
	case errs.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict, CodeInvalidTransition, "", "Status change not allowed"
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, "", "Not found"
	case errs.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, CodeAccessDenied, "", "Access denied"
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest, CodeValidation, "", "Invalid request"
	default:
		return http.StatusInternalServerError, CodeInternal, "", "Internal server error"
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeAccessDenied
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeInternal
	}
}

func abort(c *gin.Context, status int, code, reason string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Error.Reason = reason
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
