package response

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"appointment_manager/internal/apperror"
	"appointment_manager/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorMessage is one entry of the errorMessages array in error envelopes
type ErrorMessage struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

type successEnvelope struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Meta       *model.Meta `json:"meta,omitempty"`
}

type errorEnvelope struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	ErrorMessages []ErrorMessage `json:"errorMessages"`
	Stack         string         `json:"stack,omitempty"`
}

// OK writes a success envelope without pagination meta
func OK(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, successEnvelope{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

// OKWithMeta writes a success envelope for a paginated listing
func OKWithMeta(c *gin.Context, statusCode int, message string, data interface{}, meta model.Meta) {
	c.JSON(statusCode, successEnvelope{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Meta:       &meta,
	})
}

// Error translates any error into the error envelope. ApiErrors keep their
// status and message, validator errors become field-level 400s, everything
// else is reported as a generic 500. Stack detail is suppressed in production.
func Error(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "Something went wrong"
	var errorMessages []ErrorMessage

	var apiErr *apperror.ApiError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &apiErr):
		statusCode = apiErr.StatusCode
		message = apiErr.Message
		errorMessages = []ErrorMessage{{Message: apiErr.Message, Path: c.FullPath()}}
	case errors.As(err, &validationErrs):
		statusCode = http.StatusBadRequest
		message = "Validation Error"
		for _, fe := range validationErrs {
			errorMessages = append(errorMessages, ErrorMessage{
				Message: fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()),
				Path:    fe.Field(),
			})
		}
	default:
		errorMessages = []ErrorMessage{{Message: message, Path: c.FullPath()}}
	}

	env := errorEnvelope{
		Success:       false,
		Message:       message,
		ErrorMessages: errorMessages,
	}
	if os.Getenv("APP_ENV") != "production" {
		env.Stack = err.Error()
	}
	c.AbortWithStatusJSON(statusCode, env)
}

// BindError reports a request body/query binding failure as a 400
func BindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		Error(c, err)
		return
	}
	Error(c, apperror.BadRequest("Invalid request: "+err.Error()))
}

// NotFoundHandler is the catch-all for unmatched routes
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success":    false,
		"statusCode": http.StatusNotFound,
		"message":    "Not Found",
		"errorMessages": []ErrorMessage{
			{Message: "Not Found", Path: c.Request.URL.Path},
		},
	})
}
