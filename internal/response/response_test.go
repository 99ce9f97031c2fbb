package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"appointment_manager/internal/apperror"
	"appointment_manager/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func TestOK_Envelope(t *testing.T) {
	c, w := testContext()
	OK(c, http.StatusOK, "done", gin.H{"id": "1"})

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, float64(200), got["statusCode"])
	assert.Equal(t, "done", got["message"])
	assert.NotContains(t, got, "meta")
}

func TestOKWithMeta_IncludesMeta(t *testing.T) {
	c, w := testContext()
	meta := model.NewMeta(model.Pagination{Page: 1, Limit: 10}, 25)
	OKWithMeta(c, http.StatusOK, "listed", []string{}, meta)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	m, ok := got["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(25), m["total"])
	assert.Equal(t, float64(3), m["totalPages"])
}

func TestError_ApiError(t *testing.T) {
	c, w := testContext()
	Error(c, apperror.Forbidden("Access denied"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, false, got["success"])
	assert.Equal(t, "Access denied", got["message"])
}

func TestError_WrappedApiError(t *testing.T) {
	c, w := testContext()
	wrapped := errors.Join(errors.New("context"), apperror.NotFound("User not found"))
	Error(c, wrapped)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestError_Unknown(t *testing.T) {
	c, w := testContext()
	Error(c, errors.New("db exploded"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Something went wrong", got["message"])
	// Outside production the raw error shows up in the stack field
	assert.Equal(t, "db exploded", got["stack"])
}

func TestError_Validation(t *testing.T) {
	c, w := testContext()
	type form struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(form{Email: "not-an-email"})
	require.Error(t, err)
	Error(c, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var got struct {
		Message       string         `json:"message"`
		ErrorMessages []ErrorMessage `json:"errorMessages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Validation Error", got.Message)
	require.Len(t, got.ErrorMessages, 1)
	assert.Equal(t, "Email", got.ErrorMessages[0].Path)
}

func TestBindError_NonValidation(t *testing.T) {
	c, w := testContext()
	BindError(c, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request")
}
