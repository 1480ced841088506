package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgkompass/orgkompass/internal/assessment"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("ratings payload malformed")

	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), "ratings payload malformed")
}

func TestNewRateLimitError(t *testing.T) {
	err := NewRateLimitError("60s")

	assert.Equal(t, CategoryRateLimit, err.Category)
	assert.Equal(t, http.StatusTooManyRequests, err.HTTPStatus)
}

func TestToAppError(t *testing.T) {
	tests := []struct {
		name             string
		input            error
		expectedCategory ErrorCategory
		expectedStatus   int
	}{
		{
			name:             "passes through AppError",
			input:            NewNotFoundError("benchmark"),
			expectedCategory: CategoryNotFound,
			expectedStatus:   http.StatusNotFound,
		},
		{
			name:             "maps engine rating validation to 400",
			input:            fmt.Errorf("analysis failed: %w", &assessment.InvalidRatingError{Indicator: "wertekongruenz"}),
			expectedCategory: CategoryValidation,
			expectedStatus:   http.StatusBadRequest,
		},
		{
			name:             "wraps unknown errors as internal",
			input:            errors.New("boom"),
			expectedCategory: CategoryInternal,
			expectedStatus:   http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ToAppError(tt.input)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.expectedCategory, appErr.Category)
			assert.Equal(t, tt.expectedStatus, appErr.HTTPStatus)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToAppError(nil))
	})
}

func TestAppErrorMarshalJSON(t *testing.T) {
	// Every constructor must produce an error that can be rendered as JSON,
	// whether or not an underlying cause was attached.
	tests := []struct {
		name         string
		err          *AppError
		expectedCode string
	}{
		{
			name:         "validation without cause",
			err:          NewValidationError("ratings payload malformed"),
			expectedCode: "VALIDATION_ERROR",
		},
		{
			name:         "rate limit without cause",
			err:          NewRateLimitError("60s"),
			expectedCode: "RATE_LIMIT_EXCEEDED",
		},
		{
			name:         "not found without cause",
			err:          NewNotFoundError("benchmark"),
			expectedCode: "NOT_FOUND",
		},
		{
			name:         "internal with cause",
			err:          NewInternalError("analysis failed", errors.New("boom")),
			expectedCode: "INTERNAL_ERROR",
		},
		{
			name:         "internal without cause",
			err:          NewInternalError("analysis failed", nil),
			expectedCode: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.err)
			require.NoError(t, err)

			var rendered struct {
				Category   string `json:"category"`
				Code       string `json:"code"`
				Message    string `json:"message"`
				HTTPStatus int    `json:"http_status"`
				Cause      string `json:"cause"`
			}
			require.NoError(t, json.Unmarshal(data, &rendered))
			assert.Equal(t, string(tt.err.Category), rendered.Category)
			assert.Equal(t, tt.expectedCode, rendered.Code)
			assert.Equal(t, tt.err.ErrBuilder.Msg, rendered.Message)
			assert.Equal(t, tt.err.HTTPStatus, rendered.HTTPStatus)
		})
	}

	t.Run("cause is carried through when present", func(t *testing.T) {
		data, err := json.Marshal(NewInternalError("analysis failed", errors.New("boom")))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"cause":"boom"`)
	})
}

func TestErrorHandlerMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/fail", func(c *gin.Context) {
		c.Error(NewValidationError("bad ratings"))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation")
}
