package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_SuccessNoData(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, http.StatusOK, SuccessNoData()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{}`, rec.Body.String())
}

func TestWriteJSON_SuccessWithData(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, http.StatusOK, SuccessWithData([]string{"a"})))

	assert.JSONEq(t, `{"data":["a"]}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
		body   string
	}{
		{EntityFound, http.StatusBadRequest, `{"errorCode":"ENTITY_FOUND","message":"Entity already exists"}`},
		{EntityNotFound, http.StatusNotFound, `{"errorCode":"ENTITY_NOT_FOUND","message":"Entity not found"}`},
		{InternalError, http.StatusInternalServerError, `{"errorCode":"INTERNAL_ERROR","message":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, WriteError(rec, tt.code))
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestGeneralError(t *testing.T) {
	got := GeneralError(errors.New("request body is empty"))
	assert.Equal(t, Response{ErrorCode: BadRequest, Message: "request body is empty"}, got)
}

func TestValidationError(t *testing.T) {
	type payload struct {
		ID string `validate:"required"`
	}

	err := validator.New().Struct(payload{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	got := ValidationError(verrs)
	assert.Equal(t, BadRequest, got.ErrorCode)
	assert.Equal(t, "field ID is required", got.Message)
}
