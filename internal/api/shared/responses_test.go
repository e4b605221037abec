package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		env         Envelope
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "OK carries data without a message",
			env:         OK(map[string]string{"k": "v"}),
			wantSuccess: true,
			wantMessage: "",
		},
		{
			name:        "OKWithMessage carries both",
			env:         OKWithMessage("data", "Token generated successfully."),
			wantSuccess: true,
			wantMessage: "Token generated successfully.",
		},
		{
			name:        "Created uses the contract message",
			env:         Created("data"),
			wantSuccess: true,
			wantMessage: MsgCreated,
		},
		{
			name:        "NotFound uses the contract message",
			env:         NotFound(),
			wantSuccess: false,
			wantMessage: MsgNotFound,
		},
		{
			name:        "BadRequest keeps a custom message",
			env:         BadRequest("User already has an active token."),
			wantSuccess: false,
			wantMessage: "User already has an active token.",
		},
		{
			name:        "BadRequest falls back to the default",
			env:         BadRequest(""),
			wantSuccess: false,
			wantMessage: MsgBadRequest,
		},
		{
			name:        "Unauthorized falls back to the default",
			env:         Unauthorized(""),
			wantSuccess: false,
			wantMessage: MsgUnauthorized,
		},
		{
			name:        "InternalError never leaks the cause",
			env:         InternalError(),
			wantSuccess: false,
			wantMessage: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSuccess, tt.env.Success)
			assert.Equal(t, tt.wantMessage, tt.env.Message)
		})
	}
}

func TestValidationFailedCarriesFieldMap(t *testing.T) {
	t.Parallel()

	env := ValidationFailed(map[string][]string{
		"email": {"The email field is required."},
	})

	assert.False(t, env.Success)
	assert.Equal(t, MsgInvalidPayload, env.Message)
	require.Contains(t, env.Errors, "email")
	assert.Equal(t, []string{"The email field is required."}, env.Errors["email"])
}

func TestRespondWithEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON body with status", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/books", nil)

		RespondWithEnvelope(recorder, req, http.StatusOK, OK("payload"))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var env Envelope
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&env))
		assert.True(t, env.Success)
		assert.Equal(t, "payload", env.Data)
	})

	t.Run("204 writes no body", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest("DELETE", "/books/1", nil)

		RespondWithEnvelope(recorder, req, http.StatusNoContent, Envelope{Success: true})

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Zero(t, recorder.Body.Len())
	})
}

func TestRespondInternalError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/orders", nil)

	RespondInternalError(recorder, req, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var env Envelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Equal(t, MsgInternalError, env.Message)
	assert.NotContains(t, env.Message, assert.AnError.Error())
}
