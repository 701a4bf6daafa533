package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult_Success(t *testing.T) {
	res := newResult(http.StatusOK, []byte(`{"id":1}`))

	assert.True(t, res.OK)
	assert.Equal(t, http.StatusOK, res.Status)
	assert.JSONEq(t, `{"id":1}`, string(res.Data))
	assert.Empty(t, res.Message)
}

func TestNewResult_SuccessEmptyBody(t *testing.T) {
	res := newResult(http.StatusNoContent, nil)

	assert.True(t, res.OK)
	assert.Equal(t, http.StatusNoContent, res.Status)
	assert.JSONEq(t, `{"detail":"HTTP 204: No Content"}`, string(res.Data))
}

func TestNewResult_FailureInvalidJSON(t *testing.T) {
	res := newResult(http.StatusServiceUnavailable, []byte("upstream exploded"))

	assert.False(t, res.OK)
	assert.Equal(t, http.StatusServiceUnavailable, res.Status)
	assert.JSONEq(t, `{"detail":"HTTP 503: Service Unavailable"}`, string(res.Data))
	assert.Equal(t, "HTTP 503: Service Unavailable", res.Message)
}

func TestNewResult_DataAlwaysValidJSON(t *testing.T) {
	for _, body := range [][]byte{nil, {}, []byte("   "), []byte("<html>"), []byte(`{"detail":"x"}`), []byte(`[1,2]`)} {
		res := newResult(http.StatusBadRequest, body)
		assert.True(t, json.Valid(res.Data), "body %q", body)
	}
}

func TestFailureMessage_Precedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "detail wins", body: `{"detail":"D","message":"M","error":"E"}`, want: "D"},
		{name: "message next", body: `{"message":"M","error":"E"}`, want: "M"},
		{name: "error string", body: `{"error":"E"}`, want: "E"},
		{name: "wrapped error message", body: `{"error":{"code":"conflict","message":"Taken"}}`, want: "Taken"},
		{name: "validation fields", body: `{"fields":{"moodle_id":"invalid"}}`, want: MsgValidation},
		{name: "array detail", body: `{"detail":[{"loc":["body"],"msg":"bad"}]}`, want: MsgValidation},
		{name: "nothing usable", body: `{"status":"error"}`, want: MsgFallback},
		{name: "empty object", body: `{}`, want: MsgFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failureMessage(json.RawMessage(tt.body)))
		})
	}
}

func TestResult_Decode(t *testing.T) {
	res := newResult(http.StatusOK, []byte(`{"title":"Go Workshop"}`))

	var payload struct {
		Title string `json:"title"`
	}
	require.NoError(t, res.Decode(&payload))
	assert.Equal(t, "Go Workshop", payload.Title)
}

func TestTransportFailure(t *testing.T) {
	t.Run("deadline exceeded", func(t *testing.T) {
		res := transportFailure(context.DeadlineExceeded)
		assert.Equal(t, 0, res.Status)
		assert.Equal(t, MsgTimeout, res.Message)
	})

	t.Run("other error", func(t *testing.T) {
		res := transportFailure(errors.New("connection refused"))
		assert.Equal(t, 0, res.Status)
		assert.Equal(t, MsgNetwork, res.Message)
	})
}

func TestMapResult(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: 0, want: ErrUnavailable},
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusUnprocessableEntity, want: ErrValidation},
		{status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
	}

	for _, tt := range tests {
		err := mapResult(Result{Status: tt.status, Message: "boom"})
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
		assert.ErrorContains(t, err, "boom")
	}

	assert.NoError(t, mapResult(Result{OK: true, Status: http.StatusOK}))

	err := mapResult(Result{Status: http.StatusTeapot, Message: "odd"})
	assert.ErrorContains(t, err, "http 418")
}
