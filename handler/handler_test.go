package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagarde/pharmagarde/handler"
	"github.com/pharmagarde/pharmagarde/pkg/apperror"
	"github.com/pharmagarde/pharmagarde/pkg/binder"
	"github.com/pharmagarde/pharmagarde/pkg/validator"
)

func serve(t *testing.T, fn handler.Func, opts ...handler.Option) (*httptest.ResponseRecorder, handler.Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.Wrap(fn, opts...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var env handler.Envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestJSON(t *testing.T) {
	rec, env := serve(t, func(*http.Request) handler.Response {
		return handler.JSON(map[string]string{"city": "Rabat"})
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"city": "Rabat"}, env.Data)
	assert.Nil(t, env.Error)
}

func TestEmpty(t *testing.T) {
	rec, _ := serve(t, func(*http.Request) handler.Response { return nil })
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestError(t *testing.T) {
	var ve validator.ValidationErrors
	ve.AddMessage("email", "Email est requis")
	ve.AddMessage("phone", validator.MsgInvalidPhone)

	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", ve, http.StatusUnprocessableEntity, handler.CodeValidation, ""},
		{"binding", binder.ErrFailedToParseJSON, http.StatusBadRequest, handler.CodeInvalidRequest, ""},
		{"unauthorized", handler.ErrUnauthorized, http.StatusUnauthorized, handler.CodeUnauthorized, ""},
		{"not found", apperror.Remote(apperror.CodeNotFound, "", nil), http.StatusNotFound, handler.CodeNotFound, ""},
		{
			"classified", apperror.Remote("auth/email-already-in-use", "", nil),
			http.StatusConflict, "auth/email-already-in-use", "Cet email est déjà utilisé",
		},
		{
			"unknown hides the raw message", errors.New("mongo: connection pool exhausted"),
			http.StatusInternalServerError, "unknown", apperror.GenericMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := serve(t, func(*http.Request) handler.Response { return handler.Error(tt.err) })
			assert.Equal(t, tt.status, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, env.Error.Message)
			}
		})
	}

	t.Run("validation details", func(t *testing.T) {
		_, env := serve(t, func(*http.Request) handler.Response { return handler.Error(ve) })
		require.NotNil(t, env.Error)
		assert.Equal(t, []string{"Email est requis"}, env.Error.Details["email"])
		assert.Equal(t, []string{validator.MsgInvalidPhone}, env.Error.Details["phone"])
	})
}

func TestErrorRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unavailable backend", apperror.Remote("unavailable", "", nil), true},
		{"network failure", errors.New("network connection reset"), true},
		{"deadline", context.DeadlineExceeded, true},
		{"deterministic failure", apperror.Remote("auth/wrong-password", "", nil), false},
		{"validation", validator.ValidationErrors{{Field: "f", Message: "m"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := serve(t, func(*http.Request) handler.Response { return handler.Error(tt.err) })
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.want, env.Error.Retryable)
		})
	}
}

func TestErrorObserver(t *testing.T) {
	var kinds []apperror.Kind
	observe := handler.WithErrorObserver(func(k apperror.Kind) { kinds = append(kinds, k) })

	serve(t, func(*http.Request) handler.Response {
		return handler.Error(apperror.Remote("unavailable", "", nil))
	}, observe)
	serve(t, func(*http.Request) handler.Response {
		return handler.Error(validator.ValidationErrors{{Field: "f", Message: "m"}})
	}, observe)

	assert.Equal(t, []apperror.Kind{apperror.KindUnavailable}, kinds)
}
