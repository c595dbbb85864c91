package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmagarde/pharmagarde/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(header string) (ctxID, respID string) {
		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = requestid.FromContext(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(requestid.Header, header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return ctxID, rec.Header().Get(requestid.Header)
	}

	t.Run("generates an id when missing", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve("")
		require.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, respID)
	})

	t.Run("keeps a well formed id", func(t *testing.T) {
		t.Parallel()
		ctxID, respID := serve("abc-123_x")
		assert.Equal(t, "abc-123_x", ctxID)
		assert.Equal(t, "abc-123_x", respID)
	})

	t.Run("replaces malformed ids", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"<script>", strings.Repeat("a", 129)} {
			ctxID, _ := serve(bad)
			assert.NotEqual(t, bad, ctxID)
		}
	})
}

func TestLogExtractor(t *testing.T) {
	_, ok := requestid.LogExtractor(context.Background())
	assert.False(t, ok)

	attr, ok := requestid.LogExtractor(requestid.WithContext(context.Background(), "r1"))
	assert.True(t, ok)
	assert.Equal(t, "r1", attr.Value.String())
}
