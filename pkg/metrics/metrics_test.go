package metrics_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pharmagarde/pharmagarde/pkg/metrics"
	"github.com/pharmagarde/pharmagarde/pkg/retry"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()

	r := retry.New(
		retry.WithMaxAttempts(3),
		retry.WithSleep(func(context.Context, time.Duration) error { return nil }),
		retry.WithOnRetry(m.OnRetry("register")),
	)
	_ = r.Run(context.Background(), func(context.Context) error { return errors.New("down") })
	m.ObserveError("unavailable")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, `pharmagarde_retries_total{operation="register"} 2`)
	assert.Contains(t, body, `pharmagarde_retry_delay_seconds_total{operation="register"} 3`)
	assert.Contains(t, body, `pharmagarde_errors_total{kind="unavailable"} 1`)
}
