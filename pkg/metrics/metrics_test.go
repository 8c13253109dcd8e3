package metrics_test

import (
	"context"
	"drills/pkg/metrics"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultBucketsSorted(t *testing.T) {
	require.True(t, sort.Float64sAreSorted(metrics.DefaultBuckets))
}

func TestProvider_ExportsInstruments(t *testing.T) {
	p, err := metrics.NewProvider()
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	counter, err := p.Meter("drills/test").Int64Counter("drills_test_calls")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "drills_test_calls")
	require.Contains(t, string(body), "go_goroutines")
}
