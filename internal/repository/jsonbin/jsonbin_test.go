package jsonbin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/reviews-service/internal/domain"
	apperrors "github.com/mockmate/reviews-service/pkg/errors"
	"github.com/mockmate/reviews-service/pkg/httpclient"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestStore builds a Store against the given handler with retries off
// and a breaker that cannot trip within a single test.
func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clientCfg := httpclient.Config{
		Timeout:         2 * time.Second,
		MaxRetries:      0,
		RetryWaitMin:    time.Millisecond,
		RetryWaitMax:    time.Millisecond,
		MaxConnsPerHost: 5,
	}
	cbCfg := httpclient.DefaultCircuitBreakerConfig("jsonbin-test")
	cbCfg.MinRequests = 1000

	client := httpclient.NewCircuitBreakerClient(httpclient.New(clientCfg), cbCfg, newTestLogger())
	return New(client, server.URL+"/b/test-bin", "secret-key", newTestLogger())
}

func TestLoadAll_Success(t *testing.T) {
	var gotPath, gotKey string
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Master-Key")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"record": map[string]any{
				"reviews": []domain.Review{
					{ID: "r-1", Rating: 5, Title: "First"},
					{ID: "r-2", Rating: 3, Title: "Second"},
				},
			},
			"metadata": map[string]any{"id": "test-bin"},
		})
	})

	reviews, err := store.LoadAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/b/test-bin/latest", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	require.Len(t, reviews, 2)
	assert.Equal(t, "r-1", reviews[0].ID)
}

func TestLoadAll_NotFoundYieldsEmptyList(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	reviews, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestLoadAll_NullDocumentYieldsEmptyList(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"record":{}}`))
	})

	reviews, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestLoadAll_ServerErrorIsStoreUnavailable(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := store.LoadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestLoadAll_AuthFailureIsStoreUnavailable(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := store.LoadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestReplaceAll_WritesWholeDocument(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody document
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	reviews := []domain.Review{
		{ID: "r-1", Rating: 5, Title: "Kept"},
		{ID: "r-2", Rating: 2, Title: "Also kept"},
	}
	require.NoError(t, store.ReplaceAll(context.Background(), reviews))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/b/test-bin", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	require.Len(t, gotBody.Reviews, 2)
	assert.Equal(t, "r-1", gotBody.Reviews[0].ID)
}

func TestReplaceAll_FailureIsStoreWrite(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := store.ReplaceAll(context.Background(), []domain.Review{{ID: "r-1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStoreWrite)
}

func TestPing(t *testing.T) {
	healthy := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"record":{"reviews":[]}}`))
	})
	assert.NoError(t, healthy.Ping(context.Background()))

	broken := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	assert.Error(t, broken.Ping(context.Background()))
}
