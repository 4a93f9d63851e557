// Package jsonbin implements the ReviewStore against a hosted JSON-document
// service (JSONBin v3 API shape): one bin holds the entire review list as a
// single document. Reads fetch the whole document, writes replace it
// wholesale.
//
// Known limitation, accepted at this feature's traffic level: two
// overlapping read-modify-write sequences race and the last write wins —
// there is no concurrency token and no compare-and-swap.
package jsonbin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mockmate/reviews-service/internal/domain"
	apperrors "github.com/mockmate/reviews-service/pkg/errors"
	"github.com/mockmate/reviews-service/pkg/httpclient"
)

// masterKeyHeader authenticates requests against the bin.
const masterKeyHeader = "X-Master-Key"

// document is the persisted shape of the bin.
type document struct {
	Reviews []domain.Review `json:"reviews"`
}

// readEnvelope is the GET response wrapper returned by the store
// ({"record": <document>, "metadata": ...}).
type readEnvelope struct {
	Record document `json:"record"`
}

// Store talks to one remote document bin.
type Store struct {
	client *httpclient.CircuitBreakerClient
	binURL string
	apiKey string
	logger *slog.Logger
}

// New creates a document store adapter for the given bin. All calls go
// through the circuit breaker so a flapping store degrades quickly.
func New(client *httpclient.CircuitBreakerClient, binURL, apiKey string, logger *slog.Logger) *Store {
	return &Store{
		client: client,
		binURL: binURL,
		apiKey: apiKey,
		logger: logger,
	}
}

// LoadAll fetches the full review list. A bin that has never been written
// (404) yields an empty list, not an error. Every other failure wraps
// ErrStoreUnavailable.
func (s *Store) LoadAll(ctx context.Context) ([]domain.Review, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.binURL+"/latest", http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create store read request: %w", err)
	}
	req.Header.Set(masterKeyHeader, s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		// The document is created lazily on first write.
		return []domain.Review{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("store read returned status %d", resp.StatusCode))
	}

	var envelope readEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("decode store document: %w", err))
	}

	reviews := envelope.Record.Reviews
	if reviews == nil {
		reviews = []domain.Review{}
	}

	s.logger.DebugContext(ctx, "loaded review document",
		slog.Int("count", len(reviews)),
	)

	return reviews, nil
}

// ReplaceAll overwrites the bin with the given list. Non-2xx responses wrap
// ErrStoreWrite.
func (s *Store) ReplaceAll(ctx context.Context, reviews []domain.Review) error {
	payload, err := json.Marshal(document{Reviews: reviews})
	if err != nil {
		return fmt.Errorf("encode store document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.binURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create store write request: %w", err)
	}
	req.Header.Set(masterKeyHeader, s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return apperrors.StoreWrite(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.StoreWrite(fmt.Errorf("store write returned status %d", resp.StatusCode))
	}

	s.logger.DebugContext(ctx, "replaced review document",
		slog.Int("count", len(reviews)),
	)

	return nil
}

// Ping issues a lightweight read to verify the store is reachable, for use
// as a readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.LoadAll(ctx)
	return err
}
