package repository

import (
	"context"

	"github.com/mockmate/reviews-service/internal/domain"
)

// ReviewStore is the persistence boundary for the review collection. All
// reviews live in one logical document; reads and writes operate on the
// whole list.
//
// Implementations: jsonbin (remote document store) and memory (in-process
// fallback used in demo mode and as the degraded path).
type ReviewStore interface {
	// LoadAll returns the full review list, newest first. A store that has
	// never been written to returns an empty list, not an error.
	LoadAll(ctx context.Context) ([]domain.Review, error)

	// ReplaceAll overwrites the document with the given list wholesale.
	// There is no partial update and no concurrency token: overlapping
	// writes are last-writer-wins.
	ReplaceAll(ctx context.Context, reviews []domain.Review) error
}
