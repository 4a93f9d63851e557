// Package memory provides the in-process fallback review store used in demo
// mode and as the degraded path when the external document store is
// unreachable. Contents are process-local and lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mockmate/reviews-service/internal/domain"
)

// Store is a mutex-guarded in-memory review list. Construct one per process
// and inject it; there is no package-level instance.
type Store struct {
	mu      sync.Mutex
	reviews []domain.Review
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{reviews: []domain.Review{}}
}

// NewSeeded creates a store pre-populated with the demo review set shown to
// users when no store credential is configured.
func NewSeeded() *Store {
	now := time.Now().UTC()
	return &Store{reviews: []domain.Review{
		{
			ID:            "demo-1",
			Name:          "Sarah Johnson",
			Email:         "sarah.j@email.com",
			Rating:        5,
			Title:         "Amazing AI Interview Experience!",
			Comment:       "This AI assistant helped me prepare for my software engineering interview. The feedback was incredibly detailed and the voice interaction felt natural. I landed the job!",
			InterviewType: domain.InterviewTypeTechnical,
			InterviewRole: "Software Engineer",
			Timestamp:     now.Add(-2 * 24 * time.Hour),
			Helpful:       12,
			Verified:      true,
		},
		{
			ID:            "demo-2",
			Name:          "Michael Chen",
			Email:         "m.chen@email.com",
			Rating:        4,
			Title:         "Great Practice Tool",
			Comment:       "The AI provided realistic interview questions and good feedback. The voice recognition worked well most of the time. Would recommend for interview prep.",
			InterviewType: domain.InterviewTypeBehavioral,
			InterviewRole: "Product Manager",
			Timestamp:     now.Add(-5 * 24 * time.Hour),
			Helpful:       8,
			Verified:      true,
		},
		{
			ID:            "demo-3",
			Name:          "Emily Rodriguez",
			Email:         "emily.r@email.com",
			Rating:        5,
			Title:         "Perfect for Remote Interview Prep",
			Comment:       "As someone preparing for remote interviews, this tool was perfect. The AI understood my responses well and provided constructive feedback. Highly recommended!",
			InterviewType: domain.InterviewTypeTechnical,
			InterviewRole: "Data Scientist",
			Timestamp:     now.Add(-7 * 24 * time.Hour),
			Helpful:       15,
			Verified:      true,
		},
	}}
}

// LoadAll returns a copy of the current list; callers may mutate the result
// freely without affecting the store.
func (s *Store) LoadAll(ctx context.Context) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Review, len(s.reviews))
	copy(out, s.reviews)
	return out, nil
}

// ReplaceAll swaps the list wholesale. It never fails.
func (s *Store) ReplaceAll(ctx context.Context, reviews []domain.Review) error {
	cp := make([]domain.Review, len(reviews))
	copy(cp, reviews)

	s.mu.Lock()
	s.reviews = cp
	s.mu.Unlock()
	return nil
}
