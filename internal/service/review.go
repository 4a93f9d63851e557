package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mockmate/reviews-service/internal/domain"
	"github.com/mockmate/reviews-service/internal/event"
	"github.com/mockmate/reviews-service/internal/repository"
	"github.com/mockmate/reviews-service/internal/repository/memory"
)

// Degraded-response notices surfaced to users when the document store is
// unreachable. Browsing and submitting never hard-fail; the worst case is
// demo data plus one of these messages.
const (
	noticeUsingDemoData = "using demo data due to connection error"
	noticeSavedLocally  = "saved locally due to connection error"
)

// ReviewService implements the review API operations over the document
// store, degrading to the in-process fallback per the policy table:
//
//	List:        read failure  -> fallback data, demo flag, notice
//	Create:      read or write failure -> review kept in fallback, demo flag, notice
//	VoteHelpful: read or write failure -> hard error
//
// The vote path fails hard on purpose: degrading it would silently discard
// a user action with no recovery record, whereas a degraded list or create
// is visible in the response.
type ReviewService struct {
	store    repository.ReviewStore
	fallback *memory.Store
	demoMode bool
	producer *event.Producer
	logger   *slog.Logger
}

// NewReviewService creates a new review service. In demo mode the caller
// passes the seeded fallback store as the canonical store as well.
func NewReviewService(store repository.ReviewStore, fallback *memory.Store, demoMode bool, producer *event.Producer, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:    store,
		fallback: fallback,
		demoMode: demoMode,
		producer: producer,
		logger:   logger,
	}
}

// CreateReviewInput holds the caller-supplied review fields. Identity,
// timestamp, helpful count, and verified flag are always server-assigned.
type CreateReviewInput struct {
	Name          string
	Email         string
	Rating        int
	Title         string
	Comment       string
	InterviewType string
	InterviewRole string
}

// ListResult is the outcome of listing reviews.
type ListResult struct {
	Reviews []domain.Review
	Stats   domain.ReviewStats
	Demo    bool
	Notice  string
}

// CreateResult is the outcome of creating a review.
type CreateResult struct {
	Review domain.Review
	Stats  domain.ReviewStats
	Demo   bool
	Notice string
}

// VoteResult is the outcome of a helpful vote.
type VoteResult struct {
	Stats domain.ReviewStats
	Demo  bool
}

// ListReviews returns the full review collection with derived statistics.
// A store read failure degrades to the fallback data instead of erroring.
func (s *ReviewService) ListReviews(ctx context.Context) ListResult {
	reviews, err := s.store.LoadAll(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "store read failed, serving fallback data",
			slog.String("error", err.Error()),
		)
		reviews, _ = s.fallback.LoadAll(ctx)
		return ListResult{
			Reviews: reviews,
			Stats:   domain.CalculateStats(reviews),
			Demo:    true,
			Notice:  noticeUsingDemoData,
		}
	}

	return ListResult{
		Reviews: reviews,
		Stats:   domain.CalculateStats(reviews),
		Demo:    s.demoMode,
	}
}

// CreateReview stores a new review at the head of the collection. The
// user-visible contract is "your review was accepted": when the document
// store cannot be read or written, the review is kept in the in-process
// fallback and the response is flagged as degraded rather than failed.
func (s *ReviewService) CreateReview(ctx context.Context, input *CreateReviewInput) CreateResult {
	review := domain.Review{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Email:         input.Email,
		Rating:        input.Rating,
		Title:         input.Title,
		Comment:       input.Comment,
		InterviewType: input.InterviewType,
		InterviewRole: input.InterviewRole,
		Timestamp:     time.Now().UTC(),
		Helpful:       0,
		Verified:      false,
	}

	result := s.persistNewReview(ctx, review)

	if err := s.producer.PublishReviewCreated(ctx, &review, result.Demo); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review.created event",
			slog.String("review_id", review.ID),
			slog.String("error", err.Error()),
		)
		// Event publishing never fails the operation.
	}

	s.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ID),
		slog.Int("rating", review.Rating),
		slog.Bool("demo", result.Demo),
	)

	return result
}

func (s *ReviewService) persistNewReview(ctx context.Context, review domain.Review) CreateResult {
	current, err := s.store.LoadAll(ctx)
	if err == nil {
		updated := prepend(review, current)
		if err = s.store.ReplaceAll(ctx, updated); err == nil {
			return CreateResult{
				Review: review,
				Stats:  domain.CalculateStats(updated),
				Demo:   s.demoMode,
			}
		}
	}

	s.logger.WarnContext(ctx, "store unavailable, saving review to fallback",
		slog.String("review_id", review.ID),
		slog.String("error", err.Error()),
	)

	current, _ = s.fallback.LoadAll(ctx)
	updated := prepend(review, current)
	_ = s.fallback.ReplaceAll(ctx, updated)

	return CreateResult{
		Review: review,
		Stats:  domain.CalculateStats(updated),
		Demo:   true,
		Notice: noticeSavedLocally,
	}
}

// VoteHelpful adds delta to the helpful counter of the review with the
// given id. An unknown id is a no-op, not an error. Unlike list and create,
// a store failure here propagates to the caller.
func (s *ReviewService) VoteHelpful(ctx context.Context, reviewID string, delta int) (*VoteResult, error) {
	reviews, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reviews for helpful vote: %w", err)
	}

	voted := -1
	for i := range reviews {
		if reviews[i].ID == reviewID {
			reviews[i].Helpful += delta
			voted = reviews[i].Helpful
			break
		}
	}

	if err := s.store.ReplaceAll(ctx, reviews); err != nil {
		return nil, fmt.Errorf("persist helpful vote: %w", err)
	}

	if voted >= 0 {
		if err := s.producer.PublishHelpfulVoted(ctx, reviewID, delta, voted); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish review.helpful_voted event",
				slog.String("review_id", reviewID),
				slog.String("error", err.Error()),
			)
		}

		s.logger.InfoContext(ctx, "helpful vote recorded",
			slog.String("review_id", reviewID),
			slog.Int("delta", delta),
		)
	} else {
		s.logger.DebugContext(ctx, "helpful vote for unknown review ignored",
			slog.String("review_id", reviewID),
		)
	}

	return &VoteResult{
		Stats: domain.CalculateStats(reviews),
		Demo:  s.demoMode,
	}, nil
}

func prepend(review domain.Review, reviews []domain.Review) []domain.Review {
	updated := make([]domain.Review, 0, len(reviews)+1)
	updated = append(updated, review)
	return append(updated, reviews...)
}
