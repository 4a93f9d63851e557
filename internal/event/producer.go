package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mockmate/reviews-service/internal/domain"
	pkgkafka "github.com/mockmate/reviews-service/pkg/kafka"
)

// Kafka topics for review domain events.
const (
	TopicReviewCreated      = "reviews.review.created"
	TopicReviewHelpfulVoted = "reviews.review.helpful_voted"
)

const (
	aggregateTypeReview = "review"
	sourceReviews       = "reviews-service"
)

// ReviewCreatedData is the payload for a review.created event.
type ReviewCreatedData struct {
	ID            string `json:"id"`
	Rating        int    `json:"rating"`
	Title         string `json:"title"`
	InterviewType string `json:"interviewType"`
	InterviewRole string `json:"interviewRole"`
	Demo          bool   `json:"demo"`
}

// HelpfulVotedData is the payload for a review.helpful_voted event.
type HelpfulVotedData struct {
	ReviewID string `json:"reviewId"`
	Delta    int    `json:"delta"`
	Helpful  int    `json:"helpful"`
}

// Producer publishes review domain events to Kafka. Publishing is strictly
// best-effort: callers log failures and never let them affect the API
// response.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the reviews service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishReviewCreated publishes a review.created event.
func (p *Producer) PublishReviewCreated(ctx context.Context, review *domain.Review, demo bool) error {
	data := ReviewCreatedData{
		ID:            review.ID,
		Rating:        review.Rating,
		Title:         review.Title,
		InterviewType: review.InterviewType,
		InterviewRole: review.InterviewRole,
		Demo:          demo,
	}

	event, err := pkgkafka.NewEvent(TopicReviewCreated, review.ID, aggregateTypeReview, sourceReviews, data)
	if err != nil {
		return fmt.Errorf("create review.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewCreated, event); err != nil {
		return fmt.Errorf("publish review.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.created event",
		slog.String("review_id", review.ID),
	)

	return nil
}

// PublishHelpfulVoted publishes a review.helpful_voted event.
func (p *Producer) PublishHelpfulVoted(ctx context.Context, reviewID string, delta, helpful int) error {
	data := HelpfulVotedData{
		ReviewID: reviewID,
		Delta:    delta,
		Helpful:  helpful,
	}

	event, err := pkgkafka.NewEvent(TopicReviewHelpfulVoted, reviewID, aggregateTypeReview, sourceReviews, data)
	if err != nil {
		return fmt.Errorf("create review.helpful_voted event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewHelpfulVoted, event); err != nil {
		return fmt.Errorf("publish review.helpful_voted event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.helpful_voted event",
		slog.String("review_id", reviewID),
		slog.Int("delta", delta),
	)

	return nil
}
