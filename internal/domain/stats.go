package domain

import (
	"math"
	"slices"
)

// recentReviewsLimit is the number of reviews exposed in ReviewStats.RecentReviews.
const recentReviewsLimit = 5

// ReviewStats is the derived aggregate view over a review collection.
// It is computed on demand and never persisted.
type ReviewStats struct {
	TotalReviews       int         `json:"totalReviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
	RecentReviews      []Review    `json:"recentReviews"`
}

// CalculateStats computes summary statistics for the given reviews.
//
// AverageRating is the arithmetic mean of all ratings rounded to one decimal
// place, or 0 for an empty input. RatingDistribution always carries all five
// buckets; ratings outside [MinRating, MaxRating] land in no bucket, so the
// distribution sums to the count of in-range ratings. RecentReviews holds the
// five most recent records by timestamp, newest first.
//
// The input slice is never mutated: recency sorting happens on a copy.
func CalculateStats(reviews []Review) ReviewStats {
	distribution := make(map[int]int, MaxRating)
	for r := MinRating; r <= MaxRating; r++ {
		distribution[r] = 0
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
		if review.Rating >= MinRating && review.Rating <= MaxRating {
			distribution[review.Rating]++
		}
	}

	average := 0.0
	if len(reviews) > 0 {
		average = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	recent := make([]Review, len(reviews))
	copy(recent, reviews)
	slices.SortStableFunc(recent, func(a, b Review) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if len(recent) > recentReviewsLimit {
		recent = recent[:recentReviewsLimit]
	}

	return ReviewStats{
		TotalReviews:       len(reviews),
		AverageRating:      average,
		RatingDistribution: distribution,
		RecentReviews:      recent,
	}
}
