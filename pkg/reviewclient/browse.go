package reviewclient

import (
	"slices"
	"strings"

	"github.com/mockmate/reviews-service/internal/domain"
)

// SortOrder selects how Browse orders reviews.
type SortOrder string

const (
	SortNewest  SortOrder = "newest"
	SortOldest  SortOrder = "oldest"
	SortRating  SortOrder = "rating"
	SortHelpful SortOrder = "helpful"
)

// BrowseOptions narrows and orders a review listing on the client side.
// A zero Rating means no rating filter; an empty Query matches everything.
type BrowseOptions struct {
	Query  string
	Rating int
	Sort   SortOrder
}

// Browse applies filtering and sorting to reviews without mutating the
// input slice.
func Browse(reviews []domain.Review, opts BrowseOptions) []domain.Review {
	result := Filter(reviews, opts.Query, opts.Rating)
	Sort(result, opts.Sort)
	return result
}

// Filter returns the reviews matching the query and the rating. The query
// is a case-insensitive substring match against title, comment and name.
func Filter(reviews []domain.Review, query string, rating int) []domain.Review {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if rating != 0 && r.Rating != rating {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// Sort orders reviews in place. Unknown orders fall back to newest first.
func Sort(reviews []domain.Review, order SortOrder) {
	switch order {
	case SortOldest:
		slices.SortStableFunc(reviews, func(a, b domain.Review) int {
			return a.Timestamp.Compare(b.Timestamp)
		})
	case SortRating:
		slices.SortStableFunc(reviews, func(a, b domain.Review) int {
			return b.Rating - a.Rating
		})
	case SortHelpful:
		slices.SortStableFunc(reviews, func(a, b domain.Review) int {
			return b.Helpful - a.Helpful
		})
	default:
		slices.SortStableFunc(reviews, func(a, b domain.Review) int {
			return b.Timestamp.Compare(a.Timestamp)
		})
	}
}

func matchesQuery(r domain.Review, query string) bool {
	return strings.Contains(strings.ToLower(r.Title), query) ||
		strings.Contains(strings.ToLower(r.Comment), query) ||
		strings.Contains(strings.ToLower(r.Name), query)
}
