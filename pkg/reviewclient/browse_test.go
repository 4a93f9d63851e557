package reviewclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mockmate/reviews-service/internal/domain"
)

func sampleReviews() []domain.Review {
	now := time.Now().UTC()
	return []domain.Review{
		{ID: "a", Name: "Sarah", Title: "Great tool", Comment: "Helped with my prep", Rating: 5, Helpful: 2, Timestamp: now.Add(-3 * time.Hour)},
		{ID: "b", Name: "Mike", Title: "Decent", Comment: "Voice recognition struggled", Rating: 3, Helpful: 9, Timestamp: now.Add(-1 * time.Hour)},
		{ID: "c", Name: "Emily", Title: "Perfect practice", Comment: "Great feedback quality", Rating: 5, Helpful: 5, Timestamp: now.Add(-2 * time.Hour)},
	}
}

func TestFilter_ByRating(t *testing.T) {
	result := Filter(sampleReviews(), "", 5)

	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0].ID)
	assert.Equal(t, "c", result[1].ID)
}

func TestFilter_QueryIsCaseInsensitive(t *testing.T) {
	result := Filter(sampleReviews(), "GREAT", 0)

	// Matches title of "a" and comment of "c".
	require.Len(t, result, 2)
}

func TestFilter_QueryMatchesName(t *testing.T) {
	result := Filter(sampleReviews(), "emily", 0)

	require.Len(t, result, 1)
	assert.Equal(t, "c", result[0].ID)
}

func TestFilter_QueryAndRatingCombine(t *testing.T) {
	result := Filter(sampleReviews(), "great", 5)

	require.Len(t, result, 2)

	result = Filter(sampleReviews(), "voice", 5)
	assert.Empty(t, result)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	reviews := sampleReviews()
	Filter(reviews, "great", 0)

	assert.Equal(t, "a", reviews[0].ID)
	assert.Len(t, reviews, 3)
}

func TestSort_Orders(t *testing.T) {
	tests := []struct {
		name  string
		order SortOrder
		want  []string
	}{
		{"newest first", SortNewest, []string{"b", "c", "a"}},
		{"oldest first", SortOldest, []string{"a", "c", "b"}},
		{"highest rating first", SortRating, []string{"a", "c", "b"}},
		{"most helpful first", SortHelpful, []string{"b", "c", "a"}},
		{"unknown falls back to newest", SortOrder("bogus"), []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := sampleReviews()
			Sort(reviews, tt.order)

			got := make([]string, len(reviews))
			for i, r := range reviews {
				got[i] = r.ID
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrowse_FilterThenSort(t *testing.T) {
	result := Browse(sampleReviews(), BrowseOptions{
		Query:  "great",
		Rating: 5,
		Sort:   SortHelpful,
	})

	require.Len(t, result, 2)
	assert.Equal(t, "c", result[0].ID)
	assert.Equal(t, "a", result[1].ID)
}
