package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankQuotes(t *testing.T) {
	quotes := []Quote{
		{ID: "q1", ServiceID: "s1", Price: 4200, LeadTimeDays: 3},
		{ID: "q2", ServiceID: "s1", Price: 3500, LeadTimeDays: 7},
		{ID: "q3", ServiceID: "s2", Price: 100, LeadTimeDays: 1},
		{ID: "q4", ServiceID: "s1", Price: 3500, LeadTimeDays: 5},
	}

	t.Run("filters to the service and sorts by price", func(t *testing.T) {
		ranked := RankQuotes(quotes, "s1", SortByPrice)
		require.Len(t, ranked, 3)
		assert.Equal(t, "q2", ranked[0].ID)
		assert.Equal(t, "q4", ranked[1].ID)
		assert.Equal(t, "q1", ranked[2].ID)
	})

	t.Run("equal prices keep input order", func(t *testing.T) {
		ranked := RankQuotes(quotes, "s1", SortByPrice)
		// q2 and q4 tie at 3500; q2 came first in the input.
		assert.Equal(t, "q2", ranked[0].ID)
		assert.Equal(t, "q4", ranked[1].ID)
	})

	t.Run("sorts by lead time", func(t *testing.T) {
		ranked := RankQuotes(quotes, "s1", SortByLeadTime)
		require.Len(t, ranked, 3)
		assert.Equal(t, "q1", ranked[0].ID)
		assert.Equal(t, "q4", ranked[1].ID)
		assert.Equal(t, "q2", ranked[2].ID)
	})

	t.Run("unknown key keeps input order", func(t *testing.T) {
		ranked := RankQuotes(quotes, "s1", QuoteSortKey("RATING"))
		require.Len(t, ranked, 3)
		assert.Equal(t, []string{ranked[0].ID, ranked[1].ID, ranked[2].ID}, []string{"q1", "q2", "q4"})
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		_ = RankQuotes(quotes, "s1", SortByPrice)
		assert.Equal(t, "q1", quotes[0].ID)
		assert.Equal(t, "q2", quotes[1].ID)
	})

	t.Run("no quotes for service", func(t *testing.T) {
		assert.Empty(t, RankQuotes(quotes, "s9", SortByPrice))
	})
}

func TestBestPrice(t *testing.T) {
	t.Run("nil for empty", func(t *testing.T) {
		assert.Nil(t, BestPrice(nil))
		assert.Nil(t, BestPrice([]Quote{}))
	})

	t.Run("minimum over all quotes", func(t *testing.T) {
		best := BestPrice([]Quote{{Price: 4200}, {Price: 3500}, {Price: 8500}})
		require.NotNil(t, best)
		assert.Equal(t, 3500.0, *best)
	})

	t.Run("single quote is its own best", func(t *testing.T) {
		best := BestPrice([]Quote{{Price: 42}})
		require.NotNil(t, best)
		assert.Equal(t, 42.0, *best)
	})
}
