package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/flightoffers/internal/models"
)

func testRequest() models.SearchRequest {
	return models.SearchRequest{
		Origins:      []string{"WAW"},
		Destinations: []string{"BKK"},
		DateRange:    models.DateRange{From: "2025-03-01"},
		TravelClass:  models.ClassEconomy,
		Adults:       1,
		MaxResults:   50,
		SearchID:     "abc123",
	}
}

func TestGenerateKeyIsStable(t *testing.T) {
	assert.Equal(t, generateKey(testRequest()), generateKey(testRequest()))
}

func TestGenerateKeyVariesWithRequest(t *testing.T) {
	base := generateKey(testRequest())

	other := testRequest()
	other.SearchID = "different"
	assert.NotEqual(t, base, generateKey(other))

	other = testRequest()
	other.Destinations = []string{"SIN"}
	assert.NotEqual(t, base, generateKey(other))

	other = testRequest()
	other.AutoRecommendStopovers = true
	assert.NotEqual(t, base, generateKey(other))
}

func TestNoOpCacheNeverHits(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, testRequest(), &Entry{DataSource: models.DataSourceMock}))

	entry, found := c.Get(ctx, testRequest())
	assert.False(t, found)
	assert.Nil(t, entry)
	assert.NoError(t, c.Close())
}
