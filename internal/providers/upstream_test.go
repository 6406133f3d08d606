package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightoffers/internal/models"
)

const upstreamFixture = `{
  "data": [
    {
      "id": "offer-1",
      "price": {"currency": "EUR", "total": "712.40", "base": "560.00", "fees": [{"amount": "152.40", "type": "SUPPLIER"}]},
      "itineraries": [
        {
          "duration": "PT10H20M",
          "segments": [
            {
              "departure": {"iataCode": "WAW", "at": "2025-03-01T10:30:00Z"},
              "arrival": {"iataCode": "BKK", "at": "2025-03-01T20:50:00Z"},
              "carrierCode": "TG",
              "number": "917",
              "aircraft": {"code": "77W"},
              "duration": "PT10H20M"
            }
          ]
        }
      ],
      "travelerPricings": [
        {"travelerId": "1", "travelerType": "ADULT", "fareOption": "STANDARD",
         "price": {"currency": "EUR", "total": "712.40", "base": "560.00"}}
      ]
    }
  ],
  "dictionaries": {
    "carriers": {"TG": "THAI AIRWAYS INTERNATIONAL"},
    "aircraft": {"77W": "BOEING 777-300ER"}
  }
}`

func searchParams() SearchParams {
	return SearchParams{
		Origin:        "WAW",
		Destination:   "BKK",
		DepartureDate: "2025-03-01",
		Adults:        1,
		TravelClass:   "ECONOMY",
		MaxResults:    50,
		Currency:      "EUR",
	}
}

func TestSearchOffersNormalizesResponse(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamFixture))
	}))
	defer srv.Close()

	p := NewUpstreamProvider(UpstreamConfig{BaseURL: srv.URL, APIKey: "test-key"}, nil)
	result, err := p.SearchOffers(context.Background(), searchParams())
	require.NoError(t, err)

	assert.Equal(t, []string{"WAW"}, gotQuery["originLocationCode"])
	assert.Equal(t, []string{"BKK"}, gotQuery["destinationLocationCode"])
	assert.Equal(t, []string{"2025-03-01"}, gotQuery["departureDate"])

	require.Len(t, result.Offers, 1)
	offer := result.Offers[0]
	assert.Equal(t, "offer-1", offer.ID)
	assert.Equal(t, models.SourceProvider, offer.Source)
	assert.Equal(t, "712.40", offer.Price.Total)
	require.Len(t, offer.Itineraries, 1)
	require.Len(t, offer.Itineraries[0].Segments, 1)
	assert.Equal(t, "TG", offer.Itineraries[0].Segments[0].CarrierCode)
	require.Len(t, offer.TravelerPricings, 1)

	require.NotNil(t, result.Dictionaries)
	assert.Equal(t, "THAI AIRWAYS INTERNATIONAL", result.Dictionaries.Carriers["TG"])
}

func TestSearchOffersNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewUpstreamProvider(UpstreamConfig{BaseURL: srv.URL}, nil)
	_, err := p.SearchOffers(context.Background(), searchParams())
	require.Error(t, err)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "upstream", provErr.Provider)
}

func TestSearchOffersConnectionRefused(t *testing.T) {
	p := NewUpstreamProvider(UpstreamConfig{BaseURL: "http://127.0.0.1:1"}, nil)
	_, err := p.SearchOffers(context.Background(), searchParams())
	assert.Error(t, err)
}

func TestProviderErrorUnwraps(t *testing.T) {
	inner := errors.New("boom")
	err := NewProviderError("upstream", inner)

	assert.Equal(t, "upstream: boom", err.Error())
	assert.True(t, errors.Is(err, inner))
}
