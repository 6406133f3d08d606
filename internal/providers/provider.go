package providers

import (
	"context"

	"github.com/dharmasatrya/flightoffers/internal/models"
)

type SearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	Children      int
	Infants       int
	TravelClass   string
	NonStop       bool
	MaxResults    int
	Currency      string
}

type Result struct {
	Offers       []models.FlightOffer
	Dictionaries *models.Dictionaries
}

// Provider is the upstream flight-data source. It is queried exactly once
// per search; failures are absorbed by the caller, never retried.
type Provider interface {
	Name() string
	SearchOffers(ctx context.Context, params SearchParams) (*Result, error)
}

type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Err:      err,
	}
}
