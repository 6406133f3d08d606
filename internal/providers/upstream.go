package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dharmasatrya/flightoffers/internal/models"
	"github.com/dharmasatrya/flightoffers/internal/ratelimit"
)

// Wire types for the upstream offer API.
type upstreamResponse struct {
	Data         []upstreamOffer       `json:"data"`
	Dictionaries *upstreamDictionaries `json:"dictionaries"`
}

type upstreamOffer struct {
	ID               string                    `json:"id"`
	Price            upstreamPrice             `json:"price"`
	Itineraries      []upstreamItinerary       `json:"itineraries"`
	TravelerPricings []upstreamTravelerPricing `json:"travelerPricings"`
}

type upstreamPrice struct {
	Currency string        `json:"currency"`
	Total    string        `json:"total"`
	Base     string        `json:"base"`
	Fees     []upstreamFee `json:"fees"`
}

type upstreamFee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

type upstreamItinerary struct {
	Duration string            `json:"duration"`
	Segments []upstreamSegment `json:"segments"`
}

type upstreamSegment struct {
	Departure   upstreamEndpoint `json:"departure"`
	Arrival     upstreamEndpoint `json:"arrival"`
	CarrierCode string           `json:"carrierCode"`
	Number      string           `json:"number"`
	Aircraft    upstreamAircraft `json:"aircraft"`
	Duration    string           `json:"duration"`
}

type upstreamEndpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type upstreamAircraft struct {
	Code string `json:"code"`
}

type upstreamTravelerPricing struct {
	TravelerID   string        `json:"travelerId"`
	TravelerType string        `json:"travelerType"`
	FareOption   string        `json:"fareOption"`
	Price        upstreamPrice `json:"price"`
}

type upstreamDictionaries struct {
	Carriers map[string]string `json:"carriers"`
	Aircraft map[string]string `json:"aircraft"`
}

type UpstreamConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// UpstreamProvider talks to the external offer API over HTTP, behind a
// token-bucket limiter.
type UpstreamProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *ratelimit.Limiter
}

func NewUpstreamProvider(cfg UpstreamConfig, limiter *ratelimit.Limiter) *UpstreamProvider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &UpstreamProvider{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

func (p *UpstreamProvider) Name() string {
	return "upstream"
}

func (p *UpstreamProvider) SearchOffers(ctx context.Context, params SearchParams) (*Result, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, NewProviderError(p.Name(), err)
		}
	}

	req, err := p.buildRequest(ctx, params)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, NewProviderError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewProviderError(p.Name(), fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, NewProviderError(p.Name(), fmt.Errorf("decode response: %w", err))
	}

	return p.normalize(body), nil
}

func (p *UpstreamProvider) buildRequest(ctx context.Context, params SearchParams) (*http.Request, error) {
	q := url.Values{}
	q.Set("originLocationCode", params.Origin)
	q.Set("destinationLocationCode", params.Destination)
	q.Set("departureDate", params.DepartureDate)
	if params.ReturnDate != "" {
		q.Set("returnDate", params.ReturnDate)
	}
	q.Set("adults", strconv.Itoa(params.Adults))
	if params.Children > 0 {
		q.Set("children", strconv.Itoa(params.Children))
	}
	if params.Infants > 0 {
		q.Set("infants", strconv.Itoa(params.Infants))
	}
	q.Set("travelClass", params.TravelClass)
	if params.NonStop {
		q.Set("nonStop", "true")
	}
	q.Set("max", strconv.Itoa(params.MaxResults))
	q.Set("currencyCode", params.Currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/v2/shopping/flight-offers?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (p *UpstreamProvider) normalize(body upstreamResponse) *Result {
	result := &Result{
		Offers: make([]models.FlightOffer, 0, len(body.Data)),
	}

	for _, o := range body.Data {
		offer := models.FlightOffer{
			ID:     o.ID,
			Source: models.SourceProvider,
			Price:  normalizePrice(o.Price),
		}
		for _, it := range o.Itineraries {
			itinerary := models.Itinerary{Duration: it.Duration}
			for _, seg := range it.Segments {
				itinerary.Segments = append(itinerary.Segments, models.Segment{
					Departure:   models.Endpoint{IATACode: seg.Departure.IATACode, At: seg.Departure.At},
					Arrival:     models.Endpoint{IATACode: seg.Arrival.IATACode, At: seg.Arrival.At},
					CarrierCode: seg.CarrierCode,
					Number:      seg.Number,
					Aircraft:    models.Aircraft{Code: seg.Aircraft.Code},
					Duration:    seg.Duration,
				})
			}
			offer.Itineraries = append(offer.Itineraries, itinerary)
		}
		for _, tp := range o.TravelerPricings {
			offer.TravelerPricings = append(offer.TravelerPricings, models.TravelerPricing{
				TravelerID:   tp.TravelerID,
				TravelerType: tp.TravelerType,
				FareOption:   tp.FareOption,
				Price:        normalizePrice(tp.Price),
			})
		}
		result.Offers = append(result.Offers, offer)
	}

	if body.Dictionaries != nil {
		result.Dictionaries = &models.Dictionaries{
			Carriers: body.Dictionaries.Carriers,
			Aircraft: body.Dictionaries.Aircraft,
		}
	}

	return result
}

func normalizePrice(p upstreamPrice) models.Price {
	price := models.Price{
		Currency: p.Currency,
		Total:    p.Total,
		Base:     p.Base,
	}
	for _, f := range p.Fees {
		price.Fees = append(price.Fees, models.Fee{Amount: f.Amount, Type: f.Type})
	}
	return price
}
