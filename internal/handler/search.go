package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightoffers/internal/aggregator"
	"github.com/dharmasatrya/flightoffers/internal/cache"
	"github.com/dharmasatrya/flightoffers/internal/catalog"
	"github.com/dharmasatrya/flightoffers/internal/expand"
	"github.com/dharmasatrya/flightoffers/internal/models"
	"github.com/dharmasatrya/flightoffers/internal/multileg"
	"github.com/dharmasatrya/flightoffers/internal/providers"
	"github.com/dharmasatrya/flightoffers/internal/seedrand"
	"github.com/dharmasatrya/flightoffers/internal/synth"
)

type SearchHandler struct {
	provider     providers.Provider
	cache        cache.Cache
	cat          *catalog.Catalog
	expander     *expand.Expander
	multiLeg     *multileg.Synthesizer
	synth        *synth.Generator
	paddingFloor int
}

func NewSearchHandler(
	provider providers.Provider,
	c cache.Cache,
	cat *catalog.Catalog,
	tuning multileg.Tuning,
	paddingFloor int,
) *SearchHandler {
	return &SearchHandler{
		provider:     provider,
		cache:        c,
		cat:          cat,
		expander:     expand.New(cat),
		multiLeg:     multileg.New(cat, tuning),
		synth:        synth.New(cat),
		paddingFloor: paddingFloor,
	}
}

func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "invalid_request",
			Message:   "Failed to parse request body: " + err.Error(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     "validation_error",
			Message:   errs.Error(),
			Fields:    errs,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	if entry, found := h.cache.Get(ctx, req); found {
		return c.JSON(http.StatusOK, h.buildResponse(req, entry))
	}

	entry, err := h.run(ctx, req)
	if err != nil {
		log.Printf("Search pipeline failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     "search_error",
			Message:   "Failed to search flights: " + err.Error(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}

	_ = h.cache.Set(ctx, req, entry)
	return c.JSON(http.StatusOK, h.buildResponse(req, entry))
}

// run executes the search pipeline: expand, one provider call, synthesis
// fallback, merge. Provider failures degrade to synthesized data; only a
// defect in the synthesis itself surfaces as an error.
func (h *SearchHandler) run(ctx context.Context, req models.SearchRequest) (entry *cache.Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("offer synthesis: %v", r)
		}
	}()

	origins := h.expander.ExpandAll(req.Origins, req.IncludeNeighboringCountries)
	destinations := h.expander.ExpandAll(req.Destinations, req.IncludeNeighboringCountries)

	travelers := models.TravelerCounts{
		Adults:   req.Adults,
		Children: req.Children,
		Infants:  req.Infants,
	}
	departure := req.DepartureDate()
	primaryOrigin, primaryDestination := origins[0], destinations[0]

	providerOffers, providerDicts, providerOK := h.queryProvider(ctx, req, primaryOrigin, primaryDestination)

	rng := seedrand.New(req.SearchID)

	var multiLegOffers []models.FlightOffer
	includeMultiLeg := req.AutoRecommendStopovers && len(origins) > 0 && len(destinations) > 0
	if includeMultiLeg {
		multiLegOffers = h.multiLeg.Generate(multileg.Params{
			Origins:           origins,
			Destinations:      destinations,
			Departure:         departure,
			Travelers:         travelers,
			AffiliateProvider: req.AffiliateProvider,
		}, rng)
	}

	syntheticOffers := h.synth.Generate(synth.Params{
		Origin:            primaryOrigin,
		Destination:       primaryDestination,
		Departure:         departure,
		TravelClass:       req.TravelClass,
		Travelers:         travelers,
		AffiliateProvider: req.AffiliateProvider,
	})

	flights := aggregator.Merge(aggregator.Sources{
		Provider:        providerOffers,
		ProviderOK:      providerOK,
		Synthetic:       syntheticOffers,
		MultiLeg:        multiLegOffers,
		IncludeMultiLeg: includeMultiLeg,
	}, req.MaxResults, h.paddingFloor)

	dictionaries := aggregator.MergeDictionaries(models.Dictionaries{
		Carriers: h.cat.CarrierNames(),
		Aircraft: h.cat.AircraftNames(),
	}, providerDicts)

	return &cache.Entry{
		Flights:        flights,
		DataSource:     aggregator.DataSource(flights),
		SearchedRoutes: []string{primaryOrigin + "-" + primaryDestination},
		Dictionaries:   dictionaries,
	}, nil
}

// queryProvider makes the single upstream call. Any failure is logged and
// absorbed; the pipeline continues on synthesized data.
func (h *SearchHandler) queryProvider(ctx context.Context, req models.SearchRequest, origin, destination string) ([]models.FlightOffer, *models.Dictionaries, bool) {
	if h.provider == nil {
		return nil, nil, false
	}

	result, err := h.provider.SearchOffers(ctx, providers.SearchParams{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: req.DateRange.From,
		ReturnDate:    req.DateRange.To,
		Adults:        req.Adults,
		Children:      req.Children,
		Infants:       req.Infants,
		TravelClass:   req.TravelClass,
		NonStop:       req.NonStop,
		MaxResults:    req.MaxResults,
		Currency:      catalog.Currency,
	})
	if err != nil {
		log.Printf("Provider %s failed, falling back to synthesized offers: %v", h.provider.Name(), err)
		return nil, nil, false
	}
	return result.Offers, result.Dictionaries, true
}

func (h *SearchHandler) buildResponse(req models.SearchRequest, entry *cache.Entry) models.SearchResponse {
	origins := h.expander.ExpandAll(req.Origins, req.IncludeNeighboringCountries)
	destinations := h.expander.ExpandAll(req.Destinations, req.IncludeNeighboringCountries)

	return models.SearchResponse{
		Success: true,
		Flights: entry.Flights,
		Meta: models.Meta{
			Count:               len(entry.Flights),
			DataSource:          entry.DataSource,
			SearchedRoutes:      entry.SearchedRoutes,
			Timestamp:           time.Now().UTC().Format(time.RFC3339),
			TotalPossibleRoutes: len(origins) * len(destinations),
			EnhancedMultiLeg:    req.AutoRecommendStopovers,
		},
		Dictionaries: entry.Dictionaries,
	}
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
