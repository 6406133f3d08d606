// Package multileg synthesizes two-leg itineraries through curated hub
// airports with a multi-day stopover, priced against the direct fare for
// the same pair. Generation is driven entirely by the request's seeded
// random stream, so a search id reproduces the exact same offers.
package multileg

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dharmasatrya/flightoffers/internal/catalog"
	"github.com/dharmasatrya/flightoffers/internal/models"
	"github.com/dharmasatrya/flightoffers/internal/seedrand"
	"github.com/dharmasatrya/flightoffers/pkg/currency"
)

// First legs push back mid-morning; the exact hour is cosmetic.
const departureTimeOfDay = 10*time.Hour + 30*time.Minute

type Tuning struct {
	// AcceptanceRatio caps how much a hub itinerary may cost relative to
	// the direct fare.
	AcceptanceRatio float64
	// LongStayDiscount is applied when the layover exceeds
	// LongStayThresholdDays.
	LongStayDiscount      float64
	LongStayThresholdDays int
	// Layover days are sampled from [MinLayoverDays, MaxLayoverDays].
	// The per-hub catalog range is deliberately not consulted; every
	// candidate samples this one window.
	MinLayoverDays int
	MaxLayoverDays int
}

func DefaultTuning() Tuning {
	return Tuning{
		AcceptanceRatio:       1.15,
		LongStayDiscount:      0.05,
		LongStayThresholdDays: 2,
		MinLayoverDays:        2,
		MaxLayoverDays:        3,
	}
}

type Params struct {
	Origins           []string
	Destinations      []string
	Departure         time.Time
	Travelers         models.TravelerCounts
	AffiliateProvider string
}

type Synthesizer struct {
	cat    *catalog.Catalog
	tuning Tuning
}

func New(cat *catalog.Catalog, tuning Tuning) *Synthesizer {
	return &Synthesizer{cat: cat, tuning: tuning}
}

// Generate enumerates every origin/destination pair against the hub
// catalog and returns the accepted candidates, unsorted. At most one
// candidate survives per (origin, hub, destination, layover-days) tuple.
func (s *Synthesizer) Generate(p Params, rng *seedrand.Source) []models.FlightOffer {
	seen := make(map[string]bool)
	var offers []models.FlightOffer

	for _, origin := range p.Origins {
		for _, destination := range p.Destinations {
			if !s.cat.IsLongHaul(origin, destination) {
				continue
			}
			for _, hub := range s.cat.Hubs() {
				if offer, ok := s.candidate(origin, destination, hub, p, rng, seen); ok {
					offers = append(offers, offer)
				}
			}
		}
	}

	return offers
}

func (s *Synthesizer) candidate(
	origin, destination string,
	hub catalog.Hub,
	p Params,
	rng *seedrand.Source,
	seen map[string]bool,
) (models.FlightOffer, bool) {
	if hub.Code == origin || hub.Code == destination {
		return models.FlightOffer{}, false
	}
	if !s.cat.HubAllowed(origin, destination, hub.Code) {
		return models.FlightOffer{}, false
	}

	layoverDays := rng.IntBetween(s.tuning.MinLayoverDays, s.tuning.MaxLayoverDays)

	signature := RouteSignature(origin, hub.Code, destination, layoverDays)
	if seen[signature] {
		return models.FlightOffer{}, false
	}
	seen[signature] = true

	directFare := s.cat.DirectPrice(origin, destination)
	legFare := s.cat.LegPrice(origin, hub.Code) + s.cat.LegPrice(hub.Code, destination)
	if layoverDays > s.tuning.LongStayThresholdDays {
		legFare *= 1 - s.tuning.LongStayDiscount
	}
	if legFare > s.tuning.AcceptanceRatio*directFare {
		return models.FlightOffer{}, false
	}

	savings := directFare - legFare
	savingsPercent := int(math.Round(savings / directFare * 100))
	estimatedTotal := legFare + float64(layoverDays)*hub.AvgDailyCost

	leg1Duration := s.cat.FlightDuration(origin, hub.Code)
	leg2Duration := s.cat.FlightDuration(hub.Code, destination)

	dep1 := p.Departure.Add(departureTimeOfDay)
	arr1 := dep1.Add(leg1Duration)
	dep2 := arr1.Add(time.Duration(layoverDays) * 24 * time.Hour)
	arr2 := dep2.Add(leg2Duration)

	carrier := seedrand.Pick(rng, hub.Carriers)
	itinerary := models.Itinerary{
		Duration: models.ISODuration(arr2.Sub(dep1)),
		Segments: []models.Segment{
			s.segment(origin, hub.Code, dep1, arr1, carrier, rng),
			s.segment(hub.Code, destination, dep2, arr2, carrier, rng),
		},
	}

	total := legFare * p.Travelers.FareWeight()
	offer := models.FlightOffer{
		ID:               uuid.NewString(),
		Source:           models.SourceMultiLeg,
		Price:            models.NewPrice(total, catalog.Currency),
		Itineraries:      []models.Itinerary{itinerary},
		TravelerPricings: models.BuildTravelerPricings(legFare, catalog.Currency, p.Travelers),
		MultiLeg:         true,
		MultiLegInfo: &models.MultiLegInfo{
			Hub: models.HubInfo{
				Code:        hub.Code,
				Name:        hub.Name,
				City:        hub.City,
				Country:     hub.Country,
				Attractions: hub.Attractions,
			},
			LayoverDays:        layoverDays,
			Savings:            currency.Amount(savings),
			SavingsPercent:     savingsPercent,
			DirectPrice:        currency.Amount(directFare),
			EstimatedTotalCost: currency.Format(estimatedTotal, catalog.Currency),
		},
	}
	if p.AffiliateProvider != "" {
		offer.AffiliateLink = models.AffiliateLink(p.AffiliateProvider, origin, destination, p.Departure)
	}

	return offer, true
}

func (s *Synthesizer) segment(from, to string, dep, arr time.Time, carrier string, rng *seedrand.Source) models.Segment {
	return models.Segment{
		Departure:   models.Endpoint{IATACode: from, At: dep.Format(time.RFC3339)},
		Arrival:     models.Endpoint{IATACode: to, At: arr.Format(time.RFC3339)},
		CarrierCode: carrier,
		Number:      fmt.Sprintf("%d", rng.IntBetween(100, 999)),
		Aircraft:    models.Aircraft{Code: seedrand.Pick(rng, s.cat.AircraftTypes())},
		Duration:    models.ISODuration(arr.Sub(dep)),
	}
}

// RouteSignature is the dedup key for a candidate: one itinerary per
// (origin, hub, destination, layover-length) tuple within a search.
func RouteSignature(origin, hub, destination string, layoverDays int) string {
	return fmt.Sprintf("%s-%s-%s-%d", origin, hub, destination, layoverDays)
}
