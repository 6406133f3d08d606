// Package synth produces baseline mock offers for the primary route: one
// direct flight and one single-stop connection. They pad out thin result
// sets when the upstream provider returns little or nothing.
package synth

import (
	"time"

	"github.com/google/uuid"

	"github.com/dharmasatrya/flightoffers/internal/catalog"
	"github.com/dharmasatrya/flightoffers/internal/models"
)

const (
	directDepartureTime  = 8*time.Hour + 45*time.Minute
	oneStopDepartureTime = 13*time.Hour + 20*time.Minute
	oneStopLayover       = 2*time.Hour + 30*time.Minute

	// The connection undercuts the direct fare, as it usually does.
	oneStopFareShare = 0.88

	directCarrier   = "LO"
	directAircraft  = "789"
	oneStopAircraft = "77W"
)

type Params struct {
	Origin            string
	Destination       string
	Departure         time.Time
	TravelClass       string
	Travelers         models.TravelerCounts
	AffiliateProvider string
}

type Generator struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Generator {
	return &Generator{cat: cat}
}

// Generate returns the two baseline offers, scaled to the requested travel
// class. Structure is fixed; only prices vary with class and party size.
func (g *Generator) Generate(p Params) []models.FlightOffer {
	multiplier := g.cat.ClassMultiplier(p.TravelClass)
	directFare := g.cat.DirectPrice(p.Origin, p.Destination) * multiplier

	offers := []models.FlightOffer{
		g.direct(p, directFare),
		g.oneStop(p, directFare*oneStopFareShare),
	}
	return offers
}

func (g *Generator) direct(p Params, fare float64) models.FlightOffer {
	dep := p.Departure.Add(directDepartureTime)
	arr := dep.Add(g.cat.FlightDuration(p.Origin, p.Destination))

	itinerary := models.Itinerary{
		Duration: models.ISODuration(arr.Sub(dep)),
		Segments: []models.Segment{
			segment(p.Origin, p.Destination, dep, arr, directCarrier, "331", directAircraft),
		},
	}
	return g.assemble(p, fare, itinerary)
}

func (g *Generator) oneStop(p Params, fare float64) models.FlightOffer {
	via := g.cat.Hubs()[0]
	carrier := via.Carriers[0]

	dep1 := p.Departure.Add(oneStopDepartureTime)
	arr1 := dep1.Add(g.cat.FlightDuration(p.Origin, via.Code))
	dep2 := arr1.Add(oneStopLayover)
	arr2 := dep2.Add(g.cat.FlightDuration(via.Code, p.Destination))

	itinerary := models.Itinerary{
		Duration: models.ISODuration(arr2.Sub(dep1)),
		Segments: []models.Segment{
			segment(p.Origin, via.Code, dep1, arr1, carrier, "412", oneStopAircraft),
			segment(via.Code, p.Destination, dep2, arr2, carrier, "506", oneStopAircraft),
		},
	}
	return g.assemble(p, fare, itinerary)
}

func (g *Generator) assemble(p Params, fare float64, itinerary models.Itinerary) models.FlightOffer {
	total := fare * p.Travelers.FareWeight()
	offer := models.FlightOffer{
		ID:               uuid.NewString(),
		Source:           models.SourceSynthetic,
		Price:            models.NewPrice(total, catalog.Currency),
		Itineraries:      []models.Itinerary{itinerary},
		TravelerPricings: models.BuildTravelerPricings(fare, catalog.Currency, p.Travelers),
	}
	if p.AffiliateProvider != "" {
		offer.AffiliateLink = models.AffiliateLink(p.AffiliateProvider, p.Origin, p.Destination, p.Departure)
	}
	return offer
}

func segment(from, to string, dep, arr time.Time, carrier, number, aircraft string) models.Segment {
	return models.Segment{
		Departure:   models.Endpoint{IATACode: from, At: dep.Format(time.RFC3339)},
		Arrival:     models.Endpoint{IATACode: to, At: arr.Format(time.RFC3339)},
		CarrierCode: carrier,
		Number:      number,
		Aircraft:    models.Aircraft{Code: aircraft},
		Duration:    models.ISODuration(arr.Sub(dep)),
	}
}
