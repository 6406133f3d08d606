package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dharmasatrya/flightoffers/pkg/currency"
)

const (
	TravelerAdult  = "ADULT"
	TravelerChild  = "CHILD"
	TravelerInfant = "HELD_INFANT"
)

// Fare shares relative to the adult fare.
const (
	childFareShare  = 0.75
	infantFareShare = 0.10
	baseFareShare   = 0.78
)

type TravelerCounts struct {
	Adults   int
	Children int
	Infants  int
}

// FareWeight is the party's total fare expressed in adult-fare units.
func (t TravelerCounts) FareWeight() float64 {
	return float64(t.Adults) + childFareShare*float64(t.Children) + infantFareShare*float64(t.Infants)
}

// NewPrice splits a total into base fare and a supplier fee.
func NewPrice(total float64, currencyCode string) Price {
	base := total * baseFareShare
	return Price{
		Currency: currencyCode,
		Total:    currency.Amount(total),
		Base:     currency.Amount(base),
		Fees: []Fee{
			{Amount: currency.Amount(total - base), Type: "SUPPLIER"},
		},
	}
}

// BuildTravelerPricings expands an adult fare into one pricing row per
// traveler in the party.
func BuildTravelerPricings(adultFare float64, currencyCode string, travelers TravelerCounts) []TravelerPricing {
	pricings := make([]TravelerPricing, 0, travelers.Adults+travelers.Children+travelers.Infants)
	id := 1

	add := func(count int, travelerType string, fare float64) {
		for i := 0; i < count; i++ {
			pricings = append(pricings, TravelerPricing{
				TravelerID:   fmt.Sprintf("%d", id),
				TravelerType: travelerType,
				FareOption:   "STANDARD",
				Price:        NewPrice(fare, currencyCode),
			})
			id++
		}
	}

	add(travelers.Adults, TravelerAdult, adultFare)
	add(travelers.Children, TravelerChild, adultFare*childFareShare)
	add(travelers.Infants, TravelerInfant, adultFare*infantFareShare)

	return pricings
}

// ISODuration renders a duration in the ISO-8601 form offers carry, e.g.
// "PT11H30M".
func ISODuration(d time.Duration) string {
	total := int(d.Minutes())
	hours := total / 60
	mins := total % 60
	if mins == 0 {
		return fmt.Sprintf("PT%dH", hours)
	}
	return fmt.Sprintf("PT%dH%dM", hours, mins)
}

// AffiliateLink builds the booking deep link for an affiliate provider.
func AffiliateLink(provider, origin, destination string, departure time.Time) string {
	return fmt.Sprintf(
		"https://partners.%s.com/flights?origin=%s&destination=%s&date=%s",
		strings.ToLower(provider), origin, destination, departure.Format("2006-01-02"),
	)
}
