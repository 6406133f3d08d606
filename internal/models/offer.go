package models

// Offer source tags.
const (
	SourceProvider  = "provider"
	SourceSynthetic = "synthetic"
	SourceMultiLeg  = "multi-leg"
)

type Fee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

// Price amounts are decimal strings ("845.50"), matching what the upstream
// provider returns. Parsing back to numbers happens only when ranking.
type Price struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
	Base     string `json:"base"`
	Fees     []Fee  `json:"fees,omitempty"`
}

type Endpoint struct {
	IATACode string `json:"iataCode"`
	At       string `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Aircraft    Aircraft `json:"aircraft"`
	Duration    string   `json:"duration"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type TravelerPricing struct {
	TravelerID   string `json:"travelerId"`
	TravelerType string `json:"travelerType"`
	FareOption   string `json:"fareOption"`
	Price        Price  `json:"price"`
}

type HubInfo struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Attractions []string `json:"attractions,omitempty"`
}

// MultiLegInfo describes a recommended stopover itinerary: where the layover
// happens, how long it lasts and how the combined price compares to flying
// the same pair direct.
type MultiLegInfo struct {
	Hub                HubInfo `json:"hub"`
	LayoverDays        int     `json:"layoverDays"`
	Savings            string  `json:"savings"`
	SavingsPercent     int     `json:"savingsPercent"`
	DirectPrice        string  `json:"directPrice"`
	EstimatedTotalCost string  `json:"estimatedTotalCost"`
}

type FlightOffer struct {
	ID               string            `json:"id"`
	Source           string            `json:"source"`
	Price            Price             `json:"price"`
	Itineraries      []Itinerary       `json:"itineraries"`
	TravelerPricings []TravelerPricing `json:"travelerPricings,omitempty"`
	MultiLeg         bool              `json:"multiLeg,omitempty"`
	MultiLegInfo     *MultiLegInfo     `json:"multiLegInfo,omitempty"`
	AffiliateLink    string            `json:"affiliateLink,omitempty"`
}
