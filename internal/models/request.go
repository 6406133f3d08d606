package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	ClassEconomy        = "ECONOMY"
	ClassPremiumEconomy = "PREMIUM_ECONOMY"
	ClassBusiness       = "BUSINESS"
	ClassFirst          = "FIRST"
)

const (
	MaxRouteCodes  = 5
	MaxFlexDays    = 30
	MaxResultLimit = 250
)

const dateLayout = "2006-01-02"

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to,omitempty"`
}

type SearchRequest struct {
	Origins                     []string  `json:"origins"`
	Destinations                []string  `json:"destinations"`
	DateRange                   DateRange `json:"dateRange"`
	DepartureFlex               int       `json:"departureFlex"`
	ReturnFlex                  int       `json:"returnFlex"`
	TravelClass                 string    `json:"travelClass"`
	Adults                      int       `json:"adults"`
	Children                    int       `json:"children"`
	Infants                     int       `json:"infants"`
	MaxResults                  int       `json:"maxResults"`
	NonStop                     bool      `json:"nonStop"`
	AutoRecommendStopovers      bool      `json:"autoRecommendStopovers"`
	IncludeNeighboringCountries bool      `json:"includeNeighboringCountries"`
	AffiliateProvider           string    `json:"affiliateProvider,omitempty"`
	SearchID                    string    `json:"searchId,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Normalize upper-cases and trims airport/region codes and fills defaults.
// Called before Validate so validation sees canonical input.
func (r *SearchRequest) Normalize() {
	r.Origins = normalizeCodes(r.Origins)
	r.Destinations = normalizeCodes(r.Destinations)
	r.TravelClass = strings.ToUpper(strings.TrimSpace(r.TravelClass))
	if r.TravelClass == "" {
		r.TravelClass = ClassEconomy
	}
	if r.Adults == 0 {
		r.Adults = 1
	}
	if r.MaxResults == 0 {
		r.MaxResults = 50
	}
}

func (r *SearchRequest) Validate() ValidationErrors {
	var errs ValidationErrors

	errs = validateCodes(errs, "origins", r.Origins)
	errs = validateCodes(errs, "destinations", r.Destinations)

	if r.DateRange.From == "" {
		errs = append(errs, FieldError{"dateRange.from", "departure date is required"})
	} else if _, err := time.Parse(dateLayout, r.DateRange.From); err != nil {
		errs = append(errs, FieldError{"dateRange.from", "must be a date in YYYY-MM-DD format"})
	}
	if r.DateRange.To != "" {
		to, err := time.Parse(dateLayout, r.DateRange.To)
		if err != nil {
			errs = append(errs, FieldError{"dateRange.to", "must be a date in YYYY-MM-DD format"})
		} else if from, ferr := time.Parse(dateLayout, r.DateRange.From); ferr == nil && to.Before(from) {
			errs = append(errs, FieldError{"dateRange.to", "must not be before dateRange.from"})
		}
	}

	if r.DepartureFlex < 0 || r.DepartureFlex > MaxFlexDays {
		errs = append(errs, FieldError{"departureFlex", fmt.Sprintf("must be between 0 and %d", MaxFlexDays)})
	}
	if r.ReturnFlex < 0 || r.ReturnFlex > MaxFlexDays {
		errs = append(errs, FieldError{"returnFlex", fmt.Sprintf("must be between 0 and %d", MaxFlexDays)})
	}

	switch r.TravelClass {
	case ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst:
	default:
		errs = append(errs, FieldError{"travelClass", "must be one of ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST"})
	}

	if r.Adults < 1 || r.Adults > 9 {
		errs = append(errs, FieldError{"adults", "must be between 1 and 9"})
	}
	if r.Children < 0 || r.Children > 9 {
		errs = append(errs, FieldError{"children", "must be between 0 and 9"})
	}
	if r.Infants < 0 || r.Infants > r.Adults {
		errs = append(errs, FieldError{"infants", "must be between 0 and the number of adults"})
	}

	if r.MaxResults < 1 || r.MaxResults > MaxResultLimit {
		errs = append(errs, FieldError{"maxResults", fmt.Sprintf("must be between 1 and %d", MaxResultLimit)})
	}

	return errs
}

// DepartureDate returns the parsed departure date. Only meaningful after
// Validate has passed.
func (r *SearchRequest) DepartureDate() time.Time {
	t, _ := time.Parse(dateLayout, r.DateRange.From)
	return t
}

func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func validateCodes(errs ValidationErrors, field string, codes []string) ValidationErrors {
	if len(codes) == 0 {
		return append(errs, FieldError{field, "at least one airport or region code is required"})
	}
	if len(codes) > MaxRouteCodes {
		return append(errs, FieldError{field, fmt.Sprintf("at most %d codes are allowed", MaxRouteCodes)})
	}
	for _, c := range codes {
		if len(c) != 2 && len(c) != 3 {
			errs = append(errs, FieldError{field, "codes must be 2-letter region or 3-letter IATA codes, got " + c})
			break
		}
	}
	return errs
}
