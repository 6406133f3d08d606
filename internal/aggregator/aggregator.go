// Package aggregator merges the three offer streams into the final ranked
// result set.
package aggregator

import (
	"sort"

	"github.com/dharmasatrya/flightoffers/internal/models"
	"github.com/dharmasatrya/flightoffers/pkg/currency"
)

// DefaultPaddingFloor is the result count below which synthetic baseline
// offers are mixed in.
const DefaultPaddingFloor = 10

type Sources struct {
	Provider   []models.FlightOffer
	ProviderOK bool

	Synthetic []models.FlightOffer

	MultiLeg        []models.FlightOffer
	IncludeMultiLeg bool
}

// Merge concatenates the eligible sources, sorts ascending by parsed total
// price and truncates to maxResults. An unparsable total parses as 0 and
// therefore sorts first; that is deliberate so broken offers surface in
// review rather than vanish.
func Merge(src Sources, maxResults, paddingFloor int) []models.FlightOffer {
	merged := make([]models.FlightOffer, 0, len(src.Provider)+len(src.MultiLeg)+len(src.Synthetic))

	if src.ProviderOK {
		merged = append(merged, src.Provider...)
	}
	if src.IncludeMultiLeg {
		merged = append(merged, src.MultiLeg...)
	}
	if len(merged) < paddingFloor {
		merged = append(merged, src.Synthetic...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return currency.Parse(merged[i].Price.Total) < currency.Parse(merged[j].Price.Total)
	})

	if maxResults > 0 && len(merged) > maxResults {
		merged = merged[:maxResults]
	}
	return merged
}

// DataSource tags the response: "provider" as soon as any real offer made
// it into the merged list, "mock" otherwise.
func DataSource(offers []models.FlightOffer) string {
	for _, o := range offers {
		if o.Source == models.SourceProvider {
			return models.DataSourceProvider
		}
	}
	return models.DataSourceMock
}

// MergeDictionaries overlays the provider's display names on the built-in
// ones; the provider knows its own codes best.
func MergeDictionaries(base models.Dictionaries, provider *models.Dictionaries) models.Dictionaries {
	if provider == nil {
		return base
	}
	for code, name := range provider.Carriers {
		base.Carriers[code] = name
	}
	for code, name := range provider.Aircraft {
		base.Aircraft[code] = name
	}
	return base
}
