// Package expand turns user-supplied origin/destination codes into concrete
// airport lists. A 3-letter IATA code passes through untouched; a 2-letter
// region code expands against the catalog, optionally widened with airports
// from neighboring regions.
package expand

import "github.com/dharmasatrya/flightoffers/internal/catalog"

const (
	maxPerSide           = 10
	maxNeighborRegions   = 5
	maxPerNeighborRegion = 3
	maxNeighborAirports  = 15
)

type Expander struct {
	cat *catalog.Catalog
}

func New(cat *catalog.Catalog) *Expander {
	return &Expander{cat: cat}
}

// Expand resolves one request code into at most 10 airports. Unknown region
// codes fall back to the default airport rather than failing the search.
func (e *Expander) Expand(code string, includeNeighbors bool) []string {
	if len(code) == 3 {
		return []string{code}
	}

	airports, ok := e.cat.RegionAirports(code)
	if !ok {
		return []string{catalog.DefaultAirport}
	}

	result := make([]string, 0, maxPerSide)
	result = append(result, airports...)

	if includeNeighbors {
		result = append(result, e.neighborAirports(code, result)...)
	}

	if len(result) > maxPerSide {
		result = result[:maxPerSide]
	}
	return result
}

// ExpandAll expands every code in a request field, deduplicating across
// codes while keeping first-seen order. The per-side cap applies to the
// combined list.
func (e *Expander) ExpandAll(codes []string, includeNeighbors bool) []string {
	seen := make(map[string]bool)
	var result []string
	for _, code := range codes {
		for _, a := range e.Expand(code, includeNeighbors) {
			if seen[a] {
				continue
			}
			seen[a] = true
			result = append(result, a)
		}
	}
	if len(result) > maxPerSide {
		result = result[:maxPerSide]
	}
	return result
}

func (e *Expander) neighborAirports(region string, existing []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a] = true
	}

	neighbors := e.cat.NeighborRegions(region)
	if len(neighbors) > maxNeighborRegions {
		neighbors = neighbors[:maxNeighborRegions]
	}

	var extras []string
	for _, n := range neighbors {
		airports, ok := e.cat.RegionAirports(n)
		if !ok {
			continue
		}
		count := 0
		for _, a := range airports {
			if count == maxPerNeighborRegion || len(extras) == maxNeighborAirports {
				break
			}
			if seen[a] {
				continue
			}
			seen[a] = true
			extras = append(extras, a)
			count++
		}
		if len(extras) == maxNeighborAirports {
			break
		}
	}
	return extras
}
