// Package catalog holds the static reference data the search pipeline runs
// on: region-to-airport mappings, the hub catalog, route duration and price
// tables, long-haul classification sets and display dictionaries. A Catalog
// is built once at startup and shared read-only between requests.
package catalog

import "time"

const (
	// DefaultAirport is returned when a region code is not in the table.
	DefaultAirport = "WAW"

	// Currency all synthesized prices are quoted in.
	Currency = "EUR"

	defaultDurationMin = 8 * 60
	defaultDirectPrice = 950.0
	defaultLegPrice    = 400.0
)

type Hub struct {
	Code           string
	Name           string
	City           string
	Country        string
	MinLayoverDays int
	MaxLayoverDays int
	Carriers       []string
	Attractions    []string
	AvgDailyCost   float64
}

// HubRule denies a set of hubs for traffic between two region sets. Rules
// are plain membership tests so eligibility stays auditable.
type HubRule struct {
	Origins      []string
	Destinations []string
	DeniedHubs   []string
}

type Catalog struct {
	regionAirports  map[string][]string
	neighborRegions map[string][]string
	airportRegion   map[string]string

	hubs     []Hub
	hubRules []HubRule

	durations    map[string]int
	directPrices map[string]float64
	legPrices    map[string]float64

	longHaulOrigins      map[string]bool
	longHaulDestinations map[string]bool

	carriers      map[string]string
	aircraftNames map[string]string
	aircraftTypes []string

	classMultipliers map[string]float64
}

func New() *Catalog {
	c := &Catalog{
		regionAirports:       regionAirports,
		neighborRegions:      neighborRegions,
		airportRegion:        make(map[string]string),
		hubs:                 hubs,
		hubRules:             hubRules,
		durations:            flightDurations,
		directPrices:         directPrices,
		legPrices:            legPrices,
		longHaulDestinations: make(map[string]bool),
		longHaulOrigins:      make(map[string]bool),
		carriers:             carrierNames,
		aircraftNames:        aircraftNames,
		aircraftTypes:        aircraftTypes,
		classMultipliers:     classMultipliers,
	}

	for region, airports := range regionAirports {
		for _, a := range airports {
			c.airportRegion[a] = region
		}
	}
	for _, region := range longHaulOriginRegions {
		for _, a := range regionAirports[region] {
			c.longHaulOrigins[a] = true
		}
	}
	for _, a := range longHaulDestinationAirports {
		c.longHaulDestinations[a] = true
	}

	return c
}

// RegionAirports returns the ordered airport list for a 2-letter region
// code. ok is false for unknown regions.
func (c *Catalog) RegionAirports(region string) ([]string, bool) {
	airports, ok := c.regionAirports[region]
	return airports, ok
}

func (c *Catalog) NeighborRegions(region string) []string {
	return c.neighborRegions[region]
}

func (c *Catalog) Region(airport string) string {
	return c.airportRegion[airport]
}

func (c *Catalog) Hubs() []Hub {
	return c.hubs
}

// FlightDuration looks up the scheduled block time for an airport pair,
// falling back to the reverse pair and then to a flat 8 hours.
func (c *Catalog) FlightDuration(from, to string) time.Duration {
	if m, ok := c.durations[from+"-"+to]; ok {
		return time.Duration(m) * time.Minute
	}
	if m, ok := c.durations[to+"-"+from]; ok {
		return time.Duration(m) * time.Minute
	}
	return defaultDurationMin * time.Minute
}

func (c *Catalog) DirectPrice(from, to string) float64 {
	if p, ok := c.directPrices[from+"-"+to]; ok {
		return p
	}
	if p, ok := c.directPrices[to+"-"+from]; ok {
		return p
	}
	return defaultDirectPrice
}

func (c *Catalog) LegPrice(from, to string) float64 {
	if p, ok := c.legPrices[from+"-"+to]; ok {
		return p
	}
	if p, ok := c.legPrices[to+"-"+from]; ok {
		return p
	}
	return defaultLegPrice
}

// IsLongHaul reports whether multi-leg routing is worth offering for the
// pair: the origin must sit in a short/medium-haul origin region and the
// destination in the long-haul destination set.
func (c *Catalog) IsLongHaul(origin, destination string) bool {
	return c.longHaulOrigins[origin] && c.longHaulDestinations[destination]
}

// HubAllowed applies the deny rules for a hub on a concrete pair.
func (c *Catalog) HubAllowed(origin, destination, hubCode string) bool {
	originRegion := c.airportRegion[origin]
	destRegion := c.airportRegion[destination]
	for _, rule := range c.hubRules {
		if contains(rule.Origins, originRegion) &&
			contains(rule.Destinations, destRegion) &&
			contains(rule.DeniedHubs, hubCode) {
			return false
		}
	}
	return true
}

func (c *Catalog) CarrierNames() map[string]string {
	return copyMap(c.carriers)
}

func (c *Catalog) AircraftNames() map[string]string {
	return copyMap(c.aircraftNames)
}

func (c *Catalog) AircraftTypes() []string {
	return c.aircraftTypes
}

func (c *Catalog) ClassMultiplier(travelClass string) float64 {
	if m, ok := c.classMultipliers[travelClass]; ok {
		return m
	}
	return 1.0
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func copyMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
