package multileg

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightoffers/internal/catalog"
	"github.com/dharmasatrya/flightoffers/internal/models"
	"github.com/dharmasatrya/flightoffers/internal/seedrand"
	"github.com/dharmasatrya/flightoffers/pkg/currency"
)

func testParams(origins, destinations []string) Params {
	return Params{
		Origins:      origins,
		Destinations: destinations,
		Departure:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Travelers:    models.TravelerCounts{Adults: 1},
	}
}

func generate(t *testing.T, p Params, searchID string) []models.FlightOffer {
	t.Helper()
	s := New(catalog.New(), DefaultTuning())
	return s.Generate(p, seedrand.New(searchID))
}

func signatures(offers []models.FlightOffer) []string {
	sigs := make([]string, 0, len(offers))
	for _, o := range offers {
		sigs = append(sigs, RouteSignature(
			o.Itineraries[0].Segments[0].Departure.IATACode,
			o.MultiLegInfo.Hub.Code,
			o.Itineraries[0].Segments[1].Arrival.IATACode,
			o.MultiLegInfo.LayoverDays,
		))
	}
	sort.Strings(sigs)
	return sigs
}

func TestSameSearchIDProducesSameSignatures(t *testing.T) {
	p := testParams([]string{"WAW", "KRK"}, []string{"BKK", "HKT"})

	first := generate(t, p, "abc123")
	second := generate(t, p, "abc123")

	require.NotEmpty(t, first)
	assert.Equal(t, signatures(first), signatures(second))
}

func TestNoDuplicateSignaturesWithinSearch(t *testing.T) {
	p := testParams([]string{"WAW", "KRK", "GDN"}, []string{"BKK", "HKT", "SIN"})
	offers := generate(t, p, "dedup-check")

	seen := make(map[string]bool)
	for _, sig := range signatures(offers) {
		assert.False(t, seen[sig], "duplicate signature %s", sig)
		seen[sig] = true
	}
}

func TestAcceptancePolicyBoundsPrice(t *testing.T) {
	p := testParams([]string{"WAW"}, []string{"BKK"})
	offers := generate(t, p, "abc123")
	require.NotEmpty(t, offers)

	tuning := DefaultTuning()
	for _, o := range offers {
		direct := currency.Parse(o.MultiLegInfo.DirectPrice)
		total := currency.Parse(o.Price.Total)
		assert.LessOrEqual(t, total, tuning.AcceptanceRatio*direct+0.01,
			"offer via %s breaks the acceptance cap", o.MultiLegInfo.Hub.Code)
	}
}

func TestLayoverDaysWithinSampledRange(t *testing.T) {
	p := testParams([]string{"WAW"}, []string{"BKK", "HKT"})
	offers := generate(t, p, "layovers")
	require.NotEmpty(t, offers)

	for _, o := range offers {
		assert.Contains(t, []int{2, 3}, o.MultiLegInfo.LayoverDays)
	}
}

func TestSegmentTimesAreMonotonic(t *testing.T) {
	p := testParams([]string{"WAW"}, []string{"BKK"})
	offers := generate(t, p, "timing")
	require.NotEmpty(t, offers)

	for _, o := range offers {
		require.Len(t, o.Itineraries, 1)
		segs := o.Itineraries[0].Segments
		require.Len(t, segs, 2)

		var stamps []time.Time
		for _, s := range segs {
			dep, err := time.Parse(time.RFC3339, s.Departure.At)
			require.NoError(t, err)
			arr, err := time.Parse(time.RFC3339, s.Arrival.At)
			require.NoError(t, err)
			stamps = append(stamps, dep, arr)
		}
		for i := 1; i < len(stamps); i++ {
			assert.True(t, stamps[i].After(stamps[i-1]), "timestamps must increase")
		}

		// Layover ground time separates arrival at the hub from the
		// onward departure.
		groundDays := int(stamps[2].Sub(stamps[1]).Hours() / 24)
		assert.Equal(t, o.MultiLegInfo.LayoverDays, groundDays)
	}
}

func TestLongStayDiscountApplied(t *testing.T) {
	cat := catalog.New()
	s := New(cat, DefaultTuning())

	p := testParams([]string{"WAW"}, []string{"BKK"})
	offers := s.Generate(p, seedrand.New("discount"))
	require.NotEmpty(t, offers)

	for _, o := range offers {
		hub := o.MultiLegInfo.Hub.Code
		legSum := cat.LegPrice("WAW", hub) + cat.LegPrice(hub, "BKK")
		want := legSum
		if o.MultiLegInfo.LayoverDays > 2 {
			want = legSum * 0.95
		}
		assert.InDelta(t, want, currency.Parse(o.Price.Total), 0.01)
	}
}

func TestNonLongHaulPairsSkipped(t *testing.T) {
	p := testParams([]string{"WAW"}, []string{"PRG"})
	assert.Empty(t, generate(t, p, "shorthaul"))
}

func TestHubRulesExcludeHubs(t *testing.T) {
	p := testParams([]string{"WAW"}, []string{"SYD"})
	offers := generate(t, p, "oceania")
	require.NotEmpty(t, offers)

	for _, o := range offers {
		assert.NotEqual(t, "IST", o.MultiLegInfo.Hub.Code,
			"Istanbul is denied for Australia-bound traffic")
	}
}

func TestCarrierComesFromHubCatalog(t *testing.T) {
	p := testParams([]string{"WAW"}, []string{"BKK"})
	offers := generate(t, p, "carriers")
	require.NotEmpty(t, offers)

	carriersByHub := make(map[string][]string)
	for _, hub := range catalog.New().Hubs() {
		carriersByHub[hub.Code] = hub.Carriers
	}
	for _, o := range offers {
		for _, seg := range o.Itineraries[0].Segments {
			assert.Contains(t, carriersByHub[o.MultiLegInfo.Hub.Code], seg.CarrierCode)
		}
	}
}

func TestAffiliateLinkOnlyWhenProviderSupplied(t *testing.T) {
	p := testParams([]string{"WAW"}, []string{"BKK"})

	for _, o := range generate(t, p, "nolink") {
		assert.Empty(t, o.AffiliateLink)
	}

	p.AffiliateProvider = "travelpartner"
	for _, o := range generate(t, p, "withlink") {
		assert.Contains(t, o.AffiliateLink, "travelpartner")
	}
}

func TestOffersTaggedMultiLeg(t *testing.T) {
	p := testParams([]string{"WAW"}, []string{"BKK"})
	offers := generate(t, p, "tags")
	require.NotEmpty(t, offers)

	for _, o := range offers {
		assert.True(t, o.MultiLeg)
		assert.Equal(t, models.SourceMultiLeg, o.Source)
		assert.NotEmpty(t, o.ID)
		require.NotNil(t, o.MultiLegInfo)
		assert.NotEmpty(t, o.MultiLegInfo.EstimatedTotalCost)
	}
}
