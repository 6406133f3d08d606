package aggregator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flightoffers/internal/models"
	"github.com/dharmasatrya/flightoffers/pkg/currency"
)

func offer(source, total string) models.FlightOffer {
	return models.FlightOffer{
		ID:     source + "-" + total,
		Source: source,
		Price:  models.Price{Currency: "EUR", Total: total},
	}
}

func TestMergeSortsAscendingByPrice(t *testing.T) {
	src := Sources{
		Provider:        []models.FlightOffer{offer(models.SourceProvider, "900.00"), offer(models.SourceProvider, "450.00")},
		ProviderOK:      true,
		MultiLeg:        []models.FlightOffer{offer(models.SourceMultiLeg, "620.00")},
		IncludeMultiLeg: true,
		Synthetic:       []models.FlightOffer{offer(models.SourceSynthetic, "850.00")},
	}

	merged := Merge(src, 50, DefaultPaddingFloor)
	require.Len(t, merged, 4)
	for i := 1; i < len(merged); i++ {
		assert.LessOrEqual(t,
			currency.Parse(merged[i-1].Price.Total),
			currency.Parse(merged[i].Price.Total))
	}
}

func TestTruncateToMaxResultsKeepsCheapest(t *testing.T) {
	var multiLeg []models.FlightOffer
	for i := 0; i < 20; i++ {
		multiLeg = append(multiLeg, offer(models.SourceMultiLeg, fmt.Sprintf("%d.00", 1000-i*10)))
	}

	merged := Merge(Sources{MultiLeg: multiLeg, IncludeMultiLeg: true}, 1, DefaultPaddingFloor)
	require.Len(t, merged, 1)
	assert.Equal(t, "810.00", merged[0].Price.Total)
}

func TestProviderOffersDroppedOnFailure(t *testing.T) {
	src := Sources{
		Provider:   []models.FlightOffer{offer(models.SourceProvider, "500.00")},
		ProviderOK: false,
		Synthetic:  []models.FlightOffer{offer(models.SourceSynthetic, "850.00")},
	}

	merged := Merge(src, 50, DefaultPaddingFloor)
	require.Len(t, merged, 1)
	assert.Equal(t, models.SourceSynthetic, merged[0].Source)
}

func TestMultiLegExcludedUnlessRequested(t *testing.T) {
	src := Sources{
		Provider:        []models.FlightOffer{offer(models.SourceProvider, "500.00")},
		ProviderOK:      true,
		MultiLeg:        []models.FlightOffer{offer(models.SourceMultiLeg, "400.00")},
		IncludeMultiLeg: false,
	}

	merged := Merge(src, 50, 0)
	require.Len(t, merged, 1)
	assert.Equal(t, models.SourceProvider, merged[0].Source)
}

func TestSyntheticPadsOnlyThinResults(t *testing.T) {
	var provider []models.FlightOffer
	for i := 0; i < DefaultPaddingFloor; i++ {
		provider = append(provider, offer(models.SourceProvider, fmt.Sprintf("%d.00", 500+i)))
	}
	src := Sources{
		Provider:   provider,
		ProviderOK: true,
		Synthetic:  []models.FlightOffer{offer(models.SourceSynthetic, "850.00")},
	}

	merged := Merge(src, 50, DefaultPaddingFloor)
	assert.Len(t, merged, DefaultPaddingFloor)
	for _, o := range merged {
		assert.Equal(t, models.SourceProvider, o.Source)
	}

	src.Provider = provider[:3]
	merged = Merge(src, 50, DefaultPaddingFloor)
	assert.Len(t, merged, 4)
}

func TestUnparsablePriceSortsFirst(t *testing.T) {
	src := Sources{
		Provider:   []models.FlightOffer{offer(models.SourceProvider, "garbled"), offer(models.SourceProvider, "100.00")},
		ProviderOK: true,
	}

	merged := Merge(src, 50, 0)
	require.Len(t, merged, 2)
	assert.Equal(t, "garbled", merged[0].Price.Total)
}

func TestDataSourceTag(t *testing.T) {
	assert.Equal(t, models.DataSourceMock, DataSource(nil))
	assert.Equal(t, models.DataSourceMock, DataSource([]models.FlightOffer{offer(models.SourceSynthetic, "1.00")}))
	assert.Equal(t, models.DataSourceProvider, DataSource([]models.FlightOffer{
		offer(models.SourceSynthetic, "1.00"),
		offer(models.SourceProvider, "2.00"),
	}))
}

func TestMergeDictionariesProviderWins(t *testing.T) {
	base := models.Dictionaries{
		Carriers: map[string]string{"EK": "Emirates", "QR": "Qatar Airways"},
		Aircraft: map[string]string{"77W": "BOEING 777-300ER"},
	}
	provider := &models.Dictionaries{
		Carriers: map[string]string{"QR": "QATAR AIRWAYS", "XY": "flynas"},
		Aircraft: map[string]string{"359": "AIRBUS A350-900"},
	}

	merged := MergeDictionaries(base, provider)
	assert.Equal(t, "QATAR AIRWAYS", merged.Carriers["QR"])
	assert.Equal(t, "Emirates", merged.Carriers["EK"])
	assert.Equal(t, "flynas", merged.Carriers["XY"])
	assert.Equal(t, "AIRBUS A350-900", merged.Aircraft["359"])
}
