package costestimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/printcore/internal/catalog"
)

func testDefaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func TestNUpPicksBetterOrientation(t *testing.T) {
	// Parent 25x38in, trim 8.5x11in: straight = 2*3=6, rotated = 2*4=8.
	assert.Equal(t, 8, nUp(25, 38, 8.5, 11))
}

func TestNUpZeroOnDegenerateTrim(t *testing.T) {
	assert.Equal(t, 0, nUp(25, 38, 0, 11))
}

func TestPressSheetsForAppliesSpoilageAfterCeiling(t *testing.T) {
	// qty*leaves/nup = 500*1/8 = 62.5 -> ceil 63; *1.1 spoilage = 69.3 -> ceil 70.
	got := pressSheetsFor(500, 1, 8, 1.1)
	assert.Equal(t, 70, got)
}

func TestPressSheetsForZeroNUp(t *testing.T) {
	assert.Equal(t, 0, pressSheetsFor(500, 1, 0, 1.1))
}

func baseJobSpec() JobSpec {
	return JobSpec{
		Quantity:         100,
		FinishedWidthIn:  8.5,
		FinishedHeightIn: 11,
		BWPages:          96,
		BWPaperSku:       "OP-80-U-TXT",
		Binding:          BindingPerfect,
		LaborRatePerHour: 20,
		MarkupPercent:    30,
	}
}

func TestEstimateSaddleStitchGuardRejectsNonMultipleOfFour(t *testing.T) {
	cat := testDefaultCatalog(t)
	spec := baseJobSpec()
	spec.Binding = BindingSaddle
	spec.BWPages = 97

	b := Estimate(spec, cat)
	assert.Equal(t, "Saddle stitch requires the total interior page count to be a multiple of 4.", b.Error)
	assert.Zero(t, b.Total)
}

func TestEstimateRejectsNonPositiveQuantity(t *testing.T) {
	cat := testDefaultCatalog(t)
	spec := baseJobSpec()
	spec.Quantity = 0

	b := Estimate(spec, cat)
	assert.NotEmpty(t, b.Error)
}

func TestEstimateUnknownPaperSkuPopulatesError(t *testing.T) {
	cat := testDefaultCatalog(t)
	spec := baseJobSpec()
	spec.BWPaperSku = "NOT-A-SKU"

	b := Estimate(spec, cat)
	assert.NotEmpty(t, b.Error)
	assert.Zero(t, b.Total)
}

func TestEstimateProducesPositiveBreakdown(t *testing.T) {
	cat := testDefaultCatalog(t)
	b := Estimate(baseJobSpec(), cat)

	require.Empty(t, b.Error)
	assert.Equal(t, 8, b.BWNUp)
	assert.Greater(t, b.BWPressSheets, 0)
	assert.Greater(t, b.PaperCost, 0.0)
	assert.Greater(t, b.ClickCost, 0.0)
	assert.Greater(t, b.LaborCost, 0.0)
	assert.Greater(t, b.Total, b.Subtotal)
	assert.InDelta(t, b.Total/float64(baseJobSpec().Quantity), b.PricePerUnit, 1e-9)
}

func TestEstimateCoverSpreadMustFitCoverPaper(t *testing.T) {
	cat := testDefaultCatalog(t)
	spec := baseJobSpec()
	spec.HasCover = true
	spec.CoverPaperSku = "SILK-100-C-CVR"
	spec.FinishedWidthIn = 20  // interior still fits the 25x38 parent...
	spec.FinishedHeightIn = 26 // ...but the cover spread (2*w+spine, h) exceeds both orientations

	b := Estimate(spec, cat)
	assert.Contains(t, b.Error, "does not fit")
}

func TestEstimateCostMonotonicInQuantity(t *testing.T) {
	cat := testDefaultCatalog(t)

	small := baseJobSpec()
	small.Quantity = 100
	large := baseJobSpec()
	large.Quantity = 1000

	bSmall := Estimate(small, cat)
	bLarge := Estimate(large, cat)
	require.Empty(t, bSmall.Error)
	require.Empty(t, bLarge.Error)
	assert.Greater(t, bLarge.Total, bSmall.Total)
}

func TestEstimateIsIdempotent(t *testing.T) {
	cat := testDefaultCatalog(t)
	spec := baseJobSpec()

	first := Estimate(spec, cat)
	second := Estimate(spec, cat)
	assert.Equal(t, first, second)
}

func TestEstimateWithShippingPopulatesPlan(t *testing.T) {
	cat := testDefaultCatalog(t)
	spec := baseJobSpec()
	spec.CalculateShipping = true

	b := Estimate(spec, cat)
	require.Empty(t, b.Error)
	require.NotNil(t, b.Shipping)
	assert.Greater(t, b.ShippingCost, 0.0)
	assert.InDelta(t, b.ShippingCost, b.Total-b.Subtotal-b.Markup, 1e-9)
}

func TestComputeBookWeightLbIncludesCoverSpreadArea(t *testing.T) {
	cat := testDefaultCatalog(t)
	bwPaper, err := cat.Paper("OP-80-U-TXT")
	require.NoError(t, err)
	coverPaper, err := cat.Paper("SILK-100-C-CVR")
	require.NoError(t, err)

	spec := JobSpec{FinishedWidthIn: 6, FinishedHeightIn: 9, HasCover: true}
	withoutCover := ComputeBookWeightLb(JobSpec{FinishedWidthIn: 6, FinishedHeightIn: 9}, bwPaper, catalog.PaperStock{}, catalog.PaperStock{}, 48, 0, 0.259)
	withCover := ComputeBookWeightLb(spec, bwPaper, catalog.PaperStock{}, coverPaper, 48, 0, 0.259)
	assert.Greater(t, withCover, withoutCover)
}
