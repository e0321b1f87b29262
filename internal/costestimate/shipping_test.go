package costestimate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/printcore/internal/catalog"
)

const shippingTestCatalogJSON = `{
  "press_sheets": [],
  "papers": [],
  "shipping_boxes": [
    { "name": "Test Small Box", "w_in": 8, "l_in": 6, "h_in": 5, "cost": 1.0 },
    { "name": "Test Large Box", "w_in": 20, "l_in": 20, "h_in": 20, "cost": 5.0 }
  ],
  "carrier_tiers": [
    { "max_weight_lb": 10, "cost_usd": 5.0 },
    { "max_weight_lb": 100, "cost_usd": 20.0 },
    { "max_weight_lb": 200, "cost_usd": 35.0 }
  ],
  "carrier_overflow_per_lb": 0.2,
  "interior_ppi": [],
  "cover_caliper": []
}`

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(strings.NewReader(shippingTestCatalogJSON))
	require.NoError(t, err)
	return cat
}

func TestBestOrientationFitSearchesAllSixPermutations(t *testing.T) {
	box := catalog.ShippingBox{Name: "box", WidthIn: 8, LengthIn: 6, HeightIn: 5}
	book := BookDimensions{TrimWidthIn: 4, TrimHeightIn: 6, SpineIn: 1}

	got := bestOrientationFit(box, book)
	assert.Equal(t, 10, got)
}

func TestPackShippingAppliesWeightCapBeforeCost(t *testing.T) {
	cat := testCatalog(t)
	book := BookDimensions{TrimWidthIn: 4, TrimHeightIn: 6, SpineIn: 1}

	plan, ok := PackShipping(cat, 95, book, 5.0, "Test Small Box")
	require.True(t, ok)
	// orientation fit is 10, but weight cap = floor(40/5) = 8, which binds.
	assert.Equal(t, 8, plan.BooksPerBox)
	assert.Equal(t, 12, plan.Boxes)
}

func TestPackShippingChoosesMinimumTotalCostBox(t *testing.T) {
	cat := testCatalog(t)
	book := BookDimensions{TrimWidthIn: 4, TrimHeightIn: 6, SpineIn: 1}

	plan, ok := PackShipping(cat, 95, book, 0.2, "")
	require.True(t, ok)
	assert.Equal(t, "Test Large Box", plan.BoxName)
}

func TestPackShippingReturnsFalseWhenNoBoxAdmitsOneBook(t *testing.T) {
	cat := testCatalog(t)
	book := BookDimensions{TrimWidthIn: 50, TrimHeightIn: 50, SpineIn: 50}

	_, ok := PackShipping(cat, 10, book, 1.0, "")
	assert.False(t, ok)
}

func TestPackShippingZeroQuantityOrWeightIsRejected(t *testing.T) {
	cat := testCatalog(t)
	book := BookDimensions{TrimWidthIn: 4, TrimHeightIn: 6, SpineIn: 1}

	_, ok := PackShipping(cat, 0, book, 1.0, "")
	assert.False(t, ok)

	_, ok = PackShipping(cat, 10, book, 0, "")
	assert.False(t, ok)
}

func TestPackShippingCostMath(t *testing.T) {
	cat := testCatalog(t)
	book := BookDimensions{TrimWidthIn: 4, TrimHeightIn: 6, SpineIn: 1}

	plan, ok := PackShipping(cat, 50, book, 2.0, "Test Small Box")
	require.True(t, ok)
	assert.Equal(t, 10, plan.BooksPerBox)
	assert.Equal(t, 5, plan.Boxes)
	assert.InDelta(t, 5.0, plan.HandlingCost, 1e-9)
	assert.InDelta(t, cat.CarrierRate(100), plan.CarrierCost, 1e-9)
	assert.InDelta(t, plan.HandlingCost+plan.CarrierCost, plan.TotalCost, 1e-9)
}
