// Package catalog holds the read-only lookup tables shared by the
// imposition engine, the cover/template engine, and the cost estimator:
// press-sheet sizes, paper stocks, shipping boxes, carrier rate tiers, and
// the interior-PPI / cover-caliper tables used for spine geometry. Tables
// are total over their declared keys — a lookup miss is always a
// perrors.UnknownPaperSku-shaped error, never a silent zero, per the data
// model invariants.
package catalog

// Coating is the paper surface treatment, used both as a PaperStock field
// and as a key component of the interior-PPI / cover-caliper tables.
type Coating string

const (
	Coated   Coating = "coated"
	Uncoated Coating = "uncoated"
)

// CaliperFactor returns the thickness-per-gsm factor the cost estimator
// uses to derive an approximate caliper directly from grammage, per
// spec.md §4.5 point 4 (0.9 for coated stock, 1.3 for uncoated).
func (c Coating) CaliperFactor() float64 {
	if c == Coated {
		return 0.9
	}
	return 1.3
}

// PressSheetSize is a named parent sheet size in inches.
type PressSheetSize struct {
	Name      string  `json:"name"`
	LongSide  float64 `json:"long_side_in"`
	ShortSide float64 `json:"short_side_in"`
}

// PaperStock is a purchasable paper SKU, unique by Sku.
type PaperStock struct {
	Sku            string  `json:"sku"`
	Name           string  `json:"name"`
	GSM            float64 `json:"gsm"`
	Coating        Coating `json:"coating"`
	Finish         string  `json:"finish"`
	ParentWidthIn  float64 `json:"parent_width_in"`
	ParentHeightIn float64 `json:"parent_height_in"`
	CostPerSheet   float64 `json:"cost_per_sheet"`
	UsageTag       string  `json:"usage_tag"`
}

// CaliperIn returns the cost estimator's grammage-derived caliper
// approximation for this stock, per spec.md §4.5 point 4:
// caliper = gsm * factor / 25400 inches.
func (p PaperStock) CaliperIn() float64 {
	return p.GSM * p.Coating.CaliperFactor() / 25400.0
}

// ShippingBoxRaw is the on-disk shape of a shipping box entry: HeightIn is
// used when the box has one depth; HeightsIn is used when the box declares
// multiple depths (each flattened into its own virtual box at load time).
type ShippingBoxRaw struct {
	Name      string    `json:"name"`
	WidthIn   float64   `json:"w_in"`
	LengthIn  float64   `json:"l_in"`
	HeightIn  float64   `json:"h_in,omitempty"`
	HeightsIn []float64 `json:"h_in_list,omitempty"`
	CostEach  float64   `json:"cost"`
}

// ShippingBox is a single admissible box after multi-depth flattening: one
// box per declared depth, each with its own synthesized Name.
type ShippingBox struct {
	Name     string
	WidthIn  float64
	LengthIn float64
	HeightIn float64
	CostEach float64
}

// CarrierTier is one step of the carrier's rising rate table:
// shipments up to MaxWeightLb cost CostUSD.
type CarrierTier struct {
	MaxWeightLb float64 `json:"max_weight_lb"`
	CostUSD     float64 `json:"cost_usd"`
}

// paperTypeWeightKey identifies a row of either of the two weight-keyed
// spine-geometry tables (interior PPI, cover caliper) used by the
// cover/template engine.
type paperTypeWeightKey struct {
	Type   string
	Weight float64
}

type interiorPPIEntry struct {
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
	PPI    float64 `json:"ppi"`
}

type coverCaliperEntry struct {
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
	InchesPerSheet float64 `json:"inches_per_sheet"`
}
