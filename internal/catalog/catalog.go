package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/piwi3910/printcore/internal/perrors"
)

// rawCatalog is the JSON-on-disk shape; Catalog builds its lookup indexes
// from it once at Load/Default time.
type rawCatalog struct {
	PressSheets   []PressSheetSize    `json:"press_sheets"`
	Papers        []PaperStock        `json:"papers"`
	ShippingBoxes []ShippingBoxRaw    `json:"shipping_boxes"`
	CarrierTiers  []CarrierTier       `json:"carrier_tiers"`
	CarrierOverflowPerLb float64      `json:"carrier_overflow_per_lb"`
	InteriorPPI   []interiorPPIEntry  `json:"interior_ppi"`
	CoverCaliper  []coverCaliperEntry `json:"cover_caliper"`
}

// Catalog is a read-only, process-wide set of lookup tables. It is safe for
// concurrent use by multiple imposition/cover/cost jobs because nothing on
// it is ever mutated after Load/Default returns.
type Catalog struct {
	pressSheets map[string]PressSheetSize
	papers      map[string]PaperStock
	boxes       []ShippingBox
	tiers       []CarrierTier
	overflowPerLb float64
	interiorPPI map[paperTypeWeightKey]float64
	coverCaliper map[paperTypeWeightKey]float64
}

// Load parses a catalog from r, in the JSON schema documented in
// spec.md §6 ("Catalogs format").
func Load(r io.Reader) (*Catalog, error) {
	var raw rawCatalog
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return build(raw)
}

// Default returns the catalog baked into the binary via go:embed.
func Default() (*Catalog, error) {
	var raw rawCatalog
	if err := json.Unmarshal(defaultCatalogJSON, &raw); err != nil {
		return nil, fmt.Errorf("decode embedded default catalog: %w", err)
	}
	return build(raw)
}

func build(raw rawCatalog) (*Catalog, error) {
	c := &Catalog{
		pressSheets:  make(map[string]PressSheetSize, len(raw.PressSheets)),
		papers:       make(map[string]PaperStock, len(raw.Papers)),
		interiorPPI:  make(map[paperTypeWeightKey]float64, len(raw.InteriorPPI)),
		coverCaliper: make(map[paperTypeWeightKey]float64, len(raw.CoverCaliper)),
		overflowPerLb: raw.CarrierOverflowPerLb,
	}
	for _, ps := range raw.PressSheets {
		c.pressSheets[ps.Name] = ps
	}
	for _, p := range raw.Papers {
		c.papers[p.Sku] = p
	}
	for _, e := range raw.InteriorPPI {
		c.interiorPPI[paperTypeWeightKey{e.Type, e.Weight}] = e.PPI
	}
	for _, e := range raw.CoverCaliper {
		c.coverCaliper[paperTypeWeightKey{e.Type, e.Weight}] = e.InchesPerSheet
	}
	for _, b := range raw.ShippingBoxes {
		c.boxes = append(c.boxes, flattenBox(b)...)
	}

	c.tiers = append([]CarrierTier(nil), raw.CarrierTiers...)
	sort.Slice(c.tiers, func(i, j int) bool { return c.tiers[i].MaxWeightLb < c.tiers[j].MaxWeightLb })
	for i := 1; i < len(c.tiers); i++ {
		if c.tiers[i].CostUSD < c.tiers[i-1].CostUSD {
			return nil, fmt.Errorf("carrier rate table is not monotonically non-decreasing at tier %d (%.2f lb)", i, c.tiers[i].MaxWeightLb)
		}
	}

	return c, nil
}

// flattenBox expands a multi-depth shipping box declaration into one
// ShippingBox per depth, each carrying its own name (spec.md §4.2).
func flattenBox(b ShippingBoxRaw) []ShippingBox {
	if len(b.HeightsIn) == 0 {
		return []ShippingBox{{
			Name: b.Name, WidthIn: b.WidthIn, LengthIn: b.LengthIn,
			HeightIn: b.HeightIn, CostEach: b.CostEach,
		}}
	}
	out := make([]ShippingBox, 0, len(b.HeightsIn))
	for _, h := range b.HeightsIn {
		out = append(out, ShippingBox{
			Name:     fmt.Sprintf("%s (%.2fin depth)", b.Name, h),
			WidthIn:  b.WidthIn,
			LengthIn: b.LengthIn,
			HeightIn: h,
			CostEach: b.CostEach,
		})
	}
	return out
}

// PressSheet looks up a named press-sheet size.
func (c *Catalog) PressSheet(name string) (PressSheetSize, error) {
	ps, ok := c.pressSheets[name]
	if !ok {
		return PressSheetSize{}, perrors.New(perrors.UnknownPaperSku, fmt.Sprintf("unknown press sheet size %q", name))
	}
	return ps, nil
}

// Paper looks up a paper stock by SKU. A miss is UnknownPaperSku, never a
// silent zero value.
func (c *Catalog) Paper(sku string) (PaperStock, error) {
	p, ok := c.papers[sku]
	if !ok {
		return PaperStock{}, perrors.New(perrors.UnknownPaperSku, fmt.Sprintf("unknown paper SKU %q", sku))
	}
	return p, nil
}

// ShippingBoxes returns all admissible shipping boxes (multi-depth entries
// already flattened to individual virtual boxes).
func (c *Catalog) ShippingBoxes() []ShippingBox {
	return append([]ShippingBox(nil), c.boxes...)
}

// ShippingBox looks up a single shipping box by its flattened name, used to
// resolve JobSpec.OverrideShippingBox.
func (c *Catalog) ShippingBox(name string) (ShippingBox, bool) {
	for _, b := range c.boxes {
		if b.Name == name {
			return b, true
		}
	}
	return ShippingBox{}, false
}

// CarrierRate evaluates the carrier's monotonically non-decreasing step
// function at the given weight, following the linear overflow slope beyond
// the last declared tier (spec.md §4.2).
func (c *Catalog) CarrierRate(weightLb float64) float64 {
	if weightLb <= 0 || len(c.tiers) == 0 {
		return 0
	}
	for _, t := range c.tiers {
		if weightLb <= t.MaxWeightLb {
			return t.CostUSD
		}
	}
	last := c.tiers[len(c.tiers)-1]
	over := weightLb - last.MaxWeightLb
	return last.CostUSD + over*c.overflowPerLb
}

// InteriorPPI looks up pages-per-inch for an interior stock keyed by
// (paperType, weight), used by the cover/template engine's spine-width
// computation (spec.md §4.4).
func (c *Catalog) InteriorPPI(paperType string, weight float64) (float64, error) {
	v, ok := c.interiorPPI[paperTypeWeightKey{paperType, weight}]
	if !ok {
		return 0, perrors.New(perrors.UnknownPaperSku, fmt.Sprintf("no interior PPI entry for type %q weight %.1f", paperType, weight))
	}
	return v, nil
}

// CoverCaliper looks up the caliper in inches for a cover stock keyed by
// (paperType, weight), used by the cover/template engine.
func (c *Catalog) CoverCaliper(paperType string, weight float64) (float64, error) {
	v, ok := c.coverCaliper[paperTypeWeightKey{paperType, weight}]
	if !ok {
		return 0, perrors.New(perrors.UnknownPaperSku, fmt.Sprintf("no cover caliper entry for type %q weight %.1f", paperType, weight))
	}
	return v, nil
}
