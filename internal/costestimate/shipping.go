package costestimate

import (
	"math"

	"github.com/piwi3910/printcore/internal/catalog"
)

// MaxBoxWeightLb caps how much a single carton may weigh, per spec.md
// §4.5.1.
const MaxBoxWeightLb = 40.0

// BookDimensions is the packed unit's three edge lengths: trim width, trim
// height, and spine thickness.
type BookDimensions struct {
	TrimWidthIn  float64
	TrimHeightIn float64
	SpineIn      float64
}

// ShippingPlan is the chosen box, quantity, and cost breakdown for one job.
type ShippingPlan struct {
	BoxName      string
	BooksPerBox  int
	Boxes        int
	HandlingCost float64
	CarrierCost  float64
	TotalCost    float64
	BookWeightLb float64
}

// booksPerAxis returns how many books fit in a box of size
// (boxW, boxL, boxH) when the book's three edges are assigned to those
// axes in the given permutation, per spec.md §4.5.1 ("per-axis floor
// products").
func booksPerAxis(boxW, boxL, boxH float64, iw, il, ih float64) int {
	return int(math.Floor(boxW/iw)) * int(math.Floor(boxL/il)) * int(math.Floor(boxH/ih))
}

// bestOrientationFit tries all six permutations of the book's three edges
// against the box's three axes and returns the maximum books-per-box.
func bestOrientationFit(box catalog.ShippingBox, book BookDimensions) int {
	dims := [3]float64{book.TrimWidthIn, book.TrimHeightIn, book.SpineIn}
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	best := 0
	for _, p := range perms {
		n := booksPerAxis(box.WidthIn, box.LengthIn, box.HeightIn, dims[p[0]], dims[p[1]], dims[p[2]])
		if n > best {
			best = n
		}
	}
	return best
}

// PackShipping chooses the minimum-total-cost box for quantity books of
// the given dimensions and weight, per spec.md §4.5.1. The second return
// is false when no admissible box fits even one book (spec.md: "shipping
// = 0 with breakdown = None").
func PackShipping(cat *catalog.Catalog, quantity int, book BookDimensions, bookWeightLb float64, overrideBoxName string) (ShippingPlan, bool) {
	if quantity <= 0 || bookWeightLb <= 0 {
		return ShippingPlan{}, false
	}

	var candidates []catalog.ShippingBox
	if overrideBoxName != "" {
		if b, ok := cat.ShippingBox(overrideBoxName); ok {
			candidates = []catalog.ShippingBox{b}
		}
	} else {
		candidates = cat.ShippingBoxes()
	}

	weightCap := int(math.Floor(MaxBoxWeightLb / bookWeightLb))

	var best *ShippingPlan
	for _, box := range candidates {
		orientationFit := bestOrientationFit(box, book)
		if orientationFit < 1 {
			continue
		}
		booksPerBox := orientationFit
		if weightCap < booksPerBox {
			booksPerBox = weightCap
		}
		if booksPerBox < 1 {
			continue
		}

		boxes := int(math.Ceil(float64(quantity) / float64(booksPerBox)))
		handling := float64(boxes) * box.CostEach
		carrier := cat.CarrierRate(float64(quantity) * bookWeightLb)
		total := handling + carrier

		if best == nil || total < best.TotalCost {
			best = &ShippingPlan{
				BoxName:      box.Name,
				BooksPerBox:  booksPerBox,
				Boxes:        boxes,
				HandlingCost: handling,
				CarrierCost:  carrier,
				TotalCost:    total,
				BookWeightLb: bookWeightLb,
			}
		}
	}

	if best == nil {
		return ShippingPlan{}, false
	}
	return *best, true
}
