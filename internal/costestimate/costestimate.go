package costestimate

import (
	"fmt"
	"math"

	"github.com/piwi3910/printcore/internal/catalog"
)

const (
	clickCostColor = 0.039
	clickCostBW    = 0.009

	laminationRateGloss = 0.30
	laminationRateMatte = 0.60

	sheetsPerMinutePrinting = 15.0
	laminatingMetersPerMin  = 5.0
	bindingInefficiency     = 1.20
	booksPerHourPerfect     = 300.0
	booksPerHourSaddle      = 400.0
	wastageFraction         = 0.15
	trimmingBaseMinutes     = 10.0
	trimmingBatchMinutes    = 5.0
	trimmingBatchSize       = 250.0

	metersPerInch = 0.0254
)

// nUp returns the number of finished trim rectangles that fit on a parent
// sheet, taking the better of the two orthogonal orientations, per
// spec.md §4.5 point 3.
func nUp(parentW, parentH, trimW, trimH float64) int {
	if trimW <= 0 || trimH <= 0 {
		return 0
	}
	straight := int(math.Floor(parentW/trimW)) * int(math.Floor(parentH/trimH))
	rotated := int(math.Floor(parentW/trimH)) * int(math.Floor(parentH/trimW))
	if rotated > straight {
		return rotated
	}
	return straight
}

// pressSheetsFor implements the "ceil(quantity·leaves/n_up)·spoilage,
// rounded up" formula shared by interior and cover sheet counting
// (spec.md §4.5 points 5).
func pressSheetsFor(quantity, leaves, nup int, spoilageMultiplier float64) int {
	if nup <= 0 {
		return 0
	}
	raw := float64(quantity*leaves) / float64(nup)
	step1 := math.Ceil(raw)
	return int(math.Ceil(step1 * spoilageMultiplier))
}

// Estimate computes the full cost breakdown for spec against cat. It never
// returns a Go error; domain failures populate Breakdown.Error, per
// spec.md §7.
func Estimate(spec JobSpec, cat *catalog.Catalog) Breakdown {
	totalInteriorPages := spec.BWPages + spec.ColorPages
	if spec.Binding == BindingSaddle && totalInteriorPages%4 != 0 {
		return errorBreakdown("Saddle stitch requires the total interior page count to be a multiple of 4.")
	}
	if spec.Quantity <= 0 {
		return errorBreakdown("quantity must be positive")
	}

	spoilageMultiplier := 1 + spec.SpoilagePercent/100

	var bwPaper, colorPaper, coverPaper catalog.PaperStock
	var err error
	if spec.BWPages > 0 {
		bwPaper, err = cat.Paper(spec.BWPaperSku)
		if err != nil {
			return errorBreakdown(err.Error())
		}
	}
	if spec.ColorPages > 0 {
		colorPaper, err = cat.Paper(spec.ColorPaperSku)
		if err != nil {
			return errorBreakdown(err.Error())
		}
	}
	if spec.HasCover {
		coverPaper, err = cat.Paper(spec.CoverPaperSku)
		if err != nil {
			return errorBreakdown(err.Error())
		}
	}

	bwNUp, colorNUp := 0, 0
	if spec.BWPages > 0 {
		bwNUp = nUp(bwPaper.ParentWidthIn, bwPaper.ParentHeightIn, spec.FinishedWidthIn, spec.FinishedHeightIn)
		if bwNUp == 0 {
			return errorBreakdown(fmt.Sprintf("black-and-white paper %q does not fit the finished trim size", bwPaper.Name))
		}
	}
	if spec.ColorPages > 0 {
		colorNUp = nUp(colorPaper.ParentWidthIn, colorPaper.ParentHeightIn, spec.FinishedWidthIn, spec.FinishedHeightIn)
		if colorNUp == 0 {
			return errorBreakdown(fmt.Sprintf("color paper %q does not fit the finished trim size", colorPaper.Name))
		}
	}

	spineWidthIn := 0.0
	if spec.Binding == BindingPerfect {
		leavesBW := float64(spec.BWPages) / 2
		leavesColor := float64(spec.ColorPages) / 2
		spineWidthIn = leavesBW*bwPaper.CaliperIn() + leavesColor*colorPaper.CaliperIn()
	}

	coverNUp := 0
	if spec.HasCover {
		spreadW := 2*spec.FinishedWidthIn + spineWidthIn
		if fits(coverPaper.ParentWidthIn, coverPaper.ParentHeightIn, spreadW, spec.FinishedHeightIn) {
			coverNUp = 1
		} else {
			return errorBreakdown(fmt.Sprintf("cover spread does not fit on paper %q", coverPaper.Name))
		}
	}

	bwLeaves := int(math.Ceil(float64(spec.BWPages) / 2))
	colorLeaves := int(math.Ceil(float64(spec.ColorPages) / 2))

	bwSheets := pressSheetsFor(spec.Quantity, bwLeaves, bwNUp, spoilageMultiplier)
	colorSheets := pressSheetsFor(spec.Quantity, colorLeaves, colorNUp, spoilageMultiplier)
	coverSheets := 0
	if spec.HasCover {
		coverSheets = pressSheetsFor(spec.Quantity, 1, coverNUp, spoilageMultiplier)
	}

	coverSidesPerSheet := 1
	if spec.CoverPrintsBothSides {
		coverSidesPerSheet = 2
	}
	coverClicks := coverSheets * coverSidesPerSheet
	bwClicks := bwSheets * 2
	colorClicks := colorSheets * 2
	totalClicks := bwClicks + colorClicks + coverClicks

	coverClickRate := clickCostBW
	if spec.CoverPrintColor == ColorColor {
		coverClickRate = clickCostColor
	}
	clickCost := float64(bwClicks)*clickCostBW + float64(colorClicks)*clickCostColor + float64(coverClicks)*coverClickRate

	paperCost := float64(bwSheets)*bwPaper.CostPerSheet + float64(colorSheets)*colorPaper.CostPerSheet
	if spec.HasCover {
		paperCost += float64(coverSheets) * coverPaper.CostPerSheet
	}

	laminationCost := 0.0
	if spec.HasCover {
		switch spec.Lamination {
		case LaminationGloss:
			laminationCost = float64(spec.Quantity) * laminationRateGloss
		case LaminationMatte:
			laminationCost = float64(spec.Quantity) * laminationRateMatte
		}
	}

	totalPressSheets := bwSheets + colorSheets + coverSheets

	labor := LaborMinutes{}
	prep := 20.0
	bindingSetup := 0.0
	switch spec.Binding {
	case BindingPerfect:
		bindingSetup = 15
	case BindingSaddle:
		bindingSetup = 10
	}
	labor.Setup = prep + bindingSetup
	labor.Printing = float64(totalPressSheets) / sheetsPerMinutePrinting
	if spec.HasCover && spec.Lamination != LaminationNone {
		labor.Laminating = float64(coverSheets) * coverPaper.ParentHeightIn * metersPerInch / laminatingMetersPerMin
	}
	booksPerHour := 0.0
	switch spec.Binding {
	case BindingPerfect:
		booksPerHour = booksPerHourPerfect
	case BindingSaddle:
		booksPerHour = booksPerHourSaddle
	}
	if booksPerHour > 0 {
		labor.Binding = (float64(spec.Quantity) / booksPerHour) * 60 * bindingInefficiency
	}
	labor.Trimming = trimmingBaseMinutes + math.Ceil(float64(spec.Quantity)/trimmingBatchSize)*trimmingBatchMinutes
	preWastage := labor.Setup + labor.Printing + labor.Laminating + labor.Binding + labor.Trimming
	labor.Wastage = wastageFraction * preWastage

	totalMinutes := labor.Total()
	laborCost := totalMinutes / 60 * spec.LaborRatePerHour

	subtotal := paperCost + clickCost + laminationCost + laborCost
	markup := subtotal * spec.MarkupPercent / 100

	var shippingCost float64
	var plan *ShippingPlan
	if spec.CalculateShipping {
		bookWeightLb := ComputeBookWeightLb(spec, bwPaper, colorPaper, coverPaper, bwLeaves, colorLeaves, spineWidthIn)
		p, ok := PackShipping(cat, spec.Quantity, BookDimensions{
			TrimWidthIn:  spec.FinishedWidthIn,
			TrimHeightIn: spec.FinishedHeightIn,
			SpineIn:      spineWidthIn,
		}, bookWeightLb, spec.OverrideShippingBox)
		if ok {
			plan = &p
			shippingCost = p.TotalCost
		}
	}

	total := subtotal + markup + shippingCost

	return Breakdown{
		BWNUp: bwNUp, ColorNUp: colorNUp, CoverNUp: coverNUp,
		BWPressSheets: bwSheets, ColorPressSheets: colorSheets, CoverPressSheets: coverSheets,
		TotalClicks:    totalClicks,
		PaperCost:      paperCost,
		ClickCost:      clickCost,
		LaminationCost: laminationCost,
		LaborCost:      laborCost,
		ShippingCost:   shippingCost,
		Subtotal:       subtotal,
		Markup:         markup,
		Total:          total,
		PricePerUnit:   total / float64(spec.Quantity),
		ProductionTimeHours: totalMinutes / 60,
		Labor:          labor,
		Shipping:       plan,
		SpineWidthIn:   spineWidthIn,
	}
}

func fits(parentW, parentH, w, h float64) bool {
	return (w <= parentW && h <= parentH) || (h <= parentW && w <= parentH)
}

// ComputeBookWeightLb derives per-book weight from component grammages and
// areas, per spec.md §4.5.1: grams = sum over components of area_m²·gsm,
// with the cover area using the full spread.
func ComputeBookWeightLb(spec JobSpec, bwPaper, colorPaper, coverPaper catalog.PaperStock, bwLeaves, colorLeaves int, spineWidthIn float64) float64 {
	const sqInPerSqM = 1550.0031

	trimAreaM2 := (spec.FinishedWidthIn * spec.FinishedHeightIn) / sqInPerSqM
	grams := trimAreaM2*bwPaper.GSM*float64(bwLeaves) + trimAreaM2*colorPaper.GSM*float64(colorLeaves)
	if spec.HasCover {
		spreadAreaM2 := ((2*spec.FinishedWidthIn + spineWidthIn) * spec.FinishedHeightIn) / sqInPerSqM
		grams += spreadAreaM2 * coverPaper.GSM
	}
	return grams / 453.59237
}
