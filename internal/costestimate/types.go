// Package costestimate computes a full cost breakdown for a print job from
// a job specification and a paper/press-sheet/shipping catalog, per
// spec.md §4.5 and §4.5.1. Estimate never returns an error: domain
// failures populate Breakdown.Error with zeroed numeric fields, following
// the cost estimator's pure-function contract in spec.md §7.
package costestimate

import "log/slog"

// Lamination selects the finishing film applied to printed covers.
type Lamination string

const (
	LaminationNone  Lamination = "none"
	LaminationGloss Lamination = "gloss"
	LaminationMatte Lamination = "matte"
)

// Binding selects how the interior is bound.
type Binding string

const (
	BindingPerfect Binding = "perfect_bound"
	BindingSaddle  Binding = "saddle_stitch"
	BindingNone    Binding = "none"
)

// PrintColor selects black-and-white vs. full-color click pricing.
type PrintColor string

const (
	ColorBW    PrintColor = "bw"
	ColorColor PrintColor = "color"
)

// JobSpec is the immutable cost-estimate input, per spec.md §3.
type JobSpec struct {
	Quantity int

	FinishedWidthIn  float64
	FinishedHeightIn float64

	BWPages    int
	BWPaperSku string

	ColorPages    int
	ColorPaperSku string

	HasCover             bool
	CoverPaperSku        string
	CoverPrintColor      PrintColor
	CoverPrintsBothSides bool

	Lamination Lamination
	Binding    Binding

	LaborRatePerHour float64
	MarkupPercent    float64
	SpoilagePercent  float64

	CalculateShipping   bool
	OverrideShippingBox string
}

// LaborMinutes breaks total labor time down by phase, per spec.md §4.5
// point 9.
type LaborMinutes struct {
	Setup      float64
	Printing   float64
	Laminating float64
	Binding    float64
	Trimming   float64
	Wastage    float64
}

// Total sums every labor phase including wastage.
func (l LaborMinutes) Total() float64 {
	return l.Setup + l.Printing + l.Laminating + l.Binding + l.Trimming + l.Wastage
}

// Breakdown is the cost estimator's output, per spec.md §3. A non-empty
// Error means every numeric field is zero-valued and the job is not
// costable as specified.
type Breakdown struct {
	Error string

	BWNUp        int
	ColorNUp     int
	CoverNUp     int
	BWPressSheets    int
	ColorPressSheets int
	CoverPressSheets int

	TotalClicks int

	PaperCost      float64
	ClickCost      float64
	LaminationCost float64
	LaborCost      float64
	ShippingCost   float64

	Subtotal float64
	Markup   float64
	Total    float64

	PricePerUnit float64

	ProductionTimeHours float64
	Labor               LaborMinutes

	Shipping *ShippingPlan

	SpineWidthIn float64
}

func errorBreakdown(msg string) Breakdown {
	slog.Warn("cost estimate validation failed", "detail", msg)
	return Breakdown{Error: msg}
}
