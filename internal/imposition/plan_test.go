package imposition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/geom"
	"github.com/piwi3910/printcore/internal/perrors"
)

func baseSpec() Spec {
	return Spec{
		SelectedSheet: catalog.PressSheetSize{Name: "11x17", LongSide: 17, ShortSide: 11},
		Columns:       2,
		Rows:          2,
		Orientation:   geom.OrientationAuto,
	}
}

func TestPlanAutoOrientationKeepsRequestedGrid(t *testing.T) {
	spec := baseSpec()
	// A 5x3in page in a 2x2 grid makes a 720x432pt block, which fits both
	// orientations of an 11x17 sheet; auto orientation resolves without
	// error and keeps the requested grid.
	result, err := Plan(spec, geom.InchesToPoints(5), geom.InchesToPoints(3))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Columns)
	assert.Equal(t, 2, result.Rows)
}

func TestPlanBleedExceedsPage(t *testing.T) {
	spec := baseSpec()
	spec.BleedIn = 10
	_, err := Plan(spec, geom.InchesToPoints(5), geom.InchesToPoints(3))
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.BleedExceedsPage))
}

func TestPlanLayoutExceedsSheet(t *testing.T) {
	spec := baseSpec()
	spec.Columns = 10
	spec.Rows = 10
	_, err := Plan(spec, geom.InchesToPoints(5), geom.InchesToPoints(3))
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.LayoutExceedsSheet))
}

func TestPlanInvalidColumnsRows(t *testing.T) {
	spec := baseSpec()
	spec.Columns = 0
	_, err := Plan(spec, geom.InchesToPoints(5), geom.InchesToPoints(3))
	require.Error(t, err)
	assert.True(t, perrors.Is(err, perrors.InvalidGeometry))
}

func TestPlanForcedOrientationRespected(t *testing.T) {
	spec := baseSpec()
	spec.Orientation = geom.OrientationPortrait
	result, err := Plan(spec, geom.InchesToPoints(3), geom.InchesToPoints(2))
	require.NoError(t, err)
	assert.Equal(t, geom.OrientationPortrait, result.Orientation)
	assert.Equal(t, 11.0*72, result.SheetWidthPt)
	assert.Equal(t, 17.0*72, result.SheetHeightPt)
}

func TestPlanBookletNormalizesGrid(t *testing.T) {
	spec := baseSpec()
	spec.Type = Booklet
	spec.Columns = 5
	spec.Rows = 5
	result, err := Plan(spec, geom.InchesToPoints(4), geom.InchesToPoints(5))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Columns)
	assert.Equal(t, 1, result.Rows)
}

func TestPlanBookletCreepWarnsWhenItMayOverflowTheSideMargin(t *testing.T) {
	spec := Spec{
		SelectedSheet: catalog.PressSheetSize{Name: "tight", LongSide: 8.34, ShortSide: 6},
		Columns:       2,
		Rows:          1,
		Type:          Booklet,
		Orientation:   geom.OrientationAuto,
		CreepIn:       1,
	}
	result, err := Plan(spec, 300, 400)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "creep")
}

func TestPlanBookletCreepWithinMarginIsNotWarned(t *testing.T) {
	spec := baseSpec()
	spec.Type = Booklet
	spec.CreepIn = 0.01
	result, err := Plan(spec, geom.InchesToPoints(4), geom.InchesToPoints(5))
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
}

func TestRowOffsetXAppliesOnlyToOddRowsWithHalfOffset(t *testing.T) {
	p := PlanResult{Rows: 2, ColumnStridePt: 100}
	assert.Equal(t, 0.0, p.RowOffsetX(0, RowOffsetHalf))
	assert.Equal(t, 50.0, p.RowOffsetX(1, RowOffsetHalf))
	assert.Equal(t, 0.0, p.RowOffsetX(1, RowOffsetNone))
}
