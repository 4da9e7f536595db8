package debugui

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/runchicken/physics"
	"github.com/plus3/runchicken/world"
)

// TerrainRow is one tree or grain in the terrain browser.
type TerrainRow struct {
	ID    physics.BodyId
	Kind  string
	X, Y  float64
	Ahead bool
}

const (
	columnId = iota
	columnKind
	columnX
	columnY
)

// TerrainBrowser lists trees and grain with their positions.
type TerrainBrowser struct {
	rows          []TerrainRow
	maxRows       int
	sortColumn    int
	sortAscending bool
	aheadOnly     bool
	selected      physics.BodyId
}

func NewTerrainBrowser(maxRows int) *TerrainBrowser {
	return &TerrainBrowser{
		maxRows:       maxRows,
		sortColumn:    columnId,
		sortAscending: true,
	}
}

func (tb *TerrainBrowser) Render(w *world.World) {
	if !imgui.BeginV("Terrain", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Ahead of boundary only", &tb.aheadOnly)

	tb.rows = terrainRows(w, tb.aheadOnly, tb.rows[:0])
	sortRows(tb.rows, tb.sortColumn, tb.sortAscending)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("TerrainTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Body ID")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			tb.sortColumn = int(spec.ColumnIndex())
			tb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortRows(tb.rows, tb.sortColumn, tb.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, row := range tb.rows[:min(len(tb.rows), tb.maxRows)] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), tb.selected == row.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				tb.selected = row.ID
			}

			imgui.TableNextColumn()
			imgui.Text(row.Kind)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", row.X))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", row.Y))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Showing %d of %d", min(len(tb.rows), tb.maxRows), len(tb.rows)))

	imgui.End()
}

// terrainRows appends the trees and grain of w to rows.
func terrainRows(w *world.World, aheadOnly bool, rows []TerrainRow) []TerrainRow {
	edge := w.Boundary().Origin().X
	add := func(kind string, bodies []*physics.Body) {
		for _, b := range bodies {
			ahead := b.Origin().X >= edge
			if aheadOnly && !ahead {
				continue
			}
			rows = append(rows, TerrainRow{
				ID:    b.Id(),
				Kind:  kind,
				X:     b.Origin().X,
				Y:     b.Origin().Y,
				Ahead: ahead,
			})
		}
	}
	add("tree", w.Trees())
	add("grain", w.Grains())
	return rows
}

func sortRows(rows []TerrainRow, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b TerrainRow) int {
		var c int
		switch column {
		case columnKind:
			c = cmp.Compare(a.Kind, b.Kind)
		case columnX:
			c = cmp.Compare(a.X, b.X)
		case columnY:
			c = cmp.Compare(a.Y, b.Y)
		default:
			c = cmp.Compare(a.ID, b.ID)
		}
		if !ascending {
			c = -c
		}
		return c
	})
}
