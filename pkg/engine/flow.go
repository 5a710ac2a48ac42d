package engine

import "math"

// FlowPlan is the outcome of flow packing: a column index per child plus
// the shared column width.
type FlowPlan struct {
	Columns     int
	ColumnWidth float64
	ColumnOf    []int
}

// PackFlow assigns children to columns. The column count comes from the
// explicit request, or from how many of the widest child fit side by side.
// Children are packed greedily: a column is closed once its accumulated
// height passes totalHeight/columns, unless it is the last column, which
// absorbs everything left.
func PackFlow(heights []float64, maxChildWidth, availableWidth, gap float64, explicitColumns int) FlowPlan {
	n := len(heights)
	plan := FlowPlan{Columns: 1, ColumnOf: make([]int, n)}
	if n == 0 {
		plan.ColumnWidth = availableWidth
		return plan
	}

	columns := explicitColumns
	if columns <= 0 {
		if maxChildWidth > 0 {
			columns = int(math.Floor(availableWidth / maxChildWidth))
		}
		if columns < 1 {
			columns = 1
		}
	}
	if columns > n {
		columns = n
	}
	plan.Columns = columns
	plan.ColumnWidth = (availableWidth - float64(columns-1)*gap) / float64(columns)
	if plan.ColumnWidth < 0 {
		plan.ColumnWidth = 0
	}

	totalHeight := 0.0
	for _, h := range heights {
		totalHeight += h
	}
	threshold := totalHeight / float64(columns)

	column := 0
	accumulated := 0.0
	for i, h := range heights {
		plan.ColumnOf[i] = column
		accumulated += h
		if accumulated > threshold && column < columns-1 {
			column++
			accumulated = 0
		}
	}
	return plan
}
