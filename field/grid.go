package field

// Grid is a uniform spatial hash over particle indices. With a cell size
// equal to the link distance, every pair closer than that distance lies in
// the same or an adjacent cell.
type Grid struct {
	CellSize   float64
	GridWidth  int
	GridHeight int
	Cells      [][]int
}

// NewGrid creates a grid covering a w×h viewport.
func NewGrid(w, h, cellSize float64) *Grid {
	gw := int(w/cellSize) + 1
	gh := int(h/cellSize) + 1
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 1
	}
	cells := make([][]int, gw*gh)
	for i := range cells {
		cells[i] = make([]int, 0, 4)
	}
	return &Grid{
		CellSize:   cellSize,
		GridWidth:  gw,
		GridHeight: gh,
		Cells:      cells,
	}
}

// cell returns the clamped cell coordinates of a position. Clamping keeps
// particles pushed outside the viewport in the border cells; it never
// separates two points by more than one cell that were adjacent before.
func (g *Grid) cell(x, y float64) (cx, cy int) {
	cx = int(x / g.CellSize)
	cy = int(y / g.CellSize)
	if x < 0 {
		cx = 0
	}
	if y < 0 {
		cy = 0
	}
	if cx >= g.GridWidth {
		cx = g.GridWidth - 1
	}
	if cy >= g.GridHeight {
		cy = g.GridHeight - 1
	}
	return cx, cy
}

// Clear empties every cell, keeping capacity.
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = g.Cells[i][:0]
	}
}

// Insert adds index at (x, y).
func (g *Grid) Insert(index int, x, y float64) {
	cx, cy := g.cell(x, y)
	idx := cy*g.GridWidth + cx
	g.Cells[idx] = append(g.Cells[idx], index)
}

// ForNearby calls fn for every index in the 3×3 block of cells around
// (x, y), including the cell of (x, y) itself.
func (g *Grid) ForNearby(x, y float64, fn func(index int)) {
	cx, cy := g.cell(x, y)
	for dy := -1; dy <= 1; dy++ {
		ncy := cy + dy
		if ncy < 0 || ncy >= g.GridHeight {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			ncx := cx + dx
			if ncx < 0 || ncx >= g.GridWidth {
				continue
			}
			for _, index := range g.Cells[ncy*g.GridWidth+ncx] {
				fn(index)
			}
		}
	}
}
