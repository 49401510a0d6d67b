package state

const (
	DefaultGridFill      = "#000"
	DefaultGridHighlight = "#fff"
)

// Grid is the cell-based drawing variant: one colour string per pixel,
// Height rows by Width columns.
type Grid struct {
	Width  int
	Height int
	cells  [][]string
}

// NewGrid builds a width×height grid with every cell set to fill.
func NewGrid(width, height int, fill string) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]string, height)
	for y := range cells {
		row := make([]string, width)
		for x := range row {
			row[x] = fill
		}
		cells[y] = row
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// Cell returns the colour at column x, row y. ok is false outside the grid.
func (g *Grid) Cell(x, y int) (string, bool) {
	if !g.contains(x, y) {
		return "", false
	}
	return g.cells[y][x], true
}

// Set colours one cell. Coordinates outside the grid are ignored and
// reported with a false return.
func (g *Grid) Set(x, y int, color string) bool {
	if !g.contains(x, y) {
		return false
	}
	g.cells[y][x] = color
	return true
}

// Highlight colours the cell under p, truncating to integer pixels.
func (g *Grid) Highlight(p Point, color string) bool {
	if p.X < 0 || p.Y < 0 {
		return false
	}
	return g.Set(int(p.X), int(p.Y), color)
}

func (g *Grid) contains(x, y int) bool {
	return g != nil && x >= 0 && y >= 0 && x < g.Width && y < g.Height
}
