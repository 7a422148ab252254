package problemgen

// DefaultLabyrinthSize is the side length of a labyrinth grid.
const DefaultLabyrinthSize = 4

// labyrinthDistractors is the number of wrong options offered per cell.
const labyrinthDistractors = 3

// Point is a grid coordinate. X grows right, Y grows down.
type Point struct {
	X int
	Y int
}

// Cell is one square of the labyrinth with its question.
type Cell struct {
	X, Y     int
	OnPath   bool
	Question string
	Answer   int
	Options  []int
}

// LabyrinthLevel is a square grid with a right/down path from the top-left
// corner to the bottom-right corner.
type LabyrinthLevel struct {
	Size  int
	Grid  []Cell // row-major
	Path  []Point
	Start Point
	End   Point
}

// CellAt returns the cell at p.
func (l *LabyrinthLevel) CellAt(p Point) *Cell {
	if p.X < 0 || p.Y < 0 || p.X >= l.Size || p.Y >= l.Size {
		return nil
	}
	return &l.Grid[p.Y*l.Size+p.X]
}

// Labyrinth generates a level of the given size (DefaultLabyrinthSize when
// size < 2). The path moves right or down with equal probability until it
// reaches the far edge, then follows that edge to the end.
func (g *Generator) Labyrinth(tier Tier, size int) *LabyrinthLevel {
	if size < 2 {
		size = DefaultLabyrinthSize
	}

	cur := Point{}
	path := []Point{cur}
	onPath := map[Point]bool{cur: true}
	for cur.X < size-1 || cur.Y < size-1 {
		canRight := cur.X < size-1
		canDown := cur.Y < size-1
		switch {
		case canRight && canDown:
			if g.coin() {
				cur.X++
			} else {
				cur.Y++
			}
		case canRight:
			cur.X++
		default:
			cur.Y++
		}
		path = append(path, cur)
		onPath[cur] = true
	}

	grid := make([]Cell, 0, size*size)
	for y := range size {
		for x := range size {
			q := g.Question(tier, OpAny)
			grid = append(grid, Cell{
				X:        x,
				Y:        y,
				OnPath:   onPath[Point{X: x, Y: y}],
				Question: q.Text,
				Answer:   q.Answer,
				Options:  g.Options(q.Answer, labyrinthDistractors),
			})
		}
	}

	return &LabyrinthLevel{
		Size:  size,
		Grid:  grid,
		Path:  path,
		Start: Point{},
		End:   Point{X: size - 1, Y: size - 1},
	}
}
