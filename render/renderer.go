package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/parksense/geom"
	"github.com/lixenwraith/parksense/sim"
)

// Renderer draws the simulation onto a tcell screen, mapping world
// units to terminal cells. The bottom row is the status line.
type Renderer struct {
	screen tcell.Screen

	arenaW, arenaH float64
	cols, rows     int
	scaleX, scaleY float64
}

// New creates a renderer sized to the current screen
func New(screen tcell.Screen, arenaW, arenaH float64) *Renderer {
	r := &Renderer{screen: screen, arenaW: arenaW, arenaH: arenaH}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the world-to-cell mapping
func (r *Renderer) Resize(cols, rows int) {
	r.cols = cols
	r.rows = rows
	drawRows := rows - 1 // status line
	if drawRows < 1 {
		drawRows = 1
	}
	r.scaleX = float64(cols) / r.arenaW
	r.scaleY = float64(drawRows) / r.arenaH
}

// Frame draws one complete frame from the step report
func (r *Renderer) Frame(s *sim.Simulation, rep sim.FrameReport) {
	r.screen.Clear()

	for _, z := range s.Lot().Zones {
		style := styleZone
		for _, label := range rep.Occupied {
			if label == z.Label {
				style = styleZoneFull
			}
		}
		r.drawZone(z.Bounds, z.Label, style)
	}

	for _, o := range s.Obstacles() {
		r.drawObstacle(o.Pos, o.Radius)
	}

	r.drawBody(s.Car().Body())

	style := tierStyle(rep.Tier)
	for _, sensor := range rep.Sensors {
		r.fillRotated(sensor.Rect, '▒', style)
	}

	r.drawStatus(s, rep)
	r.screen.Show()
}

// cell converts a world point to a terminal cell
func (r *Renderer) cell(p geom.Point) (int, int) {
	return int(p.X * r.scaleX), int(p.Y * r.scaleY)
}

// drawZone outlines an axis-aligned rect and writes its label inside
func (r *Renderer) drawZone(b geom.Rect, label string, style tcell.Style) {
	x0, y0 := r.cell(geom.Point{X: b.Left(), Y: b.Top()})
	x1, y1 := r.cell(geom.Point{X: b.Right(), Y: b.Bottom()})

	for x := x0; x <= x1; x++ {
		r.set(x, y0, '─', style)
		r.set(x, y1, '─', style)
	}
	for y := y0; y <= y1; y++ {
		r.set(x0, y, '│', style)
		r.set(x1, y, '│', style)
	}
	r.set(x0, y0, '┌', style)
	r.set(x1, y0, '┐', style)
	r.set(x0, y1, '└', style)
	r.set(x1, y1, '┘', style)

	for i, ch := range label {
		r.set(x0+1+i, y0+1, ch, style)
	}
}

func (r *Renderer) drawObstacle(center geom.Point, radius float64) {
	if radius <= 0 {
		x, y := r.cell(center)
		r.set(x, y, '●', styleObstacle)
		return
	}

	x0, y0 := r.cell(geom.Point{X: center.X - radius, Y: center.Y - radius})
	x1, y1 := r.cell(geom.Point{X: center.X + radius, Y: center.Y + radius})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// Sample the cell center back into world space
			wx := (float64(x) + 0.5) / r.scaleX
			wy := (float64(y) + 0.5) / r.scaleY
			if geom.DistanceSquared(geom.Point{X: wx, Y: wy}, center) <= radius*radius {
				r.set(x, y, '▓', styleObstacle)
			}
		}
	}
}

// drawBody fills a possibly-rotated rect by sampling each cell in its
// bounding box against the rotated bounds
func (r *Renderer) drawBody(body geom.Rect) {
	r.fillRotated(body, '█', styleCar)
}

func (r *Renderer) fillRotated(body geom.Rect, ch rune, style tcell.Style) {
	corners := geom.Corners(body)
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}

	x0, y0 := r.cell(geom.Point{X: minX, Y: minY})
	x1, y1 := r.cell(geom.Point{X: maxX, Y: maxY})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			wx := (float64(x) + 0.5) / r.scaleX
			wy := (float64(y) + 0.5) / r.scaleY
			if body.Contains(geom.Point{X: wx, Y: wy}) {
				r.set(x, y, ch, style)
			}
		}
	}
}

func (r *Renderer) drawStatus(s *sim.Simulation, rep sim.FrameReport) {
	dist := "---"
	if !math.IsInf(rep.MinDistance, 1) {
		dist = fmt.Sprintf("%.0f", rep.MinDistance)
	}
	parked := ""
	if rep.Parked {
		parked = fmt.Sprintf("  PARKED [%s]", rep.Slot)
	}
	text := fmt.Sprintf(" dist %s  tier %s%s  (wasd/arrows move, q quits)", dist, rep.Tier, parked)
	if len(text) < r.cols {
		text += strings.Repeat(" ", r.cols-len(text))
	}

	y := r.rows - 1
	for i, ch := range text {
		if i >= r.cols {
			break
		}
		r.screen.SetContent(i, y, ch, nil, styleStatus)
	}
}

// set writes a cell if it lies inside the drawable area
func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.cols || y >= r.rows-1 {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
