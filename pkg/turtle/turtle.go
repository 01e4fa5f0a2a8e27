// Package turtle implements the turtle state machine and the segment
// trace types shared with renderers.
package turtle

import "math"

// Point is a canvas coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is one drawn line in the output trace.
type Segment struct {
	From  Point `json:"from"`
	To    Point `json:"to"`
	Color uint8 `json:"color"`
}

// Turtle holds the drawing state. Heading 0 points north (up, -y on the
// canvas) and RIGHT turns clockwise.
type Turtle struct {
	x       float64
	y       float64
	heading float64 // degrees, normalized into [0,360)
	penDown bool
	color   uint8
}

// New creates a turtle at the given origin, heading north, pen up,
// pen color white (7).
func New(x, y float64) *Turtle {
	return &Turtle{x: x, y: y, heading: 0, penDown: false, color: 7}
}

func normalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Forward moves along the current heading. The returned segment is valid
// only when drawn is true (pen down).
func (t *Turtle) Forward(distance float64) (Segment, bool) {
	return t.move(distance, t.heading)
}

// Back moves against the current heading without changing it.
func (t *Turtle) Back(distance float64) (Segment, bool) {
	return t.move(distance, t.heading+180)
}

func (t *Turtle) move(distance, direction float64) (Segment, bool) {
	rad := direction * math.Pi / 180
	from := Point{X: t.x, Y: t.y}
	t.x += distance * math.Sin(rad)
	t.y -= distance * math.Cos(rad)
	if !t.penDown {
		return Segment{}, false
	}
	return Segment{From: from, To: Point{X: t.x, Y: t.y}, Color: t.color}, true
}

// Left turns counterclockwise by the given degrees.
func (t *Turtle) Left(degrees float64) {
	t.heading = normalizeHeading(t.heading - degrees)
}

// Right turns clockwise by the given degrees.
func (t *Turtle) Right(degrees float64) {
	t.heading = normalizeHeading(t.heading + degrees)
}

// Turn adds signed degrees to the heading.
func (t *Turtle) Turn(degrees float64) {
	t.heading = normalizeHeading(t.heading + degrees)
}

// SetHeading sets the heading directly.
func (t *Turtle) SetHeading(degrees float64) {
	t.heading = normalizeHeading(degrees)
}

// SetX repositions the turtle horizontally without drawing.
func (t *Turtle) SetX(x float64) {
	t.x = x
}

// SetY repositions the turtle vertically without drawing.
func (t *Turtle) SetY(y float64) {
	t.y = y
}

// PenUp lifts the pen.
func (t *Turtle) PenUp() {
	t.penDown = false
}

// PenDown lowers the pen.
func (t *Turtle) PenDown() {
	t.penDown = true
}

// SetColor sets the pen color index. Callers validate the palette range.
func (t *Turtle) SetColor(c uint8) {
	t.color = c
}

// XCor returns the current x coordinate.
func (t *Turtle) XCor() float64 { return t.x }

// YCor returns the current y coordinate.
func (t *Turtle) YCor() float64 { return t.y }

// Heading returns the current heading in degrees.
func (t *Turtle) Heading() float64 { return t.heading }

// Color returns the current pen color index.
func (t *Turtle) Color() uint8 { return t.color }

// IsPenDown reports whether the pen is down.
func (t *Turtle) IsPenDown() bool { return t.penDown }
