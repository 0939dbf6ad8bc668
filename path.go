package backdrop

// Point represents a 2D point.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a polygonal vector path made of one or more subpaths.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
	hasPoint bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
	p.hasPoint = true
}

// LineTo draws a line to a point.
// On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.hasPoint {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	if !p.hasPoint {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
	p.hasPoint = false
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return p.hasPoint
}

// Subpath is a run of connected points started by MoveTo.
type Subpath struct {
	Points []Point
	Closed bool
}

// Subpaths splits the path into its subpaths. A closed subpath does not
// repeat its start point. Drawing after Close continues from the start
// point of the closed subpath.
func (p *Path) Subpaths() []Subpath {
	var (
		all   []Subpath
		cur   Subpath
		start Point
	)
	flush := func() {
		if len(cur.Points) > 0 {
			all = append(all, cur)
		}
		cur = Subpath{}
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			start = e.Point
			cur.Points = append(cur.Points, e.Point)
		case LineTo:
			if len(cur.Points) == 0 {
				cur.Points = append(cur.Points, start)
			}
			cur.Points = append(cur.Points, e.Point)
		case Close:
			if len(cur.Points) > 0 {
				cur.Closed = true
				flush()
			}
		}
	}
	flush()
	return all
}
