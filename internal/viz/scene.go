package viz

// Drawable primitives pushed to the client. The client replays them onto a
// canvas verbatim; all coordinates are in the fixed 800×400 logical space.

const (
	CanvasWidth  = 800.0
	CanvasHeight = 400.0
)

// GridLine is a single stroke of the coordinate grid.
type GridLine struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Label is a text annotation anchored at a canvas point.
type Label struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// WindIndicator is the circular compass in the corner: an arrow rotated so
// 0° points north, plus a numeric speed readout.
type WindIndicator struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"radius"`
	ArrowAngle float64 `json:"arrow_angle"` // degrees, 0 = north
	SpeedLabel string  `json:"speed_label"`
}

// Point is a canvas coordinate on the flight path.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Scene is one complete frame: everything needed to redraw the canvas from
// scratch. Each parameter change produces a fresh Scene; nothing is retained
// between frames.
type Scene struct {
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Grid    []GridLine    `json:"grid"`
	Labels  []Label       `json:"labels"`
	Wind    WindIndicator `json:"wind"`
	Path    []Point       `json:"path"`
	Landing Point         `json:"landing"`
}
