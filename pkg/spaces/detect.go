package spaces

import (
	"math"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/shape"
)

// MinContourArea is the smallest polygon area, in square millimeters,
// accepted as a real space. Smaller faces are slivers from overlapping
// wall outlines.
const MinContourArea = 100.0

const squareMMPerSquareM = 1e6

// Contour is a detected space boundary. Points are in drawing units
// (millimeters); Area is in square meters.
type Contour struct {
	Points   []geom.Point `json:"points" bson:"points"`
	Area     float64      `json:"area" bson:"area"`
	Centroid geom.Point   `json:"centroid" bson:"centroid"`
}

// Detect finds the closed room contour enclosing the probe point within
// the wall network in shapes. It reports ok=false when the probe is not
// inside a closed face, the face walk does not terminate, or the
// enclosed area is below MinContourArea.
func Detect(shapes []shape.Shape, probe geom.Point) (Contour, bool) {
	segs := subdivide(wallEdges(shapes))
	if len(segs) == 0 {
		return Contour{}, false
	}

	poly, ok := buildGraph(segs).traceFace(probe)
	if !ok {
		return Contour{}, false
	}

	areaMM := math.Abs(geom.PolygonArea(poly))
	if areaMM < MinContourArea {
		return Contour{}, false
	}

	return Contour{
		Points:   poly,
		Area:     areaMM / squareMMPerSquareM,
		Centroid: geom.PolygonCentroid(poly),
	}, true
}

// Recontour re-detects the contour of an existing space shape, probing
// at its label position, and returns the update that refreshes its
// contour, area, and centroid-anchored label. It reports ok=false when
// no valid space encloses the label anymore.
func Recontour(sp *shape.Space, shapes []shape.Shape) (shape.Update, bool) {
	c, ok := Detect(shapes, sp.LabelPosition)
	if !ok {
		return shape.Update{}, false
	}
	return shape.Update{
		ID:            sp.ID,
		Points:        c.Points,
		Area:          shape.FloatRef(c.Area),
		LabelPosition: shape.PtRef(c.Centroid),
	}, true
}
