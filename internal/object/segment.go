package object

import (
	"math"

	"github.com/tomz197/wheel/internal/draw"
)

// Segment is one of the four enemy categories. Each has a key, a color and
// a 90° spawn sector around the wheel.
type Segment int

const (
	SegmentD Segment = iota // Right sector, blue
	SegmentS                // Bottom sector, yellow
	SegmentA                // Left sector, red
	SegmentW                // Top sector, green
)

// NumSegments is the number of segments; Segment values are 0..NumSegments-1.
const NumSegments = 4

// NoSegment is returned for keys that are not bound to a segment.
const NoSegment Segment = -1

type segmentInfo struct {
	name  string
	key   byte
	color draw.Color
}

var segments = [NumSegments]segmentInfo{
	SegmentD: {name: "D", key: 'd', color: draw.MustHex("#0000ff")},
	SegmentS: {name: "S", key: 's', color: draw.MustHex("#ffff00")},
	SegmentA: {name: "A", key: 'a', color: draw.MustHex("#ff0000")},
	SegmentW: {name: "W", key: 'w', color: draw.MustHex("#00ff00")},
}

// keyTable maps a key byte to its segment.
var keyTable = buildKeyTable()

func buildKeyTable() [256]Segment {
	var t [256]Segment
	for i := range t {
		t[i] = NoSegment
	}
	for i, s := range segments {
		t[s.key] = Segment(i)
	}
	return t
}

// Segments returns all segments in index order.
func Segments() [NumSegments]Segment {
	return [NumSegments]Segment{SegmentD, SegmentS, SegmentA, SegmentW}
}

// SegmentForKey returns the segment bound to key.
func SegmentForKey(key byte) (Segment, bool) {
	s := keyTable[key]
	return s, s != NoSegment
}

// Valid reports whether s is one of the four segments.
func (s Segment) Valid() bool {
	return s >= 0 && s < NumSegments
}

// Key returns the key that destroys enemies of this segment.
func (s Segment) Key() byte {
	return segments[s].key
}

// Color returns the segment color.
func (s Segment) Color() draw.Color {
	return segments[s].color
}

func (s Segment) String() string {
	if !s.Valid() {
		return "none"
	}
	return segments[s].name
}

// Sector returns the spawn sector of the segment as a half-open angle range
// [start, end) in radians. Sectors tile the circle starting at -45°.
func (s Segment) Sector() (start, end float64) {
	start = (90*float64(s) - 45) * math.Pi / 180
	return start, start + math.Pi/2
}
