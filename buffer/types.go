package buffer

// Point is a file coordinate: X is the byte column and Y is the line index.
//
// Points are not clamped on construction. Operations that accept points
// normalize their order and clamp columns themselves.
type Point struct {
	X int
	Y int
}

func ComparePoints(a, b Point) int {
	if a.Y < b.Y {
		return -1
	}
	if a.Y > b.Y {
		return 1
	}
	if a.X < b.X {
		return -1
	}
	if a.X > b.X {
		return 1
	}
	return 0
}

// OrderPoints returns a and b in document order.
func OrderPoints(a, b Point) (Point, Point) {
	if ComparePoints(a, b) <= 0 {
		return a, b
	}
	return b, a
}

// ClampPoint clamps p into document bounds described by rowCount and lineLen.
//
// The returned Point always satisfies:
// - 0 <= Y < rowCount (with rowCount treated as at least 1)
// - 0 <= X <= lineLen(Y)
func ClampPoint(p Point, rowCount int, lineLen func(row int) int) Point {
	if rowCount <= 0 {
		rowCount = 1
	}

	row := clampInt(p.Y, 0, rowCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(row)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	return Point{X: clampInt(p.X, 0, maxCol), Y: row}
}

// DigitWidth returns the number of decimal digits needed to print n.
// Values below 1 count as one digit.
func DigitWidth(n int) int {
	if n < 10 {
		return 1
	}
	w := 0
	for n > 0 {
		w++
		n /= 10
	}
	return w
}

// MarginFor returns the gutter width for a document with totalLines lines:
// one blank cell on each side of the widest line number.
func MarginFor(totalLines int) int {
	return DigitWidth(totalLines) + 2
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
