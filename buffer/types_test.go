package buffer

import "testing"

func TestComparePoints(t *testing.T) {
	t.Run("row", func(t *testing.T) {
		if got := ComparePoints(Point{X: 0, Y: 0}, Point{X: 0, Y: 1}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePoints(Point{X: 0, Y: 2}, Point{X: 999, Y: 1}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("col", func(t *testing.T) {
		if got := ComparePoints(Point{X: 0, Y: 1}, Point{X: 1, Y: 1}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePoints(Point{X: 2, Y: 1}, Point{X: 1, Y: 1}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("equal", func(t *testing.T) {
		if got := ComparePoints(Point{X: 4, Y: 3}, Point{X: 4, Y: 3}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestOrderPoints(t *testing.T) {
	a, b := OrderPoints(Point{X: 3, Y: 2}, Point{X: 9, Y: 1})
	if a != (Point{X: 9, Y: 1}) || b != (Point{X: 3, Y: 2}) {
		t.Fatalf("unexpected order: %v, %v", a, b)
	}

	a2, b2 := OrderPoints(a, b)
	if a2 != a || b2 != b {
		t.Fatalf("expected idempotent order: %v, %v", a2, b2)
	}
}

func TestClampPoint(t *testing.T) {
	lineLens := []int{1, 0, 3}
	ll := func(row int) int { return lineLens[row] }

	cases := []struct {
		in   Point
		want Point
	}{
		{in: Point{X: -1, Y: -1}, want: Point{X: 0, Y: 0}},
		{in: Point{X: 999, Y: 999}, want: Point{X: 3, Y: 2}},
		{in: Point{X: 5, Y: 1}, want: Point{X: 0, Y: 1}},
		{in: Point{X: 1, Y: 0}, want: Point{X: 1, Y: 0}},
	}

	for _, tc := range cases {
		if got := ClampPoint(tc.in, len(lineLens), ll); got != tc.want {
			t.Fatalf("ClampPoint(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMarginFor(t *testing.T) {
	cases := []struct {
		lines int
		want  int
	}{
		{lines: 0, want: 3},
		{lines: 1, want: 3},
		{lines: 9, want: 3},
		{lines: 10, want: 4},
		{lines: 99, want: 4},
		{lines: 100, want: 5},
		{lines: 123456, want: 8},
	}

	for _, tc := range cases {
		if got := MarginFor(tc.lines); got != tc.want {
			t.Fatalf("MarginFor(%d): got %d, want %d", tc.lines, got, tc.want)
		}
	}
}

func TestCalcRenderX_ExpandsTabs(t *testing.T) {
	cases := []struct {
		line     string
		col      int
		tabWidth int
		want     int
	}{
		{line: "abc", col: 2, tabWidth: 4, want: 2},
		{line: "\tx", col: 1, tabWidth: 4, want: 4},
		{line: "\tx", col: 2, tabWidth: 4, want: 5},
		{line: "a\t\tb", col: 3, tabWidth: 2, want: 5},
		{line: "ab", col: 99, tabWidth: 4, want: 2},
		{line: "ab", col: -3, tabWidth: 4, want: 0},
		{line: "\t", col: 1, tabWidth: 0, want: DefaultTabWidth},
	}

	for _, tc := range cases {
		if got := CalcRenderX(tc.line, tc.col, tc.tabWidth); got != tc.want {
			t.Fatalf("CalcRenderX(%q, %d, %d): got %d, want %d", tc.line, tc.col, tc.tabWidth, got, tc.want)
		}
	}
}

func TestFileColForRenderX_InvertsCalcRenderX(t *testing.T) {
	line := "a\tbc"
	cases := []struct {
		renderX int
		want    int
	}{
		{renderX: -1, want: 0},
		{renderX: 0, want: 0},
		{renderX: 1, want: 1}, // first cell of the tab
		{renderX: 4, want: 1}, // last cell of the tab
		{renderX: 5, want: 2},
		{renderX: 6, want: 3},
		{renderX: 40, want: 4},
	}

	for _, tc := range cases {
		if got := FileColForRenderX(line, tc.renderX, 4); got != tc.want {
			t.Fatalf("FileColForRenderX(%d): got %d, want %d", tc.renderX, got, tc.want)
		}
	}

	for col := 0; col <= len(line); col++ {
		rx := CalcRenderX(line, col, 4)
		if got := FileColForRenderX(line, rx, 4); got != col {
			t.Fatalf("round trip col %d: got %d", col, got)
		}
	}
}
