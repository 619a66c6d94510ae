package tui

import (
	"math"
	"testing"
)

func TestFitViewport(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		wantErr  bool
		wantCols int
		wantRows int
		wantLeft int
	}{
		{name: "large terminal caps the field", w: 100, h: 50, wantCols: 48, wantRows: 30, wantLeft: 26},
		{name: "classic 80x24", w: 80, h: 24, wantCols: 48, wantRows: 19, wantLeft: 16},
		{name: "narrow terminal", w: 30, h: 24, wantCols: 28, wantRows: 19, wantLeft: 1},
		{name: "too narrow", w: 20, h: 24, wantErr: true},
		{name: "too short", w: 80, h: 12, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FitViewport(tt.w, tt.h, 340, 400)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FitViewport() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if v.Cols != tt.wantCols || v.Rows != tt.wantRows || v.Left != tt.wantLeft {
				t.Errorf("got cols=%d rows=%d left=%d, want %d/%d/%d",
					v.Cols, v.Rows, v.Left, tt.wantCols, tt.wantRows, tt.wantLeft)
			}
			if v.Top+v.Rows+2 > tt.h {
				t.Errorf("field plus border and hint (%d rows) does not fit in %d", v.Top+v.Rows+2, tt.h)
			}
		})
	}
}

func TestViewportMapping(t *testing.T) {
	v, err := FitViewport(80, 40, 340, 400)
	if err != nil {
		t.Fatal(err)
	}

	if got := v.Col(0); got != v.Left {
		t.Errorf("Col(0) = %d, want %d", got, v.Left)
	}
	if got := v.Col(339.9); got != v.Left+v.Cols-1 {
		t.Errorf("Col(339.9) = %d, want last column", got)
	}
	if got := v.Col(-20); got != v.Left {
		t.Errorf("Col(-20) = %d, want clamped to first column", got)
	}

	if _, ok := v.Row(-1); ok {
		t.Error("Row(-1) should be outside the field")
	}
	if _, ok := v.Row(400); ok {
		t.Error("Row(400) should be outside the field")
	}
	if row, ok := v.Row(399); !ok || row != v.Top+v.Rows-1 {
		t.Errorf("Row(399) = %d, %v", row, ok)
	}

	from, to := v.Span(132.5, 75)
	cells := to - from + 1
	if want := int(math.Round(75 / v.CellWidth())); cells < want-1 || cells > want+1 {
		t.Errorf("bucket spans %d cells, want about %d", cells, want)
	}
}
