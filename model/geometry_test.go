package model

import (
	"errors"
	"math"
	"testing"
)

// ============================================================================
// Vec3 Tests
// ============================================================================

func TestVec3Scale(t *testing.T) {
	v := Vec3{1, -2, 3}.Scale(2.5)
	want := Vec3{2.5, -5, 7.5}
	if v != want {
		t.Errorf("Scale() = %v, want %v", v, want)
	}
}

// ============================================================================
// Matrix3 Tests
// ============================================================================

func TestMatrix3Columns(t *testing.T) {
	var m Matrix3
	m.SetCol(0, Vec3{1, 2, 3})
	m.SetCol(1, Vec3{4, 5, 6})
	m.SetCol(2, Vec3{7, 8, 9})

	for i, want := range []Vec3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}} {
		if got := m.Col(i); got != want {
			t.Errorf("Col(%d) = %v, want %v", i, got, want)
		}
	}
	if m[0] != [3]float64{1, 4, 7} {
		t.Errorf("row 0 = %v, want [1 4 7]", m[0])
	}
}

func TestMatrix3Det(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
		want float64
	}{
		{"identity", Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"scaled identity", Matrix3{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}, 1000},
		{"singular", Matrix3{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}, 0},
		{"general", Matrix3{{2, 0, 1}, {1, 3, 0}, {0, 1, 4}}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Det(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Det() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix3Inverse(t *testing.T) {
	m := Matrix3{{2, 0, 1}, {1, 3, 0}, {0, 1, 4}}
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("Inverse() error: %v", err)
	}

	// m * inv must reproduce the identity.
	for col := 0; col < 3; col++ {
		got := m.MulVec(inv.Col(col))
		for row := 0; row < 3; row++ {
			want := 0.0
			if row == col {
				want = 1
			}
			if math.Abs(got[row]-want) > 1e-12 {
				t.Errorf("(m·inv)[%d][%d] = %v, want %v", row, col, got[row], want)
			}
		}
	}
}

func TestMatrix3InverseSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3
	}{
		{"zero matrix", Matrix3{}},
		{"dependent rows", Matrix3{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.m.Inverse(); !errors.Is(err, ErrSingular) {
				t.Errorf("Inverse() error = %v, want ErrSingular", err)
			}
		})
	}
}

func TestMatrix3MulVec(t *testing.T) {
	m := Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	got := m.MulVec(Vec3{1, 0, -1})
	want := Vec3{-2, -2, -2}
	if got != want {
		t.Errorf("MulVec() = %v, want %v", got, want)
	}
}

func TestMatrix3Scale(t *testing.T) {
	m := Matrix3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}.Scale(2)
	want := Matrix3{{2, 4, 6}, {8, 10, 12}, {14, 16, 18}}
	if m != want {
		t.Errorf("Scale() = %v, want %v", m, want)
	}
}
