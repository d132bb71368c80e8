package core

import "testing"

func TestClampBoardSize(t *testing.T) {
	cases := []struct{ in, want int }{
		{5, 10},
		{10, 10},
		{80, 80},
		{150, 150},
		{151, 150},
		{-3, 10},
	}
	for _, tc := range cases {
		if got := ClampBoardSize(tc.in); got != tc.want {
			t.Fatalf("ClampBoardSize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1},
		{1, 1},
		{8, 8},
		{30, 30},
		{99, 30},
	}
	for _, tc := range cases {
		if got := ClampSpeed(tc.in); got != tc.want {
			t.Fatalf("ClampSpeed(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClampDensity(t *testing.T) {
	if ClampDensity(-0.5) != 0 {
		t.Fatal("negative density not clamped to 0")
	}
	if ClampDensity(1.5) != 1 {
		t.Fatal("density above 1 not clamped")
	}
	if ClampDensity(0.33) != 0.33 {
		t.Fatal("in-range density altered")
	}
}

func TestSettingsClamp(t *testing.T) {
	s := Settings{Width: 1, Height: 999, Speed: 0, Density: 2}
	s.Clamp()
	if s.Width != MinBoardSize || s.Height != MaxBoardSize || s.Speed != MinSpeed || s.Density != 1 {
		t.Fatalf("Clamp produced %+v", s)
	}
}
