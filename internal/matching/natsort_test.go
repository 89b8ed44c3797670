package matching

import "testing"

func TestCompareNumericAware(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"ATEN 2.jpg", "ATEN 10.jpg", -1},
		{"ATEN 10.jpg", "ATEN 2.jpg", 1},
		{"ATEN 2.jpg", "ATEN 2.jpg", 0},
		{"ATEN 02.jpg", "ATEN 2.jpg", 0},
		{"a.jpg", "b.jpg", -1},
		{"alvin2.jpg", "alvin10.jpg", -1},
		{"ATEN.jpg", "ATEN 1.jpg", 1}, // '.' > ' '
	}
	for _, tc := range cases {
		if got := Compare(tc.a, tc.b); got != tc.want {
			t.Fatalf("Compare(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
