package rules

import "testing"

func TestAlive(t *testing.T) {
	cases := []struct {
		neighbors int
		alive     bool
		expected  bool
	}{
		{0, true, false},  // underpopulation
		{1, true, false},  // underpopulation
		{2, true, true},   // survival
		{3, true, true},   // survival
		{4, true, false},  // overpopulation
		{8, true, false},  // overpopulation
		{2, false, false}, // stays dead
		{3, false, true},  // birth
		{4, false, false}, // stays dead
		{0, false, false}, // stays dead
	}

	for _, c := range cases {
		if got := Alive(c.neighbors, c.alive); got != c.expected {
			t.Fatalf("Alive(%d, %v) = %v, expected %v", c.neighbors, c.alive, got, c.expected)
		}
	}
}
