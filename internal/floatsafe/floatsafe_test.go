package floatsafe

import (
	"math"
	"testing"
)

func TestFromFloat64(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		ok   bool
	}{
		{"positive zero", 0.0, true},
		{"negative zero", math.Copysign(0, -1), false},
		{"negative", -1.1, true},
		{"positive infinity", math.Inf(1), false},
		{"negative infinity", math.Inf(-1), false},
		{"nan", math.NaN(), false},
		{"ordinary", 1.1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := FromFloat64(c.in)
			if ok != c.ok {
				t.Errorf("FromFloat64(%v) ok = %v, want %v", c.in, ok, c.ok)
			}
		})
	}
}

func TestCompareTotalOrder(t *testing.T) {
	a, _ := FromFloat64(-1.0)
	b, _ := FromFloat64(0.0)
	c, _ := FromFloat64(1.0)

	if Compare(a, b) >= 0 {
		t.Errorf("expected a < b")
	}
	if Compare(b, c) >= 0 {
		t.Errorf("expected b < c")
	}
	if Compare(a, a) != 0 {
		t.Errorf("expected a == a")
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	f, ok := FromFloat64(3.14159)
	if !ok {
		t.Fatal("expected valid")
	}
	if f.Float64() != 3.14159 {
		t.Errorf("got %v", f.Float64())
	}
}
