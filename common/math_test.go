package common

import (
	"math"
	"testing"
)

func TestVec2(t *testing.T) {
	cases := []struct {
		name     string
		v        Vec2
		nearZero bool
		finite   bool
	}{
		{"zero", Vec2{}, true, true},
		{"tiny", Vec2{X: 1e-9, Y: -1e-9}, true, true},
		{"moving", Vec2{X: 1.5, Y: 0}, false, true},
		{"nan", Vec2{X: math.NaN()}, false, false},
		{"inf", Vec2{Y: math.Inf(-1)}, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NearZero(c.v.X) && NearZero(c.v.Y); got != c.nearZero {
				t.Fatalf("NearZero = %v, want %v", got, c.nearZero)
			}
			if got := c.v.Finite(); got != c.finite {
				t.Fatalf("Finite() = %v, want %v", got, c.finite)
			}
		})
	}

	sum := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -4}).Sub(Vec2{X: 1, Y: 1})
	if sum != (Vec2{X: 3, Y: -3}) {
		t.Fatalf("unexpected vector arithmetic result %+v", sum)
	}
}
