package battlemap

import "testing"

func TestEaseByName(t *testing.T) {
	cases := []struct {
		name string
		p    float64
		want float64
	}{
		{"easeIn", 0.5, 0.25},
		{"easeOut", 0.5, 0.75},
		{"easeInOut", 0.25, 0.125},
		{"", 0.3, 0.3},
		{"no-such-easing", 0.7, 0.7},
	}
	for _, c := range cases {
		fn := EaseByName(c.name)
		if fn == nil {
			t.Fatalf("EaseByName(%q) = nil", c.name)
		}
		if got := easeValue(fn, c.p); !approxEqual(got, c.want, epsilon) {
			t.Errorf("EaseByName(%q)(%f) = %f, want %f", c.name, c.p, got, c.want)
		}
	}
}

func TestEaseValueNilIsLinear(t *testing.T) {
	for _, p := range []float64{0, 0.25, 0.5, 1} {
		if got := easeValue(nil, p); !approxEqual(got, p, epsilon) {
			t.Errorf("easeValue(nil, %f) = %f, want identity", p, got)
		}
	}
}
