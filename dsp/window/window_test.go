package window

import (
	"math"
	"testing"
)

func TestGenerateAllTypes(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}

				if mirror := w[len(w)-1-i]; math.Abs(v-mirror) > 1e-12 {
					t.Fatalf("not symmetric at %d: %v vs %v", i, v, mirror)
				}
			}
		})
	}
}

func TestGenerateEmpty(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}
}

func TestSingleSampleIsPeak(t *testing.T) {
	for _, typ := range Types() {
		w := Generate(typ, 1)
		if math.Abs(w[0]-1) > 1e-12 {
			t.Fatalf("%s: w[0]=%v, want 1", typ, w[0])
		}
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if a[1] == b[1] {
		t.Fatal("periodic and symmetric windows should differ")
	}

	if b[0] != 0 || b[8] != 1 {
		t.Fatalf("periodic hann endpoints: b[0]=%v b[8]=%v", b[0], b[8])
	}
}

func TestKaiserBeta(t *testing.T) {
	rect := Generate(TypeKaiser, 9, WithAlpha(0))
	for i, v := range rect {
		if v != 1 {
			t.Fatalf("beta 0: w[%d]=%v, want 1", i, v)
		}
	}

	narrow := Generate(TypeKaiser, 9, WithAlpha(10))
	wide := Generate(TypeKaiser, 9, WithAlpha(2))

	if narrow[0] >= wide[0] {
		t.Fatalf("larger beta should taper more: %v >= %v", narrow[0], wide[0])
	}

	if math.Abs(narrow[4]-1) > 1e-12 {
		t.Fatalf("center = %v, want 1", narrow[4])
	}
}

func TestBesselI0(t *testing.T) {
	if got := besselI0(0); got != 1 {
		t.Fatalf("I0(0) = %g, want 1", got)
	}

	if got := besselI0(1); math.Abs(got-1.2660658777520082) > 1e-12 {
		t.Fatalf("I0(1) = %.16f", got)
	}
}

func TestParse(t *testing.T) {
	for _, typ := range Types() {
		got, ok := Parse(typ.String())
		if !ok || got != typ {
			t.Fatalf("Parse(%q) = %v, %v", typ.String(), got, ok)
		}
	}

	if _, ok := Parse("welch"); ok {
		t.Fatal("Parse(welch) succeeded")
	}

	if Type(99).String() != "unknown" {
		t.Fatalf("Type(99).String() = %q", Type(99).String())
	}
}
