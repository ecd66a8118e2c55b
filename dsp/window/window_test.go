package window

import (
	"errors"
	"math"
	"testing"

	gonumwindow "gonum.org/v1/gonum/dsp/window"

	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/internal/testutil"
)

func TestCoefficientsHann(t *testing.T) {
	got, err := Coefficients(TypeHann, 5)
	if err != nil {
		t.Fatalf("Coefficients() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float32{0, 0.5, 1, 0.5, 0}, 1e-6)
}

func TestCoefficientsRectangular(t *testing.T) {
	got, err := Coefficients(TypeRectangular, 6)
	if err != nil {
		t.Fatalf("Coefficients() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, testutil.DC(1, 6), 0)
}

func TestCoefficientsSymmetricAndBounded(t *testing.T) {
	for _, typ := range Types() {
		t.Run(typ.String(), func(t *testing.T) {
			const size = 33
			w, err := Coefficients(typ, size)
			if err != nil {
				t.Fatalf("Coefficients() error = %v", err)
			}
			if len(w) != size {
				t.Fatalf("len = %d, want %d", len(w), size)
			}
			testutil.RequireFinite(t, w)

			for i := range size / 2 {
				if math.Abs(float64(w[i]-w[size-1-i])) > 1e-6 {
					t.Fatalf("w[%d] = %v, w[%d] = %v, want symmetric", i, w[i], size-1-i, w[size-1-i])
				}
			}
			if mid := w[size/2]; math.Abs(float64(mid)-1) > 1e-6 {
				t.Fatalf("center coefficient = %v, want 1", mid)
			}
		})
	}
}

func TestCoefficientsEdgeSizes(t *testing.T) {
	w, err := Coefficients(TypeHann, 1)
	if err != nil || len(w) != 1 || w[0] != 1 {
		t.Fatalf("Coefficients(Hann, 1) = %v, %v, want [1], nil", w, err)
	}

	w, err = Coefficients(TypeHann, 0)
	if err != nil || len(w) != 0 {
		t.Fatalf("Coefficients(Hann, 0) = %v, %v, want [], nil", w, err)
	}
}

func TestUnknownType(t *testing.T) {
	if _, err := Coefficients(Type(99), 8); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("Coefficients() error = %v, want ErrUnknownType", err)
	}
	if _, err := New(Type(-1), 8); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("New() error = %v, want ErrUnknownType", err)
	}
	if _, err := NewComplex(Type(42), 8); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("NewComplex() error = %v, want ErrUnknownType", err)
	}
	if Type(99).String() != "unknown" {
		t.Fatalf("String() = %q, want unknown", Type(99).String())
	}
}

func TestParse(t *testing.T) {
	for _, typ := range Types() {
		got, err := Parse("  " + typ.String() + " ")
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", typ.String(), err)
		}
		if got != typ {
			t.Fatalf("Parse(%q) = %v, want %v", typ.String(), got, typ)
		}
	}

	if got, err := Parse("HANN"); err != nil || got != TypeHann {
		t.Fatalf("Parse(HANN) = %v, %v, want hann", got, err)
	}
	if _, err := Parse("hanning"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("Parse(hanning) error = %v, want ErrUnknownType", err)
	}
}

func TestNodeProcess(t *testing.T) {
	n, err := New(TypeHann, 5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if n.Type() != TypeHann || n.Size() != 5 {
		t.Fatalf("Type(), Size() = %v, %d, want hann, 5", n.Type(), n.Size())
	}

	got := n.Process(frame.Real{2, 2, 2, 2, 2})
	testutil.RequireSliceNearlyEqual(t, got, frame.Real{0, 1, 2, 1, 0}, 1e-6)
}

func TestNodeShortInputKeepsStaleTail(t *testing.T) {
	n, err := New(TypeRectangular, 4)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	n.Process(frame.Real{1, 2, 3, 4})
	got := n.Process(frame.Real{9, 9, 9, 9, 9, 9}[:2])
	testutil.RequireSliceNearlyEqual(t, got, frame.Real{9, 9, 3, 4}, 0)

	got = n.Process(frame.Real{5, 6, 7, 8, 9, 10})
	testutil.RequireSliceNearlyEqual(t, got, frame.Real{5, 6, 7, 8}, 0)
}

func TestComplexNodeProcess(t *testing.T) {
	n, err := NewComplex(TypeHann, 5)
	if err != nil {
		t.Fatalf("NewComplex() error = %v", err)
	}
	if n.Type() != TypeHann || n.Size() != 5 {
		t.Fatalf("Type(), Size() = %v, %d, want hann, 5", n.Type(), n.Size())
	}

	in := frame.Complex{complex(1, 1), complex(2, -2), complex(4, 4), complex(2, -2), complex(1, 1)}
	want := frame.Complex{0, complex(1, -1), complex(4, 4), complex(1, -1), 0}
	testutil.RequireComplexNearlyEqual(t, n.Process(in), want, 1e-6)

	// Truncation to a shorter input keeps the tail from the previous call.
	got := n.Process(frame.Complex{complex(0, 8)})
	want[0] = 0
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-6)
}

func TestPeriodicHann(t *testing.T) {
	got, err := Coefficients(TypeHann, 4, WithPeriodic())
	if err != nil {
		t.Fatalf("Coefficients() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float32{0, 0.5, 1, 0.5}, 1e-6)
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	for _, typ := range Types() {
		if typ == TypeRectangular {
			continue
		}
		t.Run(typ.String(), func(t *testing.T) {
			const size = 16
			sym := Generate(typ, size)
			per := Generate(typ, size, WithPeriodic())
			ext := Generate(typ, size+1)

			if math.Abs(sym[size-1]-per[size-1]) < 1e-9 {
				t.Fatalf("last coefficient equal in both forms: %v", sym[size-1])
			}
			// Periodic of length N is symmetric of length N+1 without its last point.
			for i := range per {
				if math.Abs(per[i]-ext[i]) > 1e-12 {
					t.Fatalf("periodic[%d] = %v, symmetric(N+1)[%d] = %v", i, per[i], i, ext[i])
				}
			}
		})
	}
}

func TestGenerateMatchesGonum(t *testing.T) {
	tests := []struct {
		typ Type
		fn  func([]float64) []float64
	}{
		{TypeHann, gonumwindow.Hann},
		{TypeBlackman, gonumwindow.Blackman},
		{TypeBlackmanHarris, gonumwindow.BlackmanHarris},
		{TypeBlackmanNuttall, gonumwindow.BlackmanNuttall},
		{TypeNuttall, gonumwindow.Nuttall},
		{TypeLanczos, gonumwindow.Lanczos},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			const size = 31
			want := make([]float64, size)
			for i := range want {
				want[i] = 1
			}
			tt.fn(want)

			got := Generate(tt.typ, size)
			for i := range want {
				if math.Abs(got[i]-want[i]) > 1e-9 {
					t.Fatalf("w[%d] = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("Generate(Hann, 0) = %v, want nil", got)
	}
	if got := Generate(Type(99), 8); got != nil {
		t.Fatalf("Generate(99, 8) = %v, want nil", got)
	}
}

func TestShapeParameter(t *testing.T) {
	narrow := Generate(TypeKaiser, 33, WithAlpha(12))
	wide := Generate(TypeKaiser, 33, WithAlpha(2))
	if narrow[4] >= wide[4] {
		t.Fatalf("kaiser beta 12 w[4] = %v, beta 2 w[4] = %v, want narrower window", narrow[4], wide[4])
	}

	flat := Generate(TypeTukey, 9, WithAlpha(0))
	for i, v := range flat {
		if v != 1 {
			t.Fatalf("tukey(0) w[%d] = %v, want 1", i, v)
		}
	}

	if !TypeKaiser.Parametric() || TypeHann.Parametric() {
		t.Fatal("Parametric() wrong for kaiser or hann")
	}
}

func TestInvalidParameter(t *testing.T) {
	tests := []struct {
		typ   Type
		alpha float64
	}{
		{TypeKaiser, -1},
		{TypeTukey, 2},
		{TypeTukey, -0.1},
		{TypeGauss, 0},
		{TypeLanczos, -1},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if _, err := Coefficients(tt.typ, 8, WithAlpha(tt.alpha)); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Coefficients() error = %v, want ErrInvalidParameter", err)
			}
			if _, err := New(tt.typ, 8, WithAlpha(tt.alpha)); !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("New() error = %v, want ErrInvalidParameter", err)
			}
		})
	}

	// Non-parametric windows ignore the parameter.
	if _, err := Coefficients(TypeHann, 8, WithAlpha(-5)); err != nil {
		t.Fatalf("Coefficients(Hann) error = %v", err)
	}
}

func TestAnalyze(t *testing.T) {
	w, err := Coefficients(TypeHann, 1024, WithPeriodic())
	if err != nil {
		t.Fatalf("Coefficients() error = %v", err)
	}

	a, err := Analyze(w)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if math.Abs(a.CoherentGain-0.5) > 1e-6 {
		t.Fatalf("CoherentGain = %v, want 0.5", a.CoherentGain)
	}
	if math.Abs(a.ENBW-1.5) > 1e-5 {
		t.Fatalf("ENBW = %v, want 1.5", a.ENBW)
	}

	rect, _ := Coefficients(TypeRectangular, 16)
	if a, _ := Analyze(rect); a.CoherentGain != 1 || a.ENBW != 1 {
		t.Fatalf("Analyze(rectangular) = %+v, want gain 1, ENBW 1", a)
	}

	if _, err := Analyze(nil); err == nil {
		t.Fatal("expected empty coefficients error")
	}
	if _, err := Analyze([]float32{0, 0, 0}); err == nil {
		t.Fatal("expected zero coherent gain error")
	}
}

func TestPeriodicNode(t *testing.T) {
	n, err := New(TypeHann, 4, WithPeriodic())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	got := n.Process(frame.Real{2, 2, 2, 2})
	testutil.RequireSliceNearlyEqual(t, got, frame.Real{0, 1, 2, 1}, 1e-6)
}
