package gaussian_test

import (
	"errors"
	"testing"

	"github.com/gint-lang/gint-lang/internal/gaussian"
)

func TestArithmetic(t *testing.T) {
	z := gaussian.New(1, 2)
	w := gaussian.New(1, -2)

	if got, want := z.Mul(w), gaussian.New(5, 0); got != want {
		t.Errorf("Mul: got %s, want %s", got, want)
	}
	if got, want := z.Add(w), gaussian.New(2, 0); got != want {
		t.Errorf("Add: got %s, want %s", got, want)
	}
	if got, want := z.Sub(w), gaussian.New(0, 4); got != want {
		t.Errorf("Sub: got %s, want %s", got, want)
	}
	if got, want := z.Neg(), gaussian.New(-1, -2); got != want {
		t.Errorf("Neg: got %s, want %s", got, want)
	}
	if got, want := z.Conj(), gaussian.New(1, -2); got != want {
		t.Errorf("Conj: got %s, want %s", got, want)
	}
	if got, want := gaussian.New(3, 4).Norm(), int64(25); got != want {
		t.Errorf("Norm: got %d, want %d", got, want)
	}
}

func TestQuoRoundsToNearest(t *testing.T) {
	cases := []struct {
		z, w, q gaussian.Int
	}{
		{gaussian.New(6, 0), gaussian.New(2, 0), gaussian.New(3, 0)},
		// 7/2 = 3.5 rounds away from zero.
		{gaussian.New(7, 0), gaussian.New(2, 0), gaussian.New(4, 0)},
		{gaussian.New(-7, 0), gaussian.New(2, 0), gaussian.New(-4, 0)},
		// (4+3i)/(2i) = 1.5 - 2i, real part rounds to 2.
		{gaussian.New(4, 3), gaussian.New(0, 2), gaussian.New(2, -2)},
		{gaussian.New(1, 1), gaussian.New(1, 1), gaussian.New(1, 0)},
	}

	for _, tc := range cases {
		q, err := tc.z.Quo(tc.w)
		if err != nil {
			t.Errorf("%s / %s: unexpected error %v", tc.z, tc.w, err)
			continue
		}
		if q != tc.q {
			t.Errorf("%s / %s: got %s, want %s", tc.z, tc.w, q, tc.q)
		}
	}
}

func TestRemBoundedByDivisor(t *testing.T) {
	cases := []struct {
		z, w gaussian.Int
	}{
		{gaussian.New(7, 0), gaussian.New(2, 0)},
		{gaussian.New(4, 3), gaussian.New(0, 2)},
		{gaussian.New(-9, 5), gaussian.New(3, -1)},
		{gaussian.New(123, -456), gaussian.New(7, 11)},
	}

	for _, tc := range cases {
		q, err := tc.z.Quo(tc.w)
		if err != nil {
			t.Fatalf("%s / %s: %v", tc.z, tc.w, err)
		}
		r, err := tc.z.Rem(tc.w)
		if err != nil {
			t.Fatalf("%s %% %s: %v", tc.z, tc.w, err)
		}

		// Division identity.
		if got := q.Mul(tc.w).Add(r); got != tc.z {
			t.Errorf("%s: q*w + r = %s", tc.z, got)
		}
		// Rounded division keeps the remainder small.
		if 2*r.Norm() > tc.w.Norm() {
			t.Errorf("%s %% %s = %s: norm %d exceeds half of %d",
				tc.z, tc.w, r, r.Norm(), tc.w.Norm())
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	z := gaussian.New(1, 1)

	if _, err := z.Quo(gaussian.Int{}); !errors.Is(err, gaussian.ErrDivisionByZero) {
		t.Errorf("Quo: got %v, want ErrDivisionByZero", err)
	}
	if _, err := z.Rem(gaussian.Int{}); !errors.Is(err, gaussian.ErrDivisionByZero) {
		t.Errorf("Rem: got %v, want ErrDivisionByZero", err)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		z    gaussian.Int
		want string
	}{
		{gaussian.New(0, 0), "0"},
		{gaussian.New(3, 0), "3"},
		{gaussian.New(-3, 0), "-3"},
		{gaussian.New(0, 1), "i"},
		{gaussian.New(0, -1), "-i"},
		{gaussian.New(0, 5), "5i"},
		{gaussian.New(0, -2), "-2i"},
		{gaussian.New(3, 4), "3+4i"},
		{gaussian.New(3, -4), "3-4i"},
		{gaussian.New(3, 1), "3+i"},
		{gaussian.New(-2, -1), "-2-i"},
	}

	for _, tc := range cases {
		if got := tc.z.String(); got != tc.want {
			t.Errorf("String(%d,%d): got %q, want %q", tc.z.Re, tc.z.Im, got, tc.want)
		}
	}
}
