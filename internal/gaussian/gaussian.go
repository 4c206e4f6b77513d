package gaussian

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDivisionByZero is reported by Quo and Rem for a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// Int is a Gaussian integer: a complex number whose real and imaginary
// parts are both signed 64-bit integers. The zero value is 0.
type Int struct {
	Re int64
	Im int64
}

// New constructs the Gaussian integer re + im*i.
func New(re, im int64) Int {
	return Int{Re: re, Im: im}
}

// Add returns z + w.
func (z Int) Add(w Int) Int {
	return Int{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z - w.
func (z Int) Sub(w Int) Int {
	return Int{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns z * w.
func (z Int) Mul(w Int) Int {
	return Int{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Neg returns -z.
func (z Int) Neg() Int {
	return Int{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate of z.
func (z Int) Conj() Int {
	return Int{Re: z.Re, Im: -z.Im}
}

// Norm returns z multiplied by its conjugate: Re² + Im². The norm is
// always a non-negative ordinary integer.
func (z Int) Norm() int64 {
	return z.Re*z.Re + z.Im*z.Im
}

// IsZero reports whether z is 0.
func (z Int) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// Equal reports whether z and w are the same Gaussian integer.
func (z Int) Equal(w Int) bool {
	return z == w
}

// Quo returns the Gaussian-integer quotient z / w: the lattice point
// nearest the exact complex quotient, with ties rounded away from zero
// in each component. This choice keeps the remainder's norm at most
// half the divisor's norm.
func (z Int) Quo(w Int) (Int, error) {
	if w.IsZero() {
		return Int{}, ErrDivisionByZero
	}
	n := w.Norm()
	num := z.Mul(w.Conj())
	return Int{
		Re: roundDiv(num.Re, n),
		Im: roundDiv(num.Im, n),
	}, nil
}

// Rem returns the remainder z - (z/w)*w under the rounded division
// implemented by Quo.
func (z Int) Rem(w Int) (Int, error) {
	q, err := z.Quo(w)
	if err != nil {
		return Int{}, err
	}
	return z.Sub(q.Mul(w)), nil
}

// roundDiv divides a by b (b > 0), rounding to the nearest integer with
// ties away from zero.
func roundDiv(a, b int64) int64 {
	if a >= 0 {
		return (2*a + b) / (2 * b)
	}
	return -((2*(-a) + b) / (2 * b))
}

// String renders z in the source syntax of the language where possible:
// "0", "3", "i", "-i", "5i", "3+4i", "3-4i".
func (z Int) String() string {
	switch {
	case z.Im == 0:
		return strconv.FormatInt(z.Re, 10)
	case z.Re == 0:
		return formatImag(z.Im)
	case z.Im < 0:
		return fmt.Sprintf("%d%s", z.Re, formatImag(z.Im))
	default:
		return fmt.Sprintf("%d+%s", z.Re, formatImag(z.Im))
	}
}

func formatImag(im int64) string {
	switch im {
	case 1:
		return "i"
	case -1:
		return "-i"
	}
	return strconv.FormatInt(im, 10) + "i"
}
