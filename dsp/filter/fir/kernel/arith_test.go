package kernel

import (
	"testing"

	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

func TestQ15ArithSaturates(t *testing.T) {
	var m Q15Arith

	acc := m.MulAcc(0, sample.MaxQ15, sample.MaxQ15)
	acc = m.MulAcc(acc, sample.MaxQ15, sample.MaxQ15)

	if got := m.Narrow(acc); got != sample.MaxQ15 {
		t.Fatalf("Narrow(overflow) = %d, want %d", got, sample.MaxQ15)
	}

	acc = m.MulAcc(0, sample.MinQ15, sample.MaxQ15)
	acc = m.MulAcc(acc, sample.MinQ15, sample.MaxQ15)

	if got := m.Narrow(acc); got != sample.MinQ15 {
		t.Fatalf("Narrow(underflow) = %d, want %d", got, sample.MinQ15)
	}
}

func TestQ15ArithShiftFloors(t *testing.T) {
	var m Q15Arith

	// 0.25 * (32767/32768) = 8191.75 in Q15, floored by the shift.
	if got := m.Narrow(m.MulAcc(0, sample.MaxQ15, 8192)); got != 8191 {
		t.Fatalf("Narrow = %d, want 8191", got)
	}

	// Negative products floor towards minus infinity.
	if got := m.Narrow(m.MulAcc(0, -1, 1)); got != -1 {
		t.Fatalf("Narrow(-1*1) = %d, want -1", got)
	}
}

func TestQ31ArithTruncates(t *testing.T) {
	var m Q31Arith

	half := sample.Q31FromFloat(0.5)
	quarter := sample.Q31FromFloat(0.25)

	if got := m.Narrow(m.MulAcc(0, half, quarter)); got != sample.Q31FromFloat(0.125) {
		t.Fatalf("0.5*0.25 = %d, want %d", got, sample.Q31FromFloat(0.125))
	}

	// Two full-scale products overflow the 1.31 range and wrap.
	acc := m.MulAcc(0, sample.MinQ31, sample.MinQ31)
	if got := m.Narrow(acc); got != sample.MinQ31 {
		t.Fatalf("(-1)*(-1) = %d, want wrap to %d", got, sample.MinQ31)
	}
}

func TestF32Arith(t *testing.T) {
	var m F32Arith

	acc := m.MulAcc(0, 0.5, 0.5)
	acc = m.MulAcc(acc, 1, 0.25)

	if got := m.Narrow(acc); got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
}
