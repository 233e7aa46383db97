package engine

import (
	"testing"
)

func TestBits_Logic(t *testing.T) {
	var dst Rep
	Init(&dst)

	And(&dst, repFromInt64(t, 0b1100), repFromInt64(t, 0b1010))
	if Int64(&dst) != 0b1000 {
		t.Errorf("and = %b", Int64(&dst))
	}
	Ior(&dst, repFromInt64(t, 0b1100), repFromInt64(t, 0b1010))
	if Int64(&dst) != 0b1110 {
		t.Errorf("ior = %b", Int64(&dst))
	}
	Xor(&dst, repFromInt64(t, 0b1100), repFromInt64(t, 0b1010))
	if Int64(&dst) != 0b0110 {
		t.Errorf("xor = %b", Int64(&dst))
	}
	Com(&dst, repFromInt64(t, 5))
	if Int64(&dst) != -6 {
		t.Errorf("com(5) = %d, want -6", Int64(&dst))
	}

	// Negative operands behave as two's complement.
	And(&dst, repFromInt64(t, -1), repFromInt64(t, 0xff))
	if Int64(&dst) != 0xff {
		t.Errorf("and(-1, 0xff) = %d", Int64(&dst))
	}
}

func TestBits_PopcountHamdist(t *testing.T) {
	if got := Popcount(repFromInt64(t, 0b101101)); got != 4 {
		t.Errorf("popcount = %d, want 4", got)
	}
	if got := Popcount(repFromInt64(t, 0)); got != 0 {
		t.Errorf("popcount(0) = %d", got)
	}
	if got := Popcount(repFromInt64(t, -1)); got != NoBit {
		t.Errorf("popcount(-1) = %d, want NoBit", got)
	}

	if got := Hamdist(repFromInt64(t, 0b1100), repFromInt64(t, 0b1010)); got != 2 {
		t.Errorf("hamdist = %d, want 2", got)
	}
	if got := Hamdist(repFromInt64(t, -5), repFromInt64(t, -6)); got != 1 {
		t.Errorf("hamdist(-5, -6) = %d, want 1", got)
	}
	if got := Hamdist(repFromInt64(t, 5), repFromInt64(t, -5)); got != NoBit {
		t.Errorf("hamdist with mixed signs = %d, want NoBit", got)
	}
}

func TestBits_Scan(t *testing.T) {
	x := repFromInt64(t, 0b10100000)

	if got := Scan1(x, 0); got != 5 {
		t.Errorf("scan1 from 0 = %d, want 5", got)
	}
	if got := Scan1(x, 6); got != 7 {
		t.Errorf("scan1 from 6 = %d, want 7", got)
	}
	if got := Scan1(x, 8); got != NoBit {
		t.Errorf("scan1 past top = %d, want NoBit", got)
	}

	if got := Scan0(x, 5); got != 6 {
		t.Errorf("scan0 from 5 = %d, want 6", got)
	}
	if got := Scan0(x, 8); got != 8 {
		t.Errorf("scan0 above top of non-negative = %d, want 8", got)
	}

	// Negative values: ones extend upward forever, zeros do not.
	neg := repFromInt64(t, -2) // ...11110
	if got := Scan1(neg, 5); got != 5 {
		t.Errorf("scan1(-2, 5) = %d, want 5", got)
	}
	if got := Scan0(neg, 1); got != NoBit {
		t.Errorf("scan0(-2, 1) = %d, want NoBit", got)
	}
	if got := Scan0(neg, 0); got != 0 {
		t.Errorf("scan0(-2, 0) = %d, want 0", got)
	}
}

func TestBits_SetClrComTst(t *testing.T) {
	var dst Rep
	Init(&dst)
	x := repFromInt64(t, 0b1000)

	SetBit(&dst, x, 1)
	if Int64(&dst) != 0b1010 {
		t.Errorf("setbit = %b", Int64(&dst))
	}
	ClrBit(&dst, &dst, 3)
	if Int64(&dst) != 0b0010 {
		t.Errorf("clrbit = %b", Int64(&dst))
	}
	ComBit(&dst, &dst, 0)
	if Int64(&dst) != 0b0011 {
		t.Errorf("combit = %b", Int64(&dst))
	}
	ComBit(&dst, &dst, 0)
	if Int64(&dst) != 0b0010 {
		t.Errorf("combit twice = %b", Int64(&dst))
	}
	if TstBit(&dst, 1) != 1 || TstBit(&dst, 0) != 0 {
		t.Error("tstbit wrong")
	}
	if TstBit(repFromInt64(t, -1), 63) != 1 {
		t.Error("tstbit of negative must see the ones prefix")
	}
}

func TestBits_Shifts(t *testing.T) {
	var dst Rep
	Init(&dst)

	Mul2Exp(&dst, repFromInt64(t, 3), 10)
	if Int64(&dst) != 3072 {
		t.Errorf("3 << 10 = %d", Int64(&dst))
	}
}
