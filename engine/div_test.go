package engine

import (
	"testing"
)

func TestDiv_RoundingFamilies(t *testing.T) {
	tests := []struct {
		n, d               int64
		cq, cr, fq, fr, tq, tr int64
	}{
		{7, 3, 3, -2, 2, 1, 2, 1},
		{-7, 3, -2, -1, -3, 2, -2, -1},
		{7, -3, -2, 1, -3, -2, -2, 1},
		{-7, -3, 3, 2, 2, -1, 2, -1},
		{6, 3, 2, 0, 2, 0, 2, 0},
		{-27, 8, -3, -3, -4, 5, -3, -3},
		{0, 5, 0, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		n := repFromInt64(t, tt.n)
		d := repFromInt64(t, tt.d)
		var q, r Rep
		Init(&q)
		Init(&r)

		CdivQR(&q, &r, n, d)
		if Int64(&q) != tt.cq || Int64(&r) != tt.cr {
			t.Errorf("cdiv(%d,%d) = %d rem %d, want %d rem %d", tt.n, tt.d, Int64(&q), Int64(&r), tt.cq, tt.cr)
		}
		FdivQR(&q, &r, n, d)
		if Int64(&q) != tt.fq || Int64(&r) != tt.fr {
			t.Errorf("fdiv(%d,%d) = %d rem %d, want %d rem %d", tt.n, tt.d, Int64(&q), Int64(&r), tt.fq, tt.fr)
		}
		TdivQR(&q, &r, n, d)
		if Int64(&q) != tt.tq || Int64(&r) != tt.tr {
			t.Errorf("tdiv(%d,%d) = %d rem %d, want %d rem %d", tt.n, tt.d, Int64(&q), Int64(&r), tt.tq, tt.tr)
		}

		// Quotient-only and remainder-only agree with combined.
		CdivQ(&q, n, d)
		if Int64(&q) != tt.cq {
			t.Errorf("CdivQ(%d,%d) = %d, want %d", tt.n, tt.d, Int64(&q), tt.cq)
		}
		FdivR(&r, n, d)
		if Int64(&r) != tt.fr {
			t.Errorf("FdivR(%d,%d) = %d, want %d", tt.n, tt.d, Int64(&r), tt.fr)
		}
	}
}

// Truncation agrees with floor for non-negative dividends and with
// ceiling for negative ones.
func TestDiv_TruncationParity(t *testing.T) {
	var q1, q2 Rep
	Init(&q1)
	Init(&q2)

	for _, n := range []int64{0, 1, 5, 6, 7, 100, 12345} {
		for _, d := range []int64{1, 2, 3, 7, 8, 97} {
			nr := repFromInt64(t, n)
			dr := repFromInt64(t, d)
			TdivQ(&q1, nr, dr)
			FdivQ(&q2, nr, dr)
			if Cmp(&q1, &q2) != 0 {
				t.Errorf("tdiv(%d,%d)=%d != fdiv=%d for n >= 0", n, d, Int64(&q1), Int64(&q2))
			}
		}
	}
	for _, n := range []int64{-1, -5, -6, -7, -100, -12345} {
		for _, d := range []int64{1, 2, 3, 7, 8, 97} {
			nr := repFromInt64(t, n)
			dr := repFromInt64(t, d)
			TdivQ(&q1, nr, dr)
			CdivQ(&q2, nr, dr)
			if Cmp(&q1, &q2) != 0 {
				t.Errorf("tdiv(%d,%d)=%d != cdiv=%d for n < 0", n, d, Int64(&q1), Int64(&q2))
			}
		}
	}
}

func TestDiv_Uint64Variants(t *testing.T) {
	n := repFromInt64(t, -27)
	var q Rep
	Init(&q)

	if rem := FdivQUint64(&q, n, 8); Int64(&q) != -4 || rem != 5 {
		t.Errorf("FdivQUint64(-27, 8) = %d rem %d, want -4 rem 5", Int64(&q), rem)
	}
	if rem := CdivQUint64(&q, n, 8); Int64(&q) != -3 || rem != 3 {
		t.Errorf("CdivQUint64(-27, 8) = %d rem %d, want -3 rem 3", Int64(&q), rem)
	}
	if rem := TdivQUint64(&q, n, 8); Int64(&q) != -3 || rem != 3 {
		t.Errorf("TdivQUint64(-27, 8) = %d rem %d, want -3 rem 3", Int64(&q), rem)
	}

	var r Rep
	Init(&r)
	if abs := FdivRUint64(&r, n, 8); Int64(&r) != 5 || abs != 5 {
		t.Errorf("FdivRUint64(-27, 8) = %d abs %d, want 5", Int64(&r), abs)
	}
	if abs := TdivRUint64(&r, n, 8); Int64(&r) != -3 || abs != 3 {
		t.Errorf("TdivRUint64(-27, 8) = %d abs %d, want -3 abs 3", Int64(&r), abs)
	}
	if abs := CdivRUint64(&r, n, 8); Int64(&r) != -3 || abs != 3 {
		t.Errorf("CdivRUint64(-27, 8) = %d abs %d, want -3 abs 3", Int64(&r), abs)
	}
}

func TestDiv_2ExpVariants(t *testing.T) {
	n := repFromInt64(t, -27)
	var q Rep
	Init(&q)

	FdivQ2Exp(&q, n, 3) // -27 >> 3, floor
	if Int64(&q) != -4 {
		t.Errorf("FdivQ2Exp(-27, 3) = %d, want -4", Int64(&q))
	}
	CdivQ2Exp(&q, n, 3)
	if Int64(&q) != -3 {
		t.Errorf("CdivQ2Exp(-27, 3) = %d, want -3", Int64(&q))
	}
	TdivQ2Exp(&q, n, 3)
	if Int64(&q) != -3 {
		t.Errorf("TdivQ2Exp(-27, 3) = %d, want -3", Int64(&q))
	}

	var r Rep
	Init(&r)
	FdivR2Exp(&r, n, 3)
	if Int64(&r) != 5 {
		t.Errorf("FdivR2Exp(-27, 3) = %d, want 5", Int64(&r))
	}
	TdivR2Exp(&r, n, 3)
	if Int64(&r) != -3 {
		t.Errorf("TdivR2Exp(-27, 3) = %d, want -3", Int64(&r))
	}
	CdivR2Exp(&r, n, 3)
	if Int64(&r) != -3 {
		t.Errorf("CdivR2Exp(-27, 3) = %d, want -3", Int64(&r))
	}
}

func TestDiv_ModAndExact(t *testing.T) {
	var dst Rep
	Init(&dst)

	Mod(&dst, repFromInt64(t, -27), repFromInt64(t, 8))
	if Int64(&dst) != 5 {
		t.Errorf("Mod(-27, 8) = %d, want 5", Int64(&dst))
	}
	Mod(&dst, repFromInt64(t, -27), repFromInt64(t, -8))
	if Int64(&dst) != 5 {
		t.Errorf("Mod(-27, -8) = %d, want 5 (divisor sign ignored)", Int64(&dst))
	}
	if got := ModUint64(&dst, repFromInt64(t, 100), 7); got != 2 {
		t.Errorf("ModUint64(100, 7) = %d, want 2", got)
	}

	DivExact(&dst, repFromInt64(t, 39*41), repFromInt64(t, 41))
	if Int64(&dst) != 39 {
		t.Errorf("DivExact = %d, want 39", Int64(&dst))
	}

	if !Divisible(repFromInt64(t, 100), repFromInt64(t, 25)) {
		t.Error("100 divisible by 25")
	}
	if Divisible(repFromInt64(t, 100), repFromInt64(t, 7)) {
		t.Error("100 not divisible by 7")
	}
	if !DivisibleUint64(repFromInt64(t, 96), 32) {
		t.Error("96 divisible by 32")
	}
	if !Divisible2Exp(repFromInt64(t, 96), 5) {
		t.Error("96 divisible by 2^5")
	}
	if Divisible2Exp(repFromInt64(t, 96), 6) {
		t.Error("96 not divisible by 2^6")
	}
}
