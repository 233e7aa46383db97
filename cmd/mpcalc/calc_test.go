package main

import (
	"strings"
	"testing"

	"github.com/wippyai/mp-runtime/locale"
)

func newTestSession(t *testing.T) *session {
	t.Helper()
	rt, err := locale.New(locale.Options{Locales: 2})
	if err != nil {
		t.Fatal(err)
	}
	s := newSession(rt)
	t.Cleanup(func() {
		s.close()
		rt.Close()
	})
	return s
}

func mustEval(t *testing.T, s *session, line string) string {
	t.Helper()
	out, err := s.eval(line)
	if err != nil {
		t.Fatalf("eval(%q): %v", line, err)
	}
	return out
}

func TestSession_AssignAndArithmetic(t *testing.T) {
	s := newTestSession(t)

	if out := mustEval(t, s, "a = 1000"); out != "1000" {
		t.Fatalf("assign = %q", out)
	}
	mustEval(t, s, "b = 234")
	if out := mustEval(t, s, "c = a + b"); out != "1234" {
		t.Fatalf("add = %q", out)
	}
	if out := mustEval(t, s, "c = a * b"); out != "234000" {
		t.Fatalf("mul = %q", out)
	}
	if out := mustEval(t, s, "c = b ^ 2"); out != "54756" {
		t.Fatalf("pow = %q", out)
	}

	// Hex literals via base prefix.
	if out := mustEval(t, s, "h = 0xff"); out != "255" {
		t.Fatalf("hex = %q", out)
	}
	if out := mustEval(t, s, "print h 16"); out != "ff" {
		t.Fatalf("print = %q", out)
	}
}

func TestSession_DivisionModes(t *testing.T) {
	s := newTestSession(t)

	mustEval(t, s, "n = -27")
	mustEval(t, s, "d = 8")

	if out := mustEval(t, s, "q = n / d"); out != "-4" {
		t.Fatalf("floor default = %q", out)
	}
	if out := mustEval(t, s, "q = n / d ceil"); out != "-3" {
		t.Fatalf("ceil = %q", out)
	}
	if out := mustEval(t, s, "q = n / d trunc"); out != "-3" {
		t.Fatalf("trunc = %q", out)
	}
	if out := mustEval(t, s, "r = n % d floor"); out != "5" {
		t.Fatalf("floor rem = %q", out)
	}

	if _, err := s.eval("q = n / z"); err == nil {
		t.Fatal("expected unknown-variable error")
	}
	mustEval(t, s, "z = 0")
	if _, err := s.eval("q = n / z"); err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestSession_NamedOps(t *testing.T) {
	s := newTestSession(t)

	if out := mustEval(t, s, "f = fib 100"); out != "354224848179261915075" {
		t.Fatalf("fib = %q", out)
	}
	mustEval(t, s, "a = 48")
	mustEval(t, s, "b = 18")
	if out := mustEval(t, s, "g = gcd a b"); out != "6" {
		t.Fatalf("gcd = %q", out)
	}
	mustEval(t, s, "sq = 1000000")
	if out := mustEval(t, s, "r = sqrt sq"); out != "1000" {
		t.Fatalf("sqrt = %q", out)
	}
	mustEval(t, s, "p = 104")
	if out := mustEval(t, s, "np = nextprime p"); out != "107" {
		t.Fatalf("nextprime = %q", out)
	}
	if out := mustEval(t, s, "prime np"); out != "probably prime" {
		t.Fatalf("prime = %q", out)
	}
}

func TestSession_RandAndPlacement(t *testing.T) {
	s := newTestSession(t)

	mustEval(t, s, "seed 42")
	out := mustEval(t, s, "x = rand 64")
	if out == "" {
		t.Fatal("no random output")
	}

	// Values spread round-robin across both locales.
	mustEval(t, s, "a = 1")
	mustEval(t, s, "b = 2")
	wa := mustEval(t, s, "where a")
	wb := mustEval(t, s, "where b")
	if wa == wb {
		t.Fatalf("a and b both placed at %q", wa)
	}

	vars := mustEval(t, s, "vars")
	if !strings.Contains(vars, "a @") || !strings.Contains(vars, "x @") {
		t.Fatalf("vars = %q", vars)
	}

	mustEval(t, s, "del a")
	if _, err := s.eval("where a"); err == nil {
		t.Fatal("expected error after del")
	}
}
