package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wippyai/mp-runtime/locale"
	"github.com/wippyai/mp-runtime/mpint"
	"github.com/wippyai/mp-runtime/mprand"
)

// session is one calculator instance: named values spread round-robin
// across the runtime's locales, plus a single random stream.
type session struct {
	rt   *locale.Runtime
	vars map[string]*mpint.Int
	rng  *mprand.State
	next int
}

func newSession(rt *locale.Runtime) *session {
	return &session{
		rt:   rt,
		vars: make(map[string]*mpint.Int),
		rng:  mprand.New(rt, 0),
	}
}

func (s *session) close() {
	for _, v := range s.vars {
		v.Destroy()
	}
	s.rng.Destroy()
}

// place picks the home locale for the next new value.
func (s *session) place() locale.ID {
	id := locale.ID(s.next % s.rt.NumLocales())
	s.next++
	return id
}

func (s *session) lookup(name string) (*mpint.Int, error) {
	v, ok := s.vars[name]
	if !ok {
		return nil, fmt.Errorf("unknown variable %q", name)
	}
	return v, nil
}

// target returns the named destination, creating it on the next locale
// when it does not exist yet.
func (s *session) target(name string) *mpint.Int {
	if v, ok := s.vars[name]; ok {
		return v
	}
	v := mpint.NewZero(s.rt, s.place())
	s.vars[name] = v
	return v
}

func parseMode(word string) (mpint.Rounding, error) {
	switch word {
	case "ceil", "ceiling":
		return mpint.RoundCeiling, nil
	case "floor", "":
		return mpint.RoundFloor, nil
	case "trunc", "zero":
		return mpint.RoundZero, nil
	}
	return 0, fmt.Errorf("unknown rounding mode %q (ceil, floor, trunc)", word)
}

// eval executes one command line and returns its printable result.
func (s *session) eval(line string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return "", nil
	}

	// name = ... forms
	if len(fields) >= 3 && fields[1] == "=" {
		return s.evalAssign(fields[0], fields[2:])
	}

	switch fields[0] {
	case "help":
		return helpText, nil

	case "vars":
		if len(s.vars) == 0 {
			return "no variables", nil
		}
		names := make([]string, 0, len(s.vars))
		for n := range s.vars {
			names = append(names, n)
		}
		sort.Strings(names)
		var b strings.Builder
		for _, n := range names {
			v := s.vars[n]
			fmt.Fprintf(&b, "%s @%d = %s\n", n, v.Affinity(), v)
		}
		return strings.TrimRight(b.String(), "\n"), nil

	case "print":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: print <var> [base]")
		}
		v, err := s.lookup(fields[1])
		if err != nil {
			return "", err
		}
		base := 10
		if len(fields) > 2 {
			base, err = strconv.Atoi(fields[2])
			if err != nil || base < 2 || base > 62 {
				return "", fmt.Errorf("base must be 2..62")
			}
		}
		return v.Text(base), nil

	case "where":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: where <var>")
		}
		v, err := s.lookup(fields[1])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("locale %d", v.Affinity()), nil

	case "cmp":
		if len(fields) < 3 {
			return "", fmt.Errorf("usage: cmp <a> <b>")
		}
		a, err := s.lookup(fields[1])
		if err != nil {
			return "", err
		}
		b, err := s.lookup(fields[2])
		if err != nil {
			return "", err
		}
		switch mpint.Cmp(a, b) {
		case -1:
			return fmt.Sprintf("%s < %s", fields[1], fields[2]), nil
		case 1:
			return fmt.Sprintf("%s > %s", fields[1], fields[2]), nil
		}
		return fmt.Sprintf("%s == %s", fields[1], fields[2]), nil

	case "prime":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: prime <var>")
		}
		v, err := s.lookup(fields[1])
		if err != nil {
			return "", err
		}
		if v.ProbablyPrime(25) {
			return "probably prime", nil
		}
		return "composite", nil

	case "seed":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: seed <n>")
		}
		n, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return "", fmt.Errorf("bad seed %q", fields[1])
		}
		s.rng.SeedUint64(n)
		return "ok", nil

	case "del":
		if len(fields) < 2 {
			return "", fmt.Errorf("usage: del <var>")
		}
		v, err := s.lookup(fields[1])
		if err != nil {
			return "", err
		}
		v.Destroy()
		delete(s.vars, fields[1])
		return "ok", nil

	case "locales":
		return fmt.Sprintf("%d", s.rt.NumLocales()), nil
	}

	return "", fmt.Errorf("unknown command %q (try help)", fields[0])
}

// evalAssign handles "name = ..." forms.
func (s *session) evalAssign(name string, rhs []string) (string, error) {
	// name = <op> args...
	if res, handled, err := s.evalNamedOp(name, rhs); handled {
		return res, err
	}

	// name = <a> <binop> <b> [mode]
	if len(rhs) >= 3 {
		return s.evalBinary(name, rhs)
	}

	// name = literal
	if len(rhs) == 1 {
		if v, ok := s.vars[rhs[0]]; ok {
			z := s.target(name)
			z.Set(v)
			return z.String(), nil
		}
		z, err := mpint.NewString(s.rt, s.place(), rhs[0], 0)
		if err != nil {
			return "", err
		}
		if old, ok := s.vars[name]; ok {
			old.Set(z)
			z.Destroy()
			return old.String(), nil
		}
		s.vars[name] = z
		return z.String(), nil
	}

	return "", fmt.Errorf("cannot parse assignment (try help)")
}

func (s *session) evalNamedOp(name string, rhs []string) (string, bool, error) {
	fail := func(err error) (string, bool, error) { return "", true, err }
	done := func(z *mpint.Int) (string, bool, error) { return z.String(), true, nil }

	scalar := func(word string) (uint64, error) {
		n, err := strconv.ParseUint(word, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("expected number, got %q", word)
		}
		return n, nil
	}

	switch rhs[0] {
	case "fac":
		if len(rhs) < 2 {
			return fail(fmt.Errorf("usage: x = fac <n>"))
		}
		n, err := scalar(rhs[1])
		if err != nil {
			return fail(err)
		}
		return done(s.target(name).Fac(n))

	case "fib":
		if len(rhs) < 2 {
			return fail(fmt.Errorf("usage: x = fib <n>"))
		}
		n, err := scalar(rhs[1])
		if err != nil {
			return fail(err)
		}
		return done(s.target(name).Fib(n))

	case "lucas":
		if len(rhs) < 2 {
			return fail(fmt.Errorf("usage: x = lucas <n>"))
		}
		n, err := scalar(rhs[1])
		if err != nil {
			return fail(err)
		}
		return done(s.target(name).LucNum(n))

	case "bin":
		if len(rhs) < 3 {
			return fail(fmt.Errorf("usage: x = bin <n> <k>"))
		}
		n, err := scalar(rhs[1])
		if err != nil {
			return fail(err)
		}
		k, err := scalar(rhs[2])
		if err != nil {
			return fail(err)
		}
		return done(s.target(name).Bin(n, k))

	case "gcd", "lcm":
		if len(rhs) < 3 {
			return fail(fmt.Errorf("usage: x = %s <a> <b>", rhs[0]))
		}
		a, err := s.lookup(rhs[1])
		if err != nil {
			return fail(err)
		}
		b, err := s.lookup(rhs[2])
		if err != nil {
			return fail(err)
		}
		z := s.target(name)
		if rhs[0] == "gcd" {
			z.Gcd(a, b)
		} else {
			z.Lcm(a, b)
		}
		return done(z)

	case "powm":
		if len(rhs) < 4 {
			return fail(fmt.Errorf("usage: x = powm <b> <e> <m>"))
		}
		b, err := s.lookup(rhs[1])
		if err != nil {
			return fail(err)
		}
		e, err := s.lookup(rhs[2])
		if err != nil {
			return fail(err)
		}
		m, err := s.lookup(rhs[3])
		if err != nil {
			return fail(err)
		}
		return done(s.target(name).PowM(b, e, m))

	case "sqrt":
		if len(rhs) < 2 {
			return fail(fmt.Errorf("usage: x = sqrt <a>"))
		}
		a, err := s.lookup(rhs[1])
		if err != nil {
			return fail(err)
		}
		if a.Sign() < 0 {
			return fail(fmt.Errorf("sqrt of negative value"))
		}
		return done(s.target(name).Sqrt(a))

	case "root":
		if len(rhs) < 3 {
			return fail(fmt.Errorf("usage: x = root <a> <n>"))
		}
		a, err := s.lookup(rhs[1])
		if err != nil {
			return fail(err)
		}
		n, err := scalar(rhs[2])
		if err != nil {
			return fail(err)
		}
		if n == 0 {
			return fail(fmt.Errorf("zeroth root"))
		}
		if a.Sign() < 0 && n%2 == 0 {
			return fail(fmt.Errorf("even root of negative value"))
		}
		return done(s.target(name).Root(a, uint(n)))

	case "nextprime":
		if len(rhs) < 2 {
			return fail(fmt.Errorf("usage: x = nextprime <a>"))
		}
		a, err := s.lookup(rhs[1])
		if err != nil {
			return fail(err)
		}
		return done(s.target(name).NextPrime(a))

	case "rand":
		if len(rhs) < 2 {
			return fail(fmt.Errorf("usage: x = rand <bits>"))
		}
		bits, err := scalar(rhs[1])
		if err != nil {
			return fail(err)
		}
		z := s.target(name)
		s.rng.Urandomb(z, uint(bits))
		return done(z)

	case "randm":
		if len(rhs) < 2 {
			return fail(fmt.Errorf("usage: x = randm <bound>"))
		}
		bound, err := s.lookup(rhs[1])
		if err != nil {
			return fail(err)
		}
		if bound.Sign() <= 0 {
			return fail(fmt.Errorf("bound must be positive"))
		}
		z := s.target(name)
		s.rng.Urandomm(z, bound)
		return done(z)
	}

	return "", false, nil
}

func (s *session) evalBinary(name string, rhs []string) (string, error) {
	a, err := s.lookup(rhs[0])
	if err != nil {
		return "", err
	}

	op := rhs[1]

	// x = a ^ <n> takes a scalar exponent.
	if op == "^" {
		e, err := strconv.ParseUint(rhs[2], 10, 64)
		if err != nil {
			return "", fmt.Errorf("exponent must be a number")
		}
		z := s.target(name)
		z.Pow(a, e)
		return z.String(), nil
	}

	b, err := s.lookup(rhs[2])
	if err != nil {
		return "", err
	}

	modeWord := ""
	if len(rhs) > 3 {
		modeWord = rhs[3]
	}

	z := s.target(name)
	switch op {
	case "+":
		z.Add(a, b)
	case "-":
		z.Sub(a, b)
	case "*":
		z.Mul(a, b)
	case "/":
		if b.Sign() == 0 {
			return "", fmt.Errorf("division by zero")
		}
		mode, err := parseMode(modeWord)
		if err != nil {
			return "", err
		}
		z.DivQ(a, b, mode)
	case "%":
		if b.Sign() == 0 {
			return "", fmt.Errorf("division by zero")
		}
		mode, err := parseMode(modeWord)
		if err != nil {
			return "", err
		}
		z.DivR(a, b, mode)
	case "&":
		z.And(a, b)
	case "|":
		z.Ior(a, b)
	default:
		return "", fmt.Errorf("unknown operator %q", op)
	}
	return z.String(), nil
}

const helpText = `commands:
  x = 123456           assign a literal (0x.., 0b.., 0o.. prefixes work)
  x = y                copy a variable
  x = a + b            also - * & |
  x = a / b [mode]     quotient; mode: ceil, floor (default), trunc
  x = a % b [mode]     remainder under the same mode
  x = a ^ n            power with scalar exponent
  x = gcd a b          also lcm, powm b e m
  x = fac n            also fib n, lucas n, bin n k
  x = sqrt a           also root a n, nextprime a
  x = rand bits        uniform in [0, 2^bits); randm bound for [0, bound)
  print x [base]       print in base 2..62
  cmp a b              compare two variables
  prime x              probabilistic primality check
  where x              show a variable's home locale
  vars                 list variables with locales and values
  seed n               reseed the random stream
  del x                destroy a variable
  locales              number of locales
  help                 this text`
