package locale

import (
	"errors"
	"sync"
	"testing"

	mperrors "github.com/wippyai/mp-runtime/errors"
)

func TestRuntime_OnRunsOnNamedDomain(t *testing.T) {
	rt, err := New(Options{Locales: 3})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	if rt.NumLocales() != 3 {
		t.Fatalf("NumLocales = %d", rt.NumLocales())
	}

	for id := ID(0); id < 3; id++ {
		var got ID = -1
		err := rt.On(id, func(d *Domain) error {
			got = d.ID()
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		if got != id {
			t.Fatalf("block ran on locale %d, want %d", got, id)
		}
	}
}

func TestRuntime_OnIsBlocking(t *testing.T) {
	rt, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	// Sequential effects on the same domain observe each other.
	counter := 0
	for i := 0; i < 10; i++ {
		rt.On(0, func(d *Domain) error {
			counter++
			return nil
		})
	}
	if counter != 10 {
		t.Fatalf("counter = %d, want 10 (On must block until done)", counter)
	}
}

func TestRuntime_OnPropagatesError(t *testing.T) {
	rt, err := New(Options{Locales: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	want := errors.New("boom")
	if got := rt.On(1, func(d *Domain) error { return want }); !errors.Is(got, want) {
		t.Fatalf("On error = %v", got)
	}
}

func TestRuntime_OnRecoversPanic(t *testing.T) {
	rt, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	got := rt.On(0, func(d *Domain) error {
		panic("blown invariant")
	})
	if got == nil {
		t.Fatal("expected error from panicking block")
	}
	var e *mperrors.Error
	if !errors.As(got, &e) || e.Kind != mperrors.KindContract {
		t.Fatalf("panic surfaced as %v", got)
	}
}

func TestRuntime_NestedOn(t *testing.T) {
	rt, err := New(Options{Locales: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	var inner ID = -1
	err = rt.On(0, func(d *Domain) error {
		return rt.On(1, func(d2 *Domain) error {
			inner = d2.ID()
			return nil
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if inner != 1 {
		t.Fatalf("nested block ran on %d", inner)
	}
}

func TestRuntime_FaultOnBadLocale(t *testing.T) {
	rt, err := New(Options{Locales: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	var faulted *mperrors.Error
	restore := SetFaultHandler(func(e *mperrors.Error) { faulted = e })
	defer restore()

	rt.On(7, func(d *Domain) error { return nil })
	if faulted == nil || faulted.Kind != mperrors.KindFault {
		t.Fatalf("expected fault for unknown locale, got %v", faulted)
	}
}

func TestRuntime_CloseIdempotentAndParallelOn(t *testing.T) {
	rt, err := New(Options{Locales: 4})
	if err != nil {
		t.Fatal(err)
	}

	// Independent locales make progress concurrently.
	var wg sync.WaitGroup
	for id := ID(0); id < 4; id++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				rt.On(id, func(d *Domain) error { return nil })
			}
		}()
	}
	wg.Wait()

	if err := rt.Close(); err != nil {
		t.Fatal(err)
	}
	if err := rt.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRuntime_DomainStore(t *testing.T) {
	rt, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer rt.Close()

	rt.On(0, func(d *Domain) error {
		h, err := d.Store().Create(1, "payload")
		if err != nil {
			return err
		}
		if v, ok := d.Store().Get(h); !ok || v != "payload" {
			t.Error("store lost payload")
		}
		return nil
	})
}
