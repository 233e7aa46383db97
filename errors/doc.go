// Package errors provides structured error types for the runtime.
//
// Every error carries a Phase (where in processing it occurred) and a
// Kind (what went wrong), so callers can match on the combination:
//
//	v := mpint.NewZero(rt, 0)
//	if err := v.SetString("12z", 10); err != nil {
//	    var e *errors.Error
//	    if stderrors.As(err, &e) && e.Kind == errors.KindFormat {
//	        // malformed input, value left unconstructed
//	    }
//	}
//
// # Error Taxonomy
//
// Three families cover the runtime:
//
//	format   - malformed text during construction from a string;
//	           recoverable, returned to the immediate caller
//	fault    - a locale became unreachable during a fetch; terminal,
//	           the runtime aborts the process
//	contract - a caller precondition was violated (scalar does not fit
//	           the engine's parameter width); checked only where cheap
//
// Errors match with errors.Is when Phase and Kind agree, regardless of
// detail text.
package errors
