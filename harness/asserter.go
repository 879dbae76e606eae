package harness

import (
	"bytes"
	"fmt"
	"reflect"
)

// Asserter is one of the two assertion families of a Session. The Check
// family records failures and keeps going; the Require family records them
// and then terminates the process. Every operation counts one assertion per
// invocation and reports success as its return value, so test code can branch
// on the outcome. Failures never propagate as errors or panics.
type Asserter struct {
	s              *Session
	abortOnFailure bool
}

// That evaluates a plain predicate. On failure the accumulated diagnostic
// info and the call context are printed.
func (a *Asserter) That(ok bool) bool {
	return a.predicate(ok, newStack(1))
}

// Unreachable marks a code path that must never execute; reaching it is
// always a failed assertion.
func (a *Asserter) Unreachable() bool {
	return a.predicate(false, newStack(1))
}

func (a *Asserter) predicate(ok bool, stk callStack) bool {
	s := a.s
	s.counters.Assertions++
	if !ok {
		fmt.Fprintln(s.out, "Check failed, received false")
		return a.failed(stk)
	}
	s.info.clear(false)
	return true
}

// Equal asserts that two scalar values are equal. Comparing slices or arrays
// with it is a usage error: it is reported, steers the caller to EqualLists,
// and counts neither as an assertion nor against the current test.
func (a *Asserter) Equal(actual, expected interface{}) bool {
	s := a.s
	if isSequence(expected) {
		fmt.Fprintln(s.out, "Equal should not be used for lists. Use EqualLists instead")
		if a.abortOnFailure {
			s.abort()
		}
		return false
	}
	stk := newStack(1)
	s.counters.Assertions++
	if !valuesEqual(actual, expected) {
		fmt.Fprintf(s.out, "Result was: %v\nBut we expected: %v\n", actual, expected)
		return a.failed(stk)
	}
	s.info.clear(false)
	return true
}

// EqualLists asserts that two sequences hold equal elements in the same
// order. Unlike multiset comparison, ordering is significant: a length
// mismatch and every unequal index are each reported, and on any failure
// both full sequences are printed for diagnosis.
func (a *Asserter) EqualLists(actual, expected interface{}) bool {
	stk := newStack(1)
	s := a.s
	s.counters.Assertions++

	failed := false
	if !isSequence(actual) || !isSequence(expected) {
		fmt.Fprintf(s.out, "EqualLists requires slices or arrays, got %T and %T\n", actual, expected)
		failed = true
	} else {
		av := reflect.ValueOf(actual)
		ev := reflect.ValueOf(expected)
		if av.Len() != ev.Len() {
			fmt.Fprintln(s.out, "Check equal lists failed due to lists of different sizes:")
			fmt.Fprintf(s.out, "The resulted list has %d elements, but the expected list has %d elements\n",
				av.Len(), ev.Len())
			failed = true
		}
		n := av.Len()
		if ev.Len() < n {
			n = ev.Len()
		}
		for i := 0; i < n; i++ {
			if !valuesEqual(av.Index(i).Interface(), ev.Index(i).Interface()) {
				fmt.Fprintln(s.out, "Check equal lists failed due to unequal elements:")
				fmt.Fprintf(s.out, "The element of index %d in both lists was not equal\n", i)
				failed = true
			}
		}
	}
	if failed {
		fmt.Fprintf(s.out, "Result list: %v\n", actual)
		fmt.Fprintf(s.out, "Expected list: %v\n", expected)
		return a.failed(stk)
	}
	s.info.clear(false)
	return true
}

// Exception asserts that a caught error has exactly the dynamic type of want,
// not a type that merely wraps or extends it, and, when wantMessage is
// non-empty, that its message matches exactly. Both sub-conditions are
// evaluated and reported before the composite verdict is decided.
func (a *Asserter) Exception(err error, want error, wantMessage string) bool {
	stk := newStack(1)
	s := a.s
	s.counters.Assertions++

	failed := false
	if reflect.TypeOf(err) != reflect.TypeOf(want) {
		fmt.Fprintf(s.out, "Raised exception was of type %T and not of type %T as expected\n", err, want)
		failed = true
	}
	if wantMessage != "" {
		got := "<nil>"
		if err != nil {
			got = err.Error()
		}
		if got != wantMessage {
			fmt.Fprintf(s.out, "Exception had message: %s\nBut we expected: %s\n", got, wantMessage)
			failed = true
		}
	}
	if failed {
		return a.failed(stk)
	}
	s.info.clear(false)
	return true
}

func (a *Asserter) failed(stk callStack) bool {
	a.s.recordFailedAssertion(stk)
	if a.abortOnFailure {
		a.s.abort()
	}
	return false
}

// UnexpectedException records a failed assertion from an error-handling path
// that should never have been entered. It prints the error's own trace via
// the %+v verb rather than the call context of this function, and it never
// aborts.
func (s *Session) UnexpectedException(err error) {
	s.counters.Assertions++
	fmt.Fprintf(s.out, "Unexpected exception: %+v\n", err)
	s.counters.FailedAssertions++
	s.currentTestFailed = true
	s.printInfo()
}

func isSequence(v interface{}) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// valuesEqual follows the usual exact-comparison rules: byte slices compare
// by content, everything else by reflect.DeepEqual, so values of different
// concrete types are never equal.
func valuesEqual(a, b interface{}) bool {
	ab, aok := a.([]byte)
	bb, bok := b.([]byte)
	if aok && bok {
		return bytes.Equal(ab, bb)
	}
	return reflect.DeepEqual(a, b)
}
