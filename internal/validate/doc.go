// Package validate adapts caller-supplied selection checks to a single
// pass/fail contract.
//
// A check returns a Verdict, decided once when it is called:
//
//	validate.Pass()                       // accepted, clears any error
//	validate.Fail()                       // rejected with "Invalid input"
//	validate.FailWith("pick at least 2")  // rejected with a message
//
// Checks written as plain Go predicates are adapted with FromBool and
// FromError. Validator wraps a check for a prompt session and refuses a nil
// check before the prompt starts.
package validate
