// Package selection holds the state machine of a checkbox prompt.
//
// State is the session state: the fixed choice list, the cursor, the
// selected values in toggle order, and the validation and answer flags.
// Controller is the only thing that mutates it:
//
//	st, err := selection.New(items, selection.Options[string]{})
//	if err != nil {
//	    return err // configuration error, nothing was shown
//	}
//	v, _ := validate.New(validate.MinSelected[string](1))
//	ctl := selection.NewController(st, v)
//
//	ctl.MoveCursor(selection.Next) // skips separators and disabled choices
//	ctl.ToggleCurrent()
//	if ctl.AttemptSubmit() {
//	    values, _ := ctl.Result()
//	}
//
// # Session Lifecycle
//
// A session starts Active and ends either Answered (a submit passed
// validation) or Aborted. Both are terminal; operations on a terminal
// session do nothing.
//
// # Validation Feedback
//
// Every mutation of the selection re-runs the validator. The resulting
// message is stored even before the user has tried to submit, but
// VisibleError only reports it after the first submit attempt.
package selection
