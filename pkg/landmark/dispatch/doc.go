// Package dispatch executes focus commands with explicit data flow.
//
// Event handlers never touch the host directly. They decide what should
// happen and return a Command value; a Dispatcher then runs the handler
// registered for the command's Kind. This keeps the decision logic pure and
// testable, and puts every side effect in one place.
//
// # Basic Usage
//
//	d := dispatch.New(dispatch.DefaultHistorySize)
//
//	d.Register(dispatch.KindMoveFocus, func(cmd dispatch.Command) error {
//	    if !doc.IsConnected(cmd.Element) {
//	        return dispatch.ErrStale
//	    }
//	    doc.Focus(cmd.Element)
//	    return nil
//	})
//
//	d.Register(dispatch.KindFocusLandmark, func(cmd dispatch.Command) error {
//	    // invoke the landmark's focus callback with cmd.Direction
//	    return nil
//	})
//
//	err := d.Dispatch(dispatch.MoveFocus(el))
//
// # Stale Targets
//
// Commands may refer to elements that were removed from the document after
// the command was decided. Handlers return ErrStale for those; the
// dispatcher records the command as skipped and reports no error.
//
// # History
//
// Every dispatched command is appended to a bounded History, oldest entries
// first out, which tools use to trace a navigation session.
package dispatch
