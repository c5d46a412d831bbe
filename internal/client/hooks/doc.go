// Package hooks binds service calls to observable {Data, IsLoading, Error}
// state for the screens of the dashboard.
//
// Every hook reports failures three ways: the error is stored in its state,
// an error notification is shown, and the error is returned to the caller.
// Overlapping calls on one hook are not sequenced; whichever finishes last
// determines the state.
package hooks
