package session

import "errors"

var (
	// ErrBuildInProgress is returned when an initialize or reconcile is
	// requested while another build for the same session is still running.
	// Nothing is mutated; the caller may retry once the earlier build ends.
	ErrBuildInProgress = errors.New("session: world build already in progress")

	// ErrSessionDisposed is returned for operations on a torn-down session.
	ErrSessionDisposed = errors.New("session: world session disposed")

	// ErrBroadcasterClosed is returned when a value is pushed to a loading
	// broadcaster after its session was disposed.
	ErrBroadcasterClosed = errors.New("session: loading broadcaster closed")
)
