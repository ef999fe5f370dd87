package interfaces

import "context"

// IBusyLock tracks in-flight mutating actions.
//
// Acquire fails with usecase.ErrBusy semantics (ok=false) when the key is
// already held; the returned release func must be called once the action ends.
type IBusyLock interface {
	Acquire(ctx context.Context, key string) (release func(), ok bool, err error)
	Held(ctx context.Context, key string) (bool, error)
}
