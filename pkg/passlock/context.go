package passlock

import "context"

type result[T any] struct {
	val T
	err error
}

// LockContext is Lock bounded by ctx.
// Key derivation can't be interrupted, so when ctx ends first the operation keeps running in the background and its result is discarded.
func LockContext(ctx context.Context, data Plaintext, meta Metadata, pass Passphrase) (Encrypted, error) {
	return await(ctx, func() (Encrypted, error) {
		return Lock(data, meta, pass)
	})
}

// UnlockContext is Unlock bounded by ctx, with the same late result semantics as LockContext.
func UnlockContext(ctx context.Context, data Encrypted, pass Passphrase) (*Unlocked, error) {
	return await(ctx, func() (*Unlocked, error) {
		return Unlock(data, pass)
	})
}

func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	done := make(chan result[T], 1)
	go func() {
		val, err := fn()
		done <- result[T]{val: val, err: err}
	}()
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-done:
		return res.val, res.err
	}
}
