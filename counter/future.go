package counter

import "context"

// Hooks are optional completion callbacks for the async variants. Each
// resolved call invokes at most OnSuccess or OnError, then OnComplete.
// Hooks run on the call's goroutine after the Future is resolved.
type Hooks struct {
	OnSuccess  func(value int64)
	OnError    func(err error)
	OnComplete func(value int64, err error)
}

func (h Hooks) dispatch(value int64, err error) {
	if err != nil {
		if h.OnError != nil {
			h.OnError(err)
		}
	} else if h.OnSuccess != nil {
		h.OnSuccess(value)
	}
	if h.OnComplete != nil {
		h.OnComplete(value, err)
	}
}

// Future is the pending result of an async counter operation. It resolves
// exactly once, with either a value or an error, never both.
type Future struct {
	done  chan struct{}
	value int64
	err   error
}

// Done returns a channel closed when the operation has resolved.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the operation resolves and returns its outcome. It
// may be called any number of times.
func (f *Future) Result() (int64, error) {
	<-f.done
	return f.value, f.err
}

func (c *Client) async(op func() (int64, error), hooks Hooks) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		f.value, f.err = op()
		close(f.done)
		hooks.dispatch(f.value, f.err)
	}()
	return f
}

// IncrementAsync runs Increment on its own goroutine and returns a Future.
// Cancelling ctx resolves the Future with the cancellation error; a value
// is never fabricated for a cancelled call.
func (c *Client) IncrementAsync(ctx context.Context, counterID string, hooks Hooks, opts ...Option) *Future {
	return c.async(func() (int64, error) {
		return c.Increment(ctx, counterID, opts...)
	}, hooks)
}

// GetLastValueAsync runs GetLastValue on its own goroutine and returns a
// Future.
func (c *Client) GetLastValueAsync(ctx context.Context, counterID string, hooks Hooks, opts ...Option) *Future {
	return c.async(func() (int64, error) {
		return c.GetLastValue(ctx, counterID, opts...)
	}, hooks)
}
