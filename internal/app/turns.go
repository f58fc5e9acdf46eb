package app

import "context"

// turns hands out append slots in index order. Unit i may append only after
// unit i-1 has called done. A unit that fails never calls done; the units
// behind it are released by context cancellation instead.
type turns struct {
	ready []chan struct{}
}

func newTurns(n int) *turns {
	t := &turns{ready: make([]chan struct{}, n)}
	for i := range t.ready {
		t.ready[i] = make(chan struct{})
	}
	return t
}

// wait blocks until it is unit i's turn or ctx is done.
func (t *turns) wait(ctx context.Context, i int) error {
	if i == 0 {
		return ctx.Err()
	}
	select {
	case <-t.ready[i-1]:
		return ctx.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// done passes the turn from unit i to unit i+1.
func (t *turns) done(i int) {
	close(t.ready[i])
}
