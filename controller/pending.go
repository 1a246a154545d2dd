package controller

import (
	"context"

	"github.com/automoto/thirdperson/assets"
)

type loadResult struct {
	model *assets.Model
	err   error
}

// Pending tracks an in-flight model load. The result is applied on the
// goroutine that calls Wait or Update, never on the loader goroutine.
type Pending struct {
	c      *CharacterController
	result chan loadResult
	done   chan struct{}
	cancel context.CancelFunc
}

func (c *CharacterController) startLoad(ctx context.Context) *Pending {
	ctx, cancel := context.WithCancel(ctx)
	p := &Pending{
		c:      c,
		result: make(chan loadResult, 1),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	loader, path := c.loader, c.modelPath
	go func() {
		defer close(p.done)
		model, err := loader.Load(ctx, path)
		p.result <- loadResult{model: model, err: err}
	}()

	return p
}

// Done is closed once the loader has finished, successfully or not.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the load finishes and applies its result. Load failures
// are absorbed into the placeholder; only ctx errors are returned.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		p.c.poll()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// take returns the load result if it is ready, without blocking.
func (p *Pending) take() (loadResult, bool) {
	select {
	case r := <-p.result:
		return r, true
	default:
		return loadResult{}, false
	}
}
