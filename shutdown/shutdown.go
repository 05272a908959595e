// Package shutdown turns SIGINT and SIGTERM into context cancellation, running
// registered hooks first.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/amp-labs/collate/logger"
)

// Handler cancels its context when the process receives a shutdown signal.
type Handler struct {
	mut     sync.Mutex
	hooks   []func()
	channel chan os.Signal
	ctx     context.Context //nolint:containedctx
	cancel  context.CancelFunc
	stop    sync.Once
}

// SetupHandler starts listening for SIGINT and SIGTERM. The handler's context
// is derived from ctx. Call Stop once the program no longer needs the handler.
func SetupHandler(ctx context.Context) *Handler {
	ctx, cancel := context.WithCancel(ctx)

	h := &Handler{
		channel: make(chan os.Signal, 1),
		ctx:     ctx,
		cancel:  cancel,
	}

	signal.Notify(h.channel, syscall.SIGINT, syscall.SIGTERM)

	go h.wait()

	return h
}

func (h *Handler) wait() {
	select {
	case <-h.ctx.Done():
	case sig := <-h.channel:
		logger.Get(h.ctx).Warn("Received " + sig.String() + ", shutting down...")

		h.cleanup()
		h.cancel()
	}
}

// Context returns the context canceled on shutdown.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// BeforeShutdown registers a hook run before the context is canceled. Hooks
// are not run when the handler is stopped without a signal.
func (h *Handler) BeforeShutdown(hook func()) {
	h.mut.Lock()
	defer h.mut.Unlock()

	h.hooks = append(h.hooks, hook)
}

// Shutdown starts the shutdown as if the process had been interrupted.
func (h *Handler) Shutdown() {
	select {
	case h.channel <- os.Interrupt:
	default:
	}
}

// Stop stops listening for signals and cancels the context.
func (h *Handler) Stop() {
	h.stop.Do(func() {
		signal.Stop(h.channel)
		h.cancel()
	})
}

func (h *Handler) cleanup() {
	h.mut.Lock()
	hooks := h.hooks
	h.hooks = nil
	h.mut.Unlock()

	for _, hook := range hooks {
		hook()
	}
}
