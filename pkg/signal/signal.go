package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type ShutdownHook func(ctx context.Context) error

type namedHook struct {
	name string
	hook ShutdownHook
}

// Handler runs registered shutdown hooks once the process is asked to stop.
// Hooks run one by one, the most recently registered first.
type Handler struct {
	mtx     sync.Mutex
	hooks   []namedHook
	timeout time.Duration
	l       *zap.SugaredLogger
}

func NewHandler(timeout time.Duration, l *zap.Logger) *Handler {
	return &Handler{
		timeout: timeout,
		l:       l.Sugar(),
	}
}

// Start blocks until SIGINT or SIGTERM and returns the process exit code
func (h *Handler) Start() int {
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	return h.Wait(c)
}

func (h *Handler) Wait(c <-chan os.Signal) int {
	sig := <-c
	h.l.Infow("signal caught, shutting down...", zap.String("signal", sig.String()))

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- h.Shutdown(ctx)
	}()

	select {
	case <-ctx.Done():
		h.l.Warnf("shutdown hooks did not complete within %v, exiting immediately", h.timeout)
		return 1
	case err := <-done:
		if err != nil {
			return 1
		}
		h.l.Infof("graceful shutdown completed in %v", time.Since(start))
		return 0
	case sig = <-c:
		h.l.Infow("second signal caught, exiting immediately", zap.String("signal", sig.String()))
	}

	return 1
}

func (h *Handler) RegisterShutdownHook(name string, hook ShutdownHook) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	h.hooks = append(h.hooks, namedHook{name: name, hook: hook})
}

// Shutdown runs all hooks, the first hook error is returned after the remaining hooks complete
func (h *Handler) Shutdown(ctx context.Context) error {
	h.mtx.Lock()
	hooks := h.hooks
	h.hooks = nil
	h.mtx.Unlock()

	var firstErr error
	for i := len(hooks) - 1; i >= 0; i-- {
		nh := hooks[i]
		if err := nh.hook(ctx); err != nil {
			h.l.Warnw("shutdown hook failed", zap.String("hook", nh.name), zap.Error(err))
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "%s shutdown failed", nh.name)
			}
		}
	}
	return firstErr
}
