package webdriver

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// TracedExecutor decorates a CommandExecutor logging every command with its duration
type TracedExecutor struct {
	delegate CommandExecutor
	l        *zap.SugaredLogger
}

func NewTracedExecutor(delegate CommandExecutor, l *zap.Logger) *TracedExecutor {
	return &TracedExecutor{
		delegate: delegate,
		l:        l.Sugar(),
	}
}

func (t *TracedExecutor) Execute(ctx context.Context, method, path string, body, result interface{}) error {
	start := time.Now()
	err := t.delegate.Execute(ctx, method, path, body, result)
	l := t.l.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		l.Debugw("WebDriver command failed", zap.Error(err))
	} else {
		l.Debug("WebDriver command executed")
	}
	return err
}

func (t *TracedExecutor) Unwrap() (CommandExecutor, error) {
	return t.delegate, nil
}
