package percy

import (
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/internal/common/client"
	"github.com/selebrow/percy-selenium/internal/common/clock"
	"github.com/selebrow/percy-selenium/internal/services/metadata"
	"github.com/selebrow/percy-selenium/pkg/config"
)

type Option func(p *Percy)

// WithConfig replaces configuration read from the environment
func WithConfig(cfg config.Config) Option {
	return func(p *Percy) {
		p.cfg = cfg
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Percy) {
		p.l = l
	}
}

// WithHTTPClient sets the client used to talk to Percy CLI, timeouts are applied per request
func WithHTTPClient(hc client.HTTPClient) Option {
	return func(p *Percy) {
		p.hc = hc
	}
}

// WithCache sets session metadata cache, metadata.DefaultCache is used otherwise
func WithCache(c metadata.Cache) Option {
	return func(p *Percy) {
		p.cache = c
	}
}

// WithClock sets the function used for settle delays of responsive capture
func WithClock(sleep clock.SleepFunc) Option {
	return func(p *Percy) {
		p.sleep = sleep
	}
}
