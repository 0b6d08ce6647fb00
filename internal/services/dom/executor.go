package dom

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/pkg/models"
	"github.com/selebrow/percy-selenium/pkg/webdriver"
)

const serializeScript = "return PercyDOM.serialize(%s)"

// Executor serializes the page loaded in the driver
type Executor struct {
	driver webdriver.Driver
	l      *zap.SugaredLogger
}

func NewExecutor(d webdriver.Driver, l *zap.Logger) *Executor {
	return &Executor{
		driver: d,
		l:      l.Sugar(),
	}
}

// Inject evaluates script in the current page, so PercyDOM is defined there
func (e *Executor) Inject(ctx context.Context, script string) error {
	if script == "" {
		return errors.New("DOM serialization script is empty")
	}
	if _, err := e.driver.ExecuteScript(ctx, script, nil); err != nil {
		return errors.Wrap(err, "failed to inject DOM serialization script")
	}
	return nil
}

// Capture serializes the page with opts. Script failures yield an empty snapshot,
// cookies are attached when the driver is able to report them.
func (e *Executor) Capture(ctx context.Context, opts map[string]interface{}) models.DOMSnapshot {
	snap, err := e.serialize(ctx, opts)
	if err != nil {
		e.l.Errorw("Something went wrong attempting to take a snapshot", zap.Error(err))
		snap = models.DOMSnapshot{}
	}

	cookies, err := e.driver.Cookies(ctx)
	if err != nil {
		e.l.Debugw("failed to get cookies", zap.Error(err))
		return snap
	}
	if cookies == nil {
		cookies = []models.Cookie{}
	}
	snap[models.DOMSnapshotCookiesKey] = cookies
	return snap
}

func (e *Executor) serialize(ctx context.Context, opts map[string]interface{}) (models.DOMSnapshot, error) {
	if opts == nil {
		opts = map[string]interface{}{}
	}
	arg, err := json.Marshal(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize snapshot options")
	}

	res, err := e.driver.ExecuteScript(ctx, fmt.Sprintf(serializeScript, arg), nil)
	if err != nil {
		return nil, err
	}
	snap, ok := res.(map[string]interface{})
	if !ok {
		return nil, errors.Errorf("unexpected DOM snapshot type %T", res)
	}
	return snap, nil
}
