package responsive

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/internal/common/clock"
	"github.com/selebrow/percy-selenium/pkg/config"
	"github.com/selebrow/percy-selenium/pkg/models"
	"github.com/selebrow/percy-selenium/pkg/webdriver"
)

const (
	waitForResizeScript = "PercyDOM.waitForResize()"
	resizeCountScript   = "return window.resizeCount"
)

type Capturer interface {
	Capture(ctx context.Context, opts map[string]interface{}) models.DOMSnapshot
}

// Controller captures the page at several viewport widths, waiting for the page
// to acknowledge every resize before capturing.
type Controller struct {
	driver   webdriver.Driver
	capturer Capturer
	cfg      config.CaptureConfig
	sleep    clock.SleepFunc
	l        *zap.SugaredLogger
}

func NewController(
	d webdriver.Driver,
	capturer Capturer,
	cfg config.CaptureConfig,
	sleep clock.SleepFunc,
	l *zap.Logger,
) *Controller {
	return &Controller{
		driver:   d,
		capturer: capturer,
		cfg:      cfg,
		sleep:    sleep,
		l:        l.Sugar(),
	}
}

// Widths computes the capture widths: mobile widths are always included, then the requested
// widths or, when none were requested, the configured ones. Result is ascending without duplicates.
func Widths(eligible models.EligibleWidths, requested []int) []int {
	res := slices.Clone(eligible.Mobile)
	if len(requested) > 0 {
		res = append(res, requested...)
	} else {
		res = append(res, eligible.Config...)
	}
	res = slices.DeleteFunc(res, func(w int) bool { return w <= 0 })
	slices.Sort(res)
	return slices.Compact(res)
}

// IsResponsive reports whether the snapshot must be captured width by width.
// Deferred uploads rule responsive capture out.
func IsResponsive(opts *models.SnapshotOptions, cliCfg models.CLIConfig) bool {
	if cliCfg.DeferUploads {
		return false
	}
	if opts != nil && opts.ResponsiveSnapshotCapture != nil && *opts.ResponsiveSnapshotCapture {
		return true
	}
	return cliCfg.ResponsiveSnapshotCapture
}

type resizeState struct {
	height      int
	lastWidth   int
	resizeCount int
	usedCDP     bool
}

// Capture returns one snapshot per width tagged with the width. Failures at a single width
// never abort the loop, the original window size is restored in any case.
func (c *Controller) Capture(ctx context.Context, widths []int, opts map[string]interface{}) []models.DOMSnapshot {
	original, err := c.driver.WindowRect(ctx)
	if err != nil {
		// zero height keeps the current one, both on window resize and on device metrics override
		c.l.Errorw("failed to get window size, it won't be restored after capture", zap.Error(err))
		original = models.Rect{}
	}

	st := &resizeState{
		height:    original.Height,
		lastWidth: original.Width,
	}

	if _, err := c.driver.ExecuteScript(ctx, waitForResizeScript, nil); err != nil {
		c.l.Debugw("failed to inject resize probe", zap.Error(err))
	}

	defer func() {
		if original.Width > 0 && st.lastWidth != original.Width {
			c.resizeAndWait(ctx, st, original.Width)
		}
		if st.usedCDP {
			c.clearOverride(ctx)
		}
	}()

	res := make([]models.DOMSnapshot, 0, len(widths))
	for _, w := range widths {
		if w != st.lastWidth {
			c.resizeAndWait(ctx, st, w)
		}
		if d := c.cfg.ResponsiveCaptureSleepTime(); d > 0 {
			if err := c.sleep(ctx, d); err != nil {
				c.l.Debugw("settle delay interrupted", zap.Error(err))
			}
		}
		snap := c.capturer.Capture(ctx, opts)
		if snap == nil {
			snap = models.DOMSnapshot{}
		}
		snap[models.DOMSnapshotWidthKey] = w
		res = append(res, snap)
	}
	return res
}

func (c *Controller) resizeAndWait(ctx context.Context, st *resizeState, width int) {
	st.resizeCount++
	st.lastWidth = width

	cdp, err := c.resize(ctx, width, st.height)
	st.usedCDP = st.usedCDP || cdp
	if err != nil {
		c.l.Errorw("failed to resize window", zap.Int("width", width), zap.Error(err))
		return
	}
	if !c.waitForResize(ctx, st.resizeCount) {
		c.l.Debugw("timed out waiting for window resize", zap.Int("width", width), zap.Int("expectedCount", st.resizeCount))
	}
}

// resize prefers device metrics override, plain window resize is the fallback
func (c *Controller) resize(ctx context.Context, width, height int) (bool, error) {
	if cdp, ok := c.cdpExecutor(); ok {
		params := emulation.SetDeviceMetricsOverride(int64(width), int64(height), 1, false)
		_, err := cdp.ExecuteCDP(ctx, emulation.CommandSetDeviceMetricsOverride, params)
		if err == nil {
			return true, nil
		}
		c.l.Debugw("device metrics override failed, falling back to window resize", zap.Error(err))
	}
	return false, c.driver.SetWindowRect(ctx, models.Rect{Width: width, Height: height})
}

func (c *Controller) clearOverride(ctx context.Context) {
	cdp, ok := c.cdpExecutor()
	if !ok {
		return
	}
	if _, err := cdp.ExecuteCDP(ctx, emulation.CommandClearDeviceMetricsOverride, emulation.ClearDeviceMetricsOverride()); err != nil {
		c.l.Debugw("failed to clear device metrics override", zap.Error(err))
	}
}

func (c *Controller) cdpExecutor() (webdriver.CDPExecutor, bool) {
	if cdp, ok := c.driver.(webdriver.CDPExecutor); ok {
		return cdp, true
	}
	cdp, ok := webdriver.Unwrap(c.driver).(webdriver.CDPExecutor)
	return cdp, ok
}

// waitForResize polls the page resize counter until it reaches expected or the resize timeout elapses
func (c *Controller) waitForResize(ctx context.Context, expected int) bool {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ResizeTimeout())
	defer cancel()

	interval := c.cfg.ResizePollInterval()
	if interval <= 0 {
		interval = config.DefaultResizePollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := c.driver.ExecuteScript(ctx, resizeCountScript, nil)
		if err == nil && toInt(res) >= expected {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	default:
		return 0
	}
}
