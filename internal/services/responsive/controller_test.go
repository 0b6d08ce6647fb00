package responsive_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/chromedp/cdproto/emulation"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/selebrow/percy-selenium/internal/common/clock"
	"github.com/selebrow/percy-selenium/internal/services/responsive"
	"github.com/selebrow/percy-selenium/mocks"
	"github.com/selebrow/percy-selenium/pkg/config"
	"github.com/selebrow/percy-selenium/pkg/models"
)

func TestWidths(t *testing.T) {
	tests := []struct {
		name      string
		eligible  models.EligibleWidths
		requested []int
		want      []int
	}{
		{
			name:     "config widths",
			eligible: models.EligibleWidths{Mobile: []int{375, 414}, Config: []int{1280}},
			want:     []int{375, 414, 1280},
		},
		{
			name:      "requested widths",
			eligible:  models.EligibleWidths{Mobile: []int{375}, Config: []int{1280}},
			requested: []int{1920, 768, 375},
			want:      []int{375, 768, 1920},
		},
		{
			name:     "no mobile widths",
			eligible: models.EligibleWidths{Config: []int{1280, 375, 1280}},
			want:     []int{375, 1280},
		},
		{
			name:      "invalid widths",
			eligible:  models.EligibleWidths{},
			requested: []int{0, -1, 800},
			want:      []int{800},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(responsive.Widths(tt.eligible, tt.requested)).To(Equal(tt.want))
		})
	}
}

func TestIsResponsive(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name   string
		opts   *models.SnapshotOptions
		cliCfg models.CLIConfig
		want   bool
	}{
		{name: "not requested", opts: &models.SnapshotOptions{}},
		{name: "nil options"},
		{name: "requested", opts: &models.SnapshotOptions{ResponsiveSnapshotCapture: &yes}, want: true},
		{name: "config default", cliCfg: models.CLIConfig{ResponsiveSnapshotCapture: true}, want: true},
		{name: "explicit false", opts: &models.SnapshotOptions{ResponsiveSnapshotCapture: &no}},
		{
			name:   "deferred uploads",
			opts:   &models.SnapshotOptions{ResponsiveSnapshotCapture: &yes},
			cliCfg: models.CLIConfig{ResponsiveSnapshotCapture: true, DeferUploads: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			g.Expect(responsive.IsResponsive(tt.opts, tt.cliCfg)).To(Equal(tt.want))
		})
	}
}

type fakeCapturer struct {
	mtx   sync.Mutex
	calls int
	fail  map[int]bool
}

func (f *fakeCapturer) Capture(_ context.Context, opts map[string]interface{}) models.DOMSnapshot {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.calls++
	if f.fail[f.calls] {
		return nil
	}
	return models.DOMSnapshot{"html": "<html></html>", "scope": opts["scope"]}
}

// page emulates the resize counter probe of a browser page
type page struct {
	mtx         sync.Mutex
	resizeCount int
	acknowledge bool
	rects       []models.Rect
}

func (p *page) resized(rect models.Rect) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.rects = append(p.rects, rect)
	if p.acknowledge {
		p.resizeCount++
	}
}

func (p *page) count() interface{} {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return float64(p.resizeCount)
}

func createCfg(t *testing.T, resizeTimeout, sleep time.Duration) *config.ConfigViper {
	v := viper.New()
	v.Set("resize-timeout", resizeTimeout)
	v.Set("resize-poll-interval", 10*time.Millisecond)
	v.Set("responsive-capture-sleep-time", sleep.Seconds())
	cfg, err := config.NewConfig(v, nil)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func expectPage(d *mocks.Driver, p *page) {
	d.EXPECT().WindowRect(mock.Anything).Return(models.Rect{Width: 1024, Height: 768}, nil).Once()
	d.EXPECT().ExecuteScript(mock.Anything, "PercyDOM.waitForResize()", []interface{}(nil)).Return(nil, nil).Once()
	d.EXPECT().ExecuteScript(mock.Anything, "return window.resizeCount", []interface{}(nil)).
		RunAndReturn(func(context.Context, string, []interface{}) (interface{}, error) {
			return p.count(), nil
		})
}

func TestController_Capture(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	p := &page{acknowledge: true}
	d := mocks.NewDriver(t)
	expectPage(d, p)
	d.EXPECT().SetWindowRect(mock.Anything, mock.Anything).Run(func(_ context.Context, rect models.Rect) {
		p.resized(rect)
	}).Return(nil).Times(4)

	var slept []time.Duration
	sleep := func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}

	capturer := &fakeCapturer{fail: map[int]bool{2: true}}
	cfg := createCfg(t, time.Second, 500*time.Millisecond)
	c := responsive.NewController(d, capturer, cfg, sleep, zaptest.NewLogger(t))

	widths := responsive.Widths(models.EligibleWidths{Mobile: []int{375, 414}, Config: []int{1280}}, nil)
	snaps := c.Capture(ctx, widths, map[string]interface{}{"scope": "main"})

	g.Expect(snaps).To(Equal([]models.DOMSnapshot{
		{"html": "<html></html>", "scope": "main", "width": 375},
		{"width": 414},
		{"html": "<html></html>", "scope": "main", "width": 1280},
	}))
	g.Expect(p.rects).To(Equal([]models.Rect{
		{Width: 375, Height: 768},
		{Width: 414, Height: 768},
		{Width: 1280, Height: 768},
		{Width: 1024, Height: 768},
	}))
	g.Expect(slept).To(Equal([]time.Duration{500 * time.Millisecond, 500 * time.Millisecond, 500 * time.Millisecond}))
}

func TestController_CaptureResizeTimeout(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	p := &page{}
	d := mocks.NewDriver(t)
	expectPage(d, p)
	d.EXPECT().SetWindowRect(mock.Anything, mock.Anything).Run(func(_ context.Context, rect models.Rect) {
		p.resized(rect)
	}).Return(nil).Times(4)

	capturer := &fakeCapturer{}
	c := responsive.NewController(d, capturer, createCfg(t, 50*time.Millisecond, 0), clock.Sleep, zaptest.NewLogger(t))

	start := time.Now()
	snaps := c.Capture(ctx, []int{375, 1024, 1280}, nil)
	g.Expect(time.Since(start)).To(BeNumerically("<", 2*time.Second))

	g.Expect(snaps).To(HaveLen(3))
	for i, w := range []int{375, 1024, 1280} {
		g.Expect(snaps[i]).To(HaveKeyWithValue("width", w))
		g.Expect(snaps[i]).To(HaveKey("html"))
	}
	g.Expect(p.rects).To(Equal([]models.Rect{
		{Width: 375, Height: 768},
		{Width: 1024, Height: 768},
		{Width: 1280, Height: 768},
		{Width: 1024, Height: 768},
	}))
}

func TestController_CaptureResizeFailure(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	p := &page{}
	d := mocks.NewDriver(t)
	expectPage(d, p)
	d.EXPECT().SetWindowRect(mock.Anything, models.Rect{Width: 375, Height: 768}).Return(errors.New("window is maximized")).Once()
	d.EXPECT().SetWindowRect(mock.Anything, models.Rect{Width: 1024, Height: 768}).Return(nil).Once()

	c := responsive.NewController(d, &fakeCapturer{}, createCfg(t, 50*time.Millisecond, 0), clock.Sleep, zaptest.NewLogger(t))
	snaps := c.Capture(ctx, []int{375}, nil)
	g.Expect(snaps).To(HaveLen(1))
	g.Expect(snaps[0]).To(HaveKeyWithValue("width", 375))
}

type cdpDriver struct {
	*mocks.Driver
	*mocks.CDPExecutor
}

func TestController_CaptureCDP(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	p := &page{acknowledge: true}
	d := mocks.NewDriver(t)
	expectPage(d, p)
	cdp := mocks.NewCDPExecutor(t)
	for _, w := range []int64{375, 1280, 1024} {
		cdp.EXPECT().
			ExecuteCDP(mock.Anything, "Emulation.setDeviceMetricsOverride", emulation.SetDeviceMetricsOverride(w, 768, 1, false)).
			Run(func(context.Context, string, interface{}) { p.resized(models.Rect{Width: int(w), Height: 768}) }).
			Return(map[string]interface{}{}, nil).
			Once()
	}
	cdp.EXPECT().
		ExecuteCDP(mock.Anything, "Emulation.clearDeviceMetricsOverride", emulation.ClearDeviceMetricsOverride()).
		Return(map[string]interface{}{}, nil).
		Once()

	c := responsive.NewController(&cdpDriver{Driver: d, CDPExecutor: cdp}, &fakeCapturer{}, createCfg(t, time.Second, 0),
		clock.Sleep, zaptest.NewLogger(t))
	snaps := c.Capture(ctx, []int{375, 1280}, nil)

	g.Expect(snaps).To(HaveLen(2))
	g.Expect(p.rects).To(HaveLen(3))
	d.AssertNotCalled(t, "SetWindowRect", mock.Anything, mock.Anything)
}

func TestController_CaptureCDPFallback(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	p := &page{acknowledge: true}
	d := mocks.NewDriver(t)
	expectPage(d, p)
	d.EXPECT().SetWindowRect(mock.Anything, mock.Anything).Run(func(_ context.Context, rect models.Rect) {
		p.resized(rect)
	}).Return(nil).Twice()
	cdp := mocks.NewCDPExecutor(t)
	cdp.EXPECT().
		ExecuteCDP(mock.Anything, "Emulation.setDeviceMetricsOverride", mock.Anything).
		Return(nil, models.NewW3CErr(404, models.UnknownCommandErr, "not a chromium browser")).
		Twice()

	c := responsive.NewController(&cdpDriver{Driver: d, CDPExecutor: cdp}, &fakeCapturer{}, createCfg(t, time.Second, 0),
		clock.Sleep, zaptest.NewLogger(t))
	snaps := c.Capture(ctx, []int{800}, nil)

	g.Expect(snaps).To(HaveLen(1))
	g.Expect(p.rects).To(Equal([]models.Rect{{Width: 800, Height: 768}, {Width: 1024, Height: 768}}))
}

type captureConfig struct {
	resizeTimeout time.Duration
	pollInterval  time.Duration
}

func (*captureConfig) ResponsiveCaptureSleepTime() time.Duration { return 0 }

func (c *captureConfig) ResizeTimeout() time.Duration { return c.resizeTimeout }

func (c *captureConfig) ResizePollInterval() time.Duration { return c.pollInterval }

func TestController_CaptureNonPositivePollInterval(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	p := &page{}
	d := mocks.NewDriver(t)
	expectPage(d, p)
	d.EXPECT().SetWindowRect(mock.Anything, mock.Anything).Run(func(_ context.Context, rect models.Rect) {
		p.resized(rect)
	}).Return(nil).Twice()

	cfg := &captureConfig{resizeTimeout: 50 * time.Millisecond}
	c := responsive.NewController(d, &fakeCapturer{}, cfg, clock.Sleep, zaptest.NewLogger(t))

	var snaps []models.DOMSnapshot
	g.Expect(func() { snaps = c.Capture(ctx, []int{375}, nil) }).ToNot(Panic())
	g.Expect(snaps).To(HaveLen(1))
	g.Expect(p.rects).To(Equal([]models.Rect{{Width: 375, Height: 768}, {Width: 1024, Height: 768}}))
}

func TestController_CaptureUnknownWindowSize(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	p := &page{acknowledge: true}
	d := mocks.NewDriver(t)
	d.EXPECT().WindowRect(mock.Anything).Return(models.Rect{}, errors.New("no such window")).Once()
	d.EXPECT().ExecuteScript(mock.Anything, "PercyDOM.waitForResize()", []interface{}(nil)).Return(nil, nil).Once()
	d.EXPECT().ExecuteScript(mock.Anything, "return window.resizeCount", []interface{}(nil)).
		RunAndReturn(func(context.Context, string, []interface{}) (interface{}, error) {
			return p.count(), nil
		})
	d.EXPECT().SetWindowRect(mock.Anything, mock.Anything).Run(func(_ context.Context, rect models.Rect) {
		p.resized(rect)
	}).Return(nil).Twice()

	c := responsive.NewController(d, &fakeCapturer{}, createCfg(t, time.Second, 0), clock.Sleep, zaptest.NewLogger(t))
	snaps := c.Capture(ctx, []int{375, 1280}, nil)

	g.Expect(snaps).To(HaveLen(2))
	// heights are left to the browser, nothing to restore
	g.Expect(p.rects).To(Equal([]models.Rect{{Width: 375}, {Width: 1280}}))
}
