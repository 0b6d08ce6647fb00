package percy

import (
	"context"
	"net/http"
	"sync"

	"dario.cat/mergo"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/internal/common/client"
	"github.com/selebrow/percy-selenium/internal/common/clock"
	"github.com/selebrow/percy-selenium/internal/router"
	"github.com/selebrow/percy-selenium/internal/services/cli"
	"github.com/selebrow/percy-selenium/internal/services/dom"
	"github.com/selebrow/percy-selenium/internal/services/metadata"
	"github.com/selebrow/percy-selenium/internal/services/responsive"
	"github.com/selebrow/percy-selenium/pkg/config"
	"github.com/selebrow/percy-selenium/pkg/environment"
	"github.com/selebrow/percy-selenium/pkg/log"
	"github.com/selebrow/percy-selenium/pkg/models"
	"github.com/selebrow/percy-selenium/pkg/webdriver"
)

const (
	snapshotUsageMsg = "Please use screenshot() function while using Percy with Automate. " +
		"For more information on usage of PercyScreenshot, " +
		"refer https://www.browserstack.com/docs/percy/integrate/functional-and-visual"
	screenshotUsageMsg = "Please use snapshot() function for taking screenshot. " +
		"screenshot() should be used only while using Percy with Automate. " +
		"For more information on usage of snapshot(), refer doc for your language " +
		"https://www.browserstack.com/docs/percy/integrate/overview"

	payloadURL             = "url"
	payloadName            = "name"
	payloadDOMSnapshot     = "domSnapshot"
	payloadClientInfo      = "clientInfo"
	payloadEnvironmentInfo = "environmentInfo"
)

var regionElementOptions = []string{models.IgnoreRegionElementsOption, models.ConsiderRegionElementsOption}

// Percy captures snapshots of the page loaded in a WebDriver session and uploads them
// to the local Percy CLI server. Calls are serialized, one capture runs at a time.
type Percy struct {
	driver webdriver.Driver
	cfg    config.Config
	hc     client.HTTPClient
	cache  metadata.Cache
	sleep  clock.SleepFunc
	l      *zap.Logger

	log        *zap.SugaredLogger
	cli        *cli.Client
	dom        *dom.Executor
	responsive *responsive.Controller
	env        *environment.Environment

	mtx sync.Mutex
	neg models.Negotiation
}

// New creates Percy bound to driver d and negotiates with Percy CLI right away.
// Unavailable or incompatible Percy CLI doesn't fail New, snapshots are disabled instead.
func New(ctx context.Context, d webdriver.Driver, opts ...Option) (*Percy, error) {
	p := &Percy{
		driver: d,
		cache:  metadata.DefaultCache,
		sleep:  clock.Sleep,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.cfg == nil {
		cfg, err := config.DefaultConfig()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read Percy configuration")
		}
		p.cfg = cfg
	}
	if p.l == nil {
		p.l = log.GetLogger()
	}
	if p.hc == nil {
		p.hc = http.DefaultClient
	}

	p.cli = cli.NewClient(p.cfg, p.hc, p.l.Named("cli"))
	// everything but the CLI client itself is mirrored to Percy CLI logs
	l := log.WithRemote(p.l, &remoteSink{cli: p.cli})
	p.log = l.Sugar()
	p.dom = dom.NewExecutor(d, l.Named("dom"))
	p.responsive = responsive.NewController(d, p.dom, p.cfg, p.sleep, l.Named("responsive"))
	p.env = environment.New(d)

	p.neg = p.cli.Healthcheck(ctx)
	return p, nil
}

// Reprobe repeats negotiation with Percy CLI
func (p *Percy) Reprobe(ctx context.Context) models.Negotiation {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	p.neg = p.cli.Healthcheck(ctx)
	return p.neg
}

func (p *Percy) Enabled() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.enabled()
}

func (p *Percy) SessionType() models.SessionType {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.neg.SessionType
}

func (p *Percy) Negotiation() models.Negotiation {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	return p.neg
}

func (p *Percy) enabled() bool {
	return p.neg.Enabled && p.cli.Enabled()
}

// Snapshot captures DOM of the current page and uploads it. When Percy is disabled
// nothing is done and nil is returned. Automate sessions must use Screenshot.
func (p *Percy) Snapshot(ctx context.Context, name string, opts *models.SnapshotOptions) (map[string]interface{}, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.enabled() {
		return nil, nil
	}
	if p.neg.IsAutomate() {
		return nil, models.NewUsageError("snapshot", snapshotUsageMsg)
	}

	script := p.cli.FetchDOMScript(ctx)
	if script == "" {
		return nil, nil
	}

	pageURL, err := p.driver.CurrentURL(ctx)
	if err != nil {
		p.log.Errorw("Could not take DOM snapshot", zap.String("name", name), zap.Error(err))
		return nil, nil
	}
	if err := p.dom.Inject(ctx, script); err != nil {
		p.log.Errorw("Could not take DOM snapshot", zap.String("name", name), zap.Error(err))
		return nil, nil
	}

	optsMap := opts.ToMap()
	// responsive capture uploads a list of width tagged snapshots, a plain capture uploads one
	var domSnapshot interface{}
	if responsive.IsResponsive(opts, p.neg.CLIConfig) {
		var requested []int
		if opts != nil {
			requested = opts.Widths
		}
		domSnapshot = p.responsive.Capture(ctx, responsive.Widths(p.neg.Widths, requested), optsMap)
	} else {
		domSnapshot = p.dom.Capture(ctx, optsMap)
	}

	payload := map[string]interface{}{
		payloadURL:             pageURL,
		payloadName:            name,
		payloadDOMSnapshot:     domSnapshot,
		payloadClientInfo:      p.env.ClientInfo(),
		payloadEnvironmentInfo: p.env.EnvironmentInfo(),
	}
	if err := mergo.Merge(&payload, optsMap); err != nil {
		p.log.Errorw("failed to merge snapshot options", zap.String("name", name), zap.Error(err))
		return nil, nil
	}

	resp := p.cli.Post(ctx, router.SnapshotPath, payload)
	if resp == nil {
		return nil, nil
	}
	p.log.Debugw("snapshot uploaded", zap.String("name", name))
	return resp.Data, nil
}

// Screenshot asks Percy CLI to screenshot the remote Automate session. When Percy is disabled
// nothing is done and nil is returned. Web sessions must use Snapshot.
func (p *Percy) Screenshot(ctx context.Context, name string, opts *models.ScreenshotOptions) (map[string]interface{}, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.enabled() {
		return nil, nil
	}
	if !p.neg.IsAutomate() {
		return nil, models.NewUsageError("screenshot", screenshotUsageMsg)
	}

	md, err := metadata.NewDriverMetadata(p.driver, p.cache)
	if err != nil {
		return nil, err
	}
	caps, err := md.Capabilities(ctx)
	if err != nil {
		p.log.Errorw("Could not take Screenshot", zap.String("name", name), zap.Error(err))
		return nil, nil
	}
	executorURL, err := md.CommandExecutorURL(ctx)
	if err != nil {
		p.log.Errorw("Could not take Screenshot", zap.String("name", name), zap.Error(err))
		return nil, nil
	}

	req := models.ScreenshotRequest{
		SessionID:          md.SessionID(),
		CommandExecutorURL: executorURL,
		Capabilities:       caps,
		SnapshotName:       name,
		ClientInfo:         p.env.ClientInfo(),
		EnvironmentInfo:    p.env.EnvironmentInfo(),
		Options:            p.elementIDs(opts.ToMap()),
	}

	resp := p.cli.Post(ctx, router.AutomateScreenshotPath, req)
	if resp == nil {
		return nil, nil
	}
	return resp.Data, nil
}

// elementIDs replaces element handles of region options with element ids
func (p *Percy) elementIDs(opts map[string]interface{}) map[string]interface{} {
	for _, key := range regionElementOptions {
		v, ok := opts[key]
		if !ok {
			continue
		}
		elements, _ := v.([]interface{})
		ids := make([]string, 0, len(elements))
		for _, el := range elements {
			id, ok := webdriver.ElementID(el)
			if !ok {
				p.log.Warnw("ignoring unsupported element", zap.String("option", key), zap.Any("element", el))
				continue
			}
			ids = append(ids, id)
		}
		opts[key] = ids
	}
	return opts
}

// remoteSink forwards log entries to Percy CLI while it is reachable
type remoteSink struct {
	cli *cli.Client
}

func (s *remoteSink) Log(ctx context.Context, message, level string) {
	if s.cli.Enabled() {
		s.cli.Log(ctx, message, level)
	}
}
