package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/internal/common/client"
	"github.com/selebrow/percy-selenium/internal/router"
	"github.com/selebrow/percy-selenium/pkg/config"
	"github.com/selebrow/percy-selenium/pkg/models"
)

const (
	supportedMajorVersion = "1"

	notRunningMsg  = "Percy is not running, disabling snapshots"
	unsupportedMsg = "Unsupported Percy CLI version, "
	migrationMsg   = "You may be using @percy/agent which is no longer supported by this SDK. " +
		"Please uninstall @percy/agent and install @percy/cli instead. " +
		"https://www.browserstack.com/docs/percy/migration/migrate-to-cli"

	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json"
)

// Client talks to the local Percy CLI server. Once negotiation or script retrieval fails
// the client stays disabled until the next successful Healthcheck.
type Client struct {
	cfg config.ServerConfig
	hc  client.HTTPClient
	l   *zap.SugaredLogger

	disabled  atomic.Bool
	scriptMtx sync.Mutex
	domScript string
}

func NewClient(cfg config.ServerConfig, hc client.HTTPClient, l *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		hc:  hc,
		l:   l.Sugar(),
	}
}

// Healthcheck negotiates with the server, any failure yields a disabled negotiation
func (c *Client) Healthcheck(ctx context.Context) models.Negotiation {
	n, err := c.healthcheck(ctx)
	if err != nil {
		c.disabled.Store(true)
		c.l.Debugw("healthcheck failed", zap.Error(err))
		return models.DisabledNegotiation()
	}
	c.disabled.Store(false)
	c.l.Debugw("healthcheck succeeded",
		zap.String("coreVersion", n.CoreVersion),
		zap.String("sessionType", string(n.SessionType)),
		zap.Ints("mobileWidths", n.Widths.Mobile),
		zap.Ints("configWidths", n.Widths.Config),
	)
	return n
}

func (c *Client) healthcheck(ctx context.Context) (models.Negotiation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.HealthcheckTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(router.HealthcheckPath), http.NoBody)
	if err != nil {
		return models.Negotiation{}, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		c.l.Info(notRunningMsg)
		return models.Negotiation{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.l.Info(notRunningMsg)
		return models.Negotiation{}, errors.Errorf("unexpected healthcheck response code %d", resp.StatusCode)
	}

	version := resp.Header.Get(router.CoreVersionHeader)
	if version == "" {
		c.l.Info(migrationMsg)
		return models.Negotiation{}, errors.New("healthcheck response has no core version")
	}
	if major, _, _ := strings.Cut(version, "."); major != supportedMajorVersion {
		c.l.Info(unsupportedMsg + version)
		return models.Negotiation{}, errors.Errorf("unsupported core version %s", version)
	}

	var body models.HealthcheckResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		c.l.Info(notRunningMsg)
		return models.Negotiation{}, errors.Wrap(err, "failed to parse healthcheck response")
	}

	cliCfg, err := models.NewCLIConfig(body.Config)
	if err != nil {
		c.l.Debugw("ignoring malformed Percy CLI config", zap.Error(err))
	}

	return models.Negotiation{
		Enabled:     true,
		SessionType: body.Type,
		CoreVersion: version,
		Widths:      body.Widths,
		CLIConfig:   cliCfg,
	}, nil
}

// Enabled reports whether the client has not been disabled by a failed healthcheck or script fetch
func (c *Client) Enabled() bool {
	return !c.disabled.Load()
}

// FetchDOMScript returns the DOM serialization script, it is fetched only once.
// Failure disables the client and yields an empty script.
func (c *Client) FetchDOMScript(ctx context.Context) string {
	c.scriptMtx.Lock()
	defer c.scriptMtx.Unlock()

	if c.domScript != "" {
		return c.domScript
	}

	script, err := c.fetchDOMScript(ctx)
	if err != nil {
		c.disabled.Store(true)
		c.l.Errorw("failed to fetch DOM serialization script, disabling snapshots", zap.Error(err))
		return ""
	}
	c.domScript = script
	return script
}

func (c *Client) fetchDOMScript(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.HealthcheckTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(router.DOMScriptPath), http.NoBody)
	if err != nil {
		return "", err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read DOM serialization script")
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected response code %d: %s", resp.StatusCode, string(data))
	}
	if len(data) == 0 {
		return "", errors.New("DOM serialization script is empty")
	}
	return string(data), nil
}

// Post sends body to the server endpoint p (relative to /percy) and returns the decoded response.
// Transport and server failures are logged and reported as a nil response.
func (c *Client) Post(ctx context.Context, p string, body interface{}) *models.Response {
	resp, err := c.post(ctx, p, body)
	if err != nil {
		c.l.Errorw("could not post to Percy", zap.String("path", p), zap.Error(err))
		return nil
	}
	return resp
}

func (c *Client) post(ctx context.Context, p string, body interface{}) (*models.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.PostTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(p), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set(contentTypeHeader, contentTypeJSON)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	var res models.Response
	if len(respData) > 0 {
		if err := json.Unmarshal(respData, &res); err != nil {
			return nil, errors.Wrapf(err, "failed to parse response (code %d)", resp.StatusCode)
		}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if res.Error != "" {
			return nil, errors.Errorf("server responded with code %d: %s", resp.StatusCode, res.Error)
		}
		return nil, errors.Errorf("server responded with code %d", resp.StatusCode)
	}
	return &res, nil
}

// Log ships a log line to the server, failures are ignored
func (c *Client) Log(ctx context.Context, message, level string) {
	data, err := json.Marshal(models.LogRequest{Message: message, Level: level})
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.LogTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(router.LogPath), bytes.NewReader(data))
	if err != nil {
		return
	}
	req.Header.Set(contentTypeHeader, contentTypeJSON)

	resp, err := c.hc.Do(req)
	if err != nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func (c *Client) url(p string) string {
	return c.cfg.ServerAddress() + router.Percy(p)
}
