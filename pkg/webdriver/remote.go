package webdriver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"

	"github.com/selebrow/percy-selenium/internal/common/client"
	"github.com/selebrow/percy-selenium/pkg/models"
)

const (
	SessionPath       = "/session"
	executeSyncPath   = "/execute/sync"
	windowRectPath    = "/window/rect"
	cookiePath        = "/cookie"
	urlPath           = "/url"
	elementPath       = "/element"
	cdpExecutePath    = "/goog/cdp/execute"
	contentTypeHeader = "Content-Type"
	contentTypeJSON   = "application/json; charset=UTF-8"

	CSSSelector = "css selector"
	XPath       = "xpath"
)

// HTTPCommandExecutor sends W3C WebDriver commands to a remote endpoint
type HTTPCommandExecutor struct {
	addr   *url.URL
	client client.HTTPClient
}

func NewHTTPCommandExecutor(addr string, hc client.HTTPClient) (*HTTPCommandExecutor, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid WebDriver address %s", addr)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid WebDriver address %s", addr)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPCommandExecutor{addr: u, client: hc}, nil
}

func (e *HTTPCommandExecutor) RemoteAddress() (*url.URL, error) {
	u := *e.addr
	return &u, nil
}

// Execute sends a command and decodes the "value" of the response into result (may be nil)
func (e *HTTPCommandExecutor) Execute(ctx context.Context, method, p string, body, result interface{}) error {
	u := *e.addr
	u.Path = path.Join(u.Path, p)

	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to serialize WebDriver command")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set(contentTypeHeader, contentTypeJSON)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s %s response", method, u.String())
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var w3cErr models.W3CError
		if err := json.Unmarshal(data, &w3cErr); err == nil && w3cErr.Value.Error != "" {
			return w3cErr.WithCode(resp.StatusCode)
		}
		return errors.Errorf("%s %s failed with code %d: %s", method, u.String(), resp.StatusCode, string(data))
	}

	if result == nil {
		return nil
	}
	var res models.W3CResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return errors.Wrapf(err, "failed to parse %s %s response", method, u.String())
	}
	if len(res.Value) == 0 {
		return nil
	}
	return json.Unmarshal(res.Value, result)
}

// Remote is a Driver bound to a W3C WebDriver session
type Remote struct {
	id   string
	caps map[string]interface{}
	exec CommandExecutor
}

// NewSession creates a new WebDriver session
func NewSession(ctx context.Context, exec CommandExecutor, caps models.W3CCapabilities) (*Remote, error) {
	var res models.NewSessionValue
	if err := exec.Execute(ctx, http.MethodPost, SessionPath, models.NewSessionRequest{Capabilities: caps}, &res); err != nil {
		return nil, errors.Wrap(err, "failed to create WebDriver session")
	}
	if res.SessionID == "" {
		return nil, errors.New("failed to parse create session response: sessionId is missing")
	}
	return &Remote{id: res.SessionID, caps: res.Capabilities, exec: exec}, nil
}

// Attach binds to an existing session, caps are the capabilities the session was created with
func Attach(exec CommandExecutor, sessionID string, caps map[string]interface{}) *Remote {
	return &Remote{id: sessionID, caps: caps, exec: exec}
}

func (r *Remote) SessionID() (string, error) {
	if r.id == "" {
		return "", errors.New("WebDriver session id is not available")
	}
	return r.id, nil
}

func (r *Remote) Capabilities(_ context.Context) (map[string]interface{}, error) {
	if r.caps == nil {
		return nil, errors.Errorf("capabilities of session %s are unknown", r.id)
	}
	return maps.Clone(r.caps), nil
}

func (r *Remote) CommandExecutor() CommandExecutor {
	return r.exec
}

func (*Remote) DriverName() string {
	return "RemoteWebDriver"
}

func (r *Remote) ExecuteScript(ctx context.Context, script string, args []interface{}) (interface{}, error) {
	if args == nil {
		args = []interface{}{}
	}
	var res interface{}
	err := r.exec.Execute(ctx, http.MethodPost, r.sessionPath(executeSyncPath),
		models.ExecuteScriptRequest{Script: script, Args: args}, &res)
	return res, err
}

func (r *Remote) CurrentURL(ctx context.Context) (string, error) {
	var res string
	err := r.exec.Execute(ctx, http.MethodGet, r.sessionPath(urlPath), nil, &res)
	return res, err
}

func (r *Remote) WindowRect(ctx context.Context) (models.Rect, error) {
	var res models.Rect
	err := r.exec.Execute(ctx, http.MethodGet, r.sessionPath(windowRectPath), nil, &res)
	return res, err
}

// SetWindowRect resizes the window keeping its position, a non-positive dimension is left unchanged
func (r *Remote) SetWindowRect(ctx context.Context, rect models.Rect) error {
	body := make(map[string]interface{}, 2)
	if rect.Width > 0 {
		body["width"] = rect.Width
	}
	if rect.Height > 0 {
		body["height"] = rect.Height
	}
	var res models.Rect
	return r.exec.Execute(ctx, http.MethodPost, r.sessionPath(windowRectPath), body, &res)
}

func (r *Remote) Cookies(ctx context.Context) ([]models.Cookie, error) {
	var res []models.Cookie
	err := r.exec.Execute(ctx, http.MethodGet, r.sessionPath(cookiePath), nil, &res)
	return res, err
}

func (r *Remote) ExecuteCDP(ctx context.Context, cmd string, params interface{}) (map[string]interface{}, error) {
	var res map[string]interface{}
	err := r.exec.Execute(ctx, http.MethodPost, r.sessionPath(cdpExecutePath),
		models.CDPExecuteRequest{Cmd: cmd, Params: params}, &res)
	return res, err
}

// FindElement locates a single element, using is one of CSSSelector or XPath
func (r *Remote) FindElement(ctx context.Context, using, value string) (*RemoteElement, error) {
	var res map[string]interface{}
	body := map[string]string{"using": using, "value": value}
	if err := r.exec.Execute(ctx, http.MethodPost, r.sessionPath(elementPath), body, &res); err != nil {
		return nil, err
	}
	id, ok := models.ElementID(res)
	if !ok {
		return nil, errors.Errorf("unexpected find element response: %v", res)
	}
	return &RemoteElement{id: id}, nil
}

// Quit deletes the session
func (r *Remote) Quit(ctx context.Context) error {
	return r.exec.Execute(ctx, http.MethodDelete, r.sessionPath(""), nil, nil)
}

func (r *Remote) sessionPath(p string) string {
	return fmt.Sprintf("%s/%s%s", SessionPath, r.id, p)
}

type RemoteElement struct {
	id string
}

func NewRemoteElement(id string) *RemoteElement {
	return &RemoteElement{id: id}
}

func (e *RemoteElement) ID() string {
	return e.id
}

// MarshalJSON renders the element as a W3C element reference, so it can be passed to ExecuteScript
func (e *RemoteElement) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{models.W3CElementKey: e.id})
}
