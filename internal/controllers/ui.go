package controllers

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/selebrow/percy-selenium/internal/router"
	"github.com/selebrow/percy-selenium/pkg/models"
)

type UIController struct {
	svc CaptureService
	url string
}

type indexData struct {
	CoreVersion string
	Type        string
	Widths      models.EligibleWidths
	Snapshots   []snapshotItem
	Logs        []logItem
	ResetLink   string
}

type snapshotItem struct {
	ID         string
	Name       string
	Kind       string
	URL        string
	Widths     []int
	ReceivedAt string
	Link       string
}

type logItem struct {
	ReceivedAt string
	Level      string
	Message    string
}

func NewUIController(svc CaptureService, listen string) *UIController {
	return &UIController{
		svc: svc,
		url: getURL(listen),
	}
}

func (u *UIController) Index(c echo.Context) error {
	profile := u.svc.Profile()
	snapshots := u.svc.Snapshots()
	logs := u.svc.Logs()

	data := &indexData{
		CoreVersion: profile.CoreVersion,
		Type:        string(profile.Type),
		Widths:      profile.Widths,
		Snapshots:   make([]snapshotItem, len(snapshots)),
		Logs:        make([]logItem, len(logs)),
		ResetLink:   path.Join(router.UIRoot, "reset"),
	}
	for i, s := range snapshots {
		data.Snapshots[i] = snapshotItem{
			ID:         s.ID,
			Name:       s.Name,
			Kind:       string(s.Kind),
			URL:        s.URL,
			Widths:     s.Widths,
			ReceivedAt: s.Received.Format(time.DateTime),
			Link:       router.Percy(path.Join(router.SnapshotsPath, s.ID)),
		}
	}
	for i, l := range logs {
		data.Logs[i] = logItem{
			ReceivedAt: l.Received.Format(time.DateTime),
			Level:      l.Level,
			Message:    l.Message,
		}
	}
	return c.Render(http.StatusOK, "snapshots.tmpl", data)
}

func (u *UIController) Reset(c echo.Context) error {
	u.svc.Reset()
	return c.Redirect(http.StatusSeeOther, router.UIRoot)
}

func (u *UIController) URL() string {
	return u.url
}

func getURL(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return listen
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}

	hostport := host
	if port != "" {
		iPort, err := net.DefaultResolver.LookupPort(context.Background(), "tcp", port)
		if err != nil {
			return listen
		}
		hostport = fmt.Sprintf("%s:%d", host, iPort)
	}

	u := url.URL{
		Scheme: "http",
		Host:   hostport,
		Path:   router.UIRoot,
	}
	return u.String()
}
