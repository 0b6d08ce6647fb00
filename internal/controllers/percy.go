package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/internal/router"
	"github.com/selebrow/percy-selenium/pkg/models"
)

const contentTypeJavaScript = "application/javascript; charset=utf-8"

type CaptureService interface {
	RecordSnapshot(payload map[string]interface{}) (*models.Response, error)
	RecordScreenshot(req *models.ScreenshotRequest) (*models.Response, error)
	RecordLog(req models.LogRequest)
	Snapshot(id string) (*models.CapturedSnapshot, error)
	Snapshots() []*models.CapturedSnapshot
	Logs() []models.CapturedLog
	Reset()
	Profile() *models.HealthProfile
}

// PercyController serves the local Percy CLI API
type PercyController struct {
	svc       CaptureService
	domScript []byte
	l         *zap.SugaredLogger
}

func NewPercyController(svc CaptureService, domScript []byte, l *zap.Logger) *PercyController {
	return &PercyController{
		svc:       svc,
		domScript: domScript,
		l:         l.Sugar(),
	}
}

func (p *PercyController) Healthcheck(c echo.Context) error {
	profile := p.svc.Profile()
	if profile.CoreVersion != "" {
		c.Response().Header().Set(router.CoreVersionHeader, profile.CoreVersion)
	}
	return c.JSON(http.StatusOK, profile.Response())
}

func (p *PercyController) DOMScript(c echo.Context) error {
	return c.Blob(http.StatusOK, contentTypeJavaScript, p.domScript)
}

func (p *PercyController) Snapshot(c echo.Context) error {
	var payload map[string]interface{}
	if err := c.Bind(&payload); err != nil {
		return models.NewHTTPError(http.StatusBadRequest, "failed to parse snapshot request: %v", err)
	}
	resp, err := p.svc.RecordSnapshot(payload)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (p *PercyController) AutomateScreenshot(c echo.Context) error {
	req := new(models.ScreenshotRequest)
	if err := c.Bind(req); err != nil {
		return models.NewHTTPError(http.StatusBadRequest, "failed to parse screenshot request: %v", err)
	}
	resp, err := p.svc.RecordScreenshot(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Log accepts SDK log lines and echoes them to the server log
func (p *PercyController) Log(c echo.Context) error {
	var req models.LogRequest
	if err := c.Bind(&req); err != nil {
		return models.NewHTTPError(http.StatusBadRequest, "failed to parse log request: %v", err)
	}
	p.svc.RecordLog(req)

	l := p.l.With(zap.String("remote_ip", c.RealIP()))
	switch req.Level {
	case "debug":
		l.Debug(req.Message)
	case "warn":
		l.Warn(req.Message)
	case "error":
		l.Error(req.Message)
	default:
		l.Info(req.Message)
	}
	return c.JSON(http.StatusOK, models.Response{Success: true})
}

func (p *PercyController) Snapshots(c echo.Context) error {
	return c.JSON(http.StatusOK, p.svc.Snapshots())
}

func (p *PercyController) GetSnapshot(c echo.Context) error {
	snap, err := p.svc.Snapshot(c.Param(router.SnapshotIDParam))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

func (p *PercyController) Logs(c echo.Context) error {
	return c.JSON(http.StatusOK, p.svc.Logs())
}

func (p *PercyController) Reset(c echo.Context) error {
	p.svc.Reset()
	return c.NoContent(http.StatusNoContent)
}
