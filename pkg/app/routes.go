package app

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/html"
	"github.com/selebrow/percy-selenium/internal/controllers"
	"github.com/selebrow/percy-selenium/internal/router"
	"github.com/selebrow/percy-selenium/pkg/config"
)

type (
	PercyController interface {
		Healthcheck(c echo.Context) error
		DOMScript(c echo.Context) error
		Snapshot(c echo.Context) error
		AutomateScreenshot(c echo.Context) error
		Log(c echo.Context) error
		Snapshots(c echo.Context) error
		GetSnapshot(c echo.Context) error
		Logs(c echo.Context) error
		Reset(c echo.Context) error
	}

	InfoController interface {
		Info(c echo.Context) error
	}
)

func initEcho(cfg config.StubConfig, l *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = controllers.ErrorHandler

	// Middleware
	InitMiddleware(cfg, e, l)
	return e
}

func InitMiddlewareFunc(_ config.StubConfig, e *echo.Echo, srvLogger *zap.Logger) {
	isAsset := func(c echo.Context) bool {
		p := c.Request().URL.Path
		return strings.HasPrefix(p, router.StaticRoot) || strings.HasPrefix(p, router.FixturesRoot)
	}

	isUI := func(c echo.Context) bool {
		return strings.HasPrefix(c.Request().URL.Path, router.UIRoot)
	}

	if srvLogger.Core().Enabled(zap.DebugLevel) {
		accLogger := srvLogger.Named("access").Sugar()
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper: func(c echo.Context) bool {
				return isAsset(c) || isUI(c)
			},
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				l := accLogger.With(zap.Time("start_time", v.StartTime),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.String("remote_ip", v.RemoteIP),
					zap.Duration("latency", v.Latency),
					zap.Int("status", v.Status))
				if v.Error != nil {
					l = l.With(zap.Error(v.Error))
				}
				l.Debug()
				return nil
			},
			LogLatency:   true,
			LogRemoteIP:  true,
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogError:     true,
			HandleError:  true,
			LogUserAgent: true,
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: true, // this will be handled by zap logger
		LogErrorFunc: func(c echo.Context, err error, _ []byte) error {
			srvLogger.With(zap.Error(err), zap.String("uri", c.Request().RequestURI)).Error("panic recovered")
			return err
		},
	}))
}

func InitAPIFunc(
	_ config.StubConfig,
	e *echo.Echo,
	percyController PercyController,
	infoController InfoController,
) {
	e.GET(router.InfoPath, infoController.Info)

	// SDKs running inside the browser call the API cross-origin
	percy := e.Group(router.PercyRoot, middleware.CORS())
	percy.GET(router.HealthcheckPath, percyController.Healthcheck)
	percy.GET(router.DOMScriptPath, percyController.DOMScript)
	percy.POST(router.SnapshotPath, percyController.Snapshot)
	percy.POST(router.AutomateScreenshotPath, percyController.AutomateScreenshot)
	percy.POST(router.LogPath, percyController.Log)
	percy.GET(router.SnapshotsPath, percyController.Snapshots)
	percy.DELETE(router.SnapshotsPath, percyController.Reset)
	percy.GET(router.SnapshotsPath+"/:"+router.SnapshotIDParam, percyController.GetSnapshot)
	percy.GET(router.LogsPath, percyController.Logs)
}

func initUI(cfg config.StubConfig, e *echo.Echo, svc controllers.CaptureService, l *zap.Logger) error {
	r, err := html.NewTemplateRenderer(html.TemplatesFS())
	if err != nil {
		return err
	}
	e.Renderer = r

	uictrl := controllers.NewUIController(svc, cfg.Listen())

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, router.UIRoot)
	})
	e.StaticFS(router.StaticRoot, echo.MustSubFS(html.StaticFS(), html.StaticFSRoot))

	ui := e.Group(router.UIRoot, middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusTemporaryRedirect,
	}))
	ui.GET("", uictrl.Index)
	ui.POST("/reset", uictrl.Reset)

	l.Sugar().Infof("UI initialized at %s", uictrl.URL())
	return nil
}

func initFixtures(e *echo.Echo) error {
	testApp, err := html.TestAppFS()
	if err != nil {
		return err
	}
	e.StaticFS(router.FixturesRoot+"/", testApp)
	return nil
}
