package app

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/internal/services/capture"
	"github.com/selebrow/percy-selenium/pkg/config"
	"github.com/selebrow/percy-selenium/pkg/models"
	"github.com/selebrow/percy-selenium/pkg/signal"
)

var (
	InitLogger        func() *zap.Logger                                                   = InitLoggerFunc
	InitConfig        func() *config.ConfigViper                                           = InitConfigFunc
	InitSignalHandler func(config.StubConfig) *signal.Handler                              = InitSignalHandlerFunc
	InitHealthProfile func(config.StubConfig) *models.HealthProfile                        = InitHealthProfileFunc
	InitMiddleware    func(config.StubConfig, *echo.Echo, *zap.Logger)                     = InitMiddlewareFunc
	InitAPI           func(config.StubConfig, *echo.Echo, PercyController, InfoController) = InitAPIFunc
)

// Run starts the Percy CLI stub server and blocks until it is stopped
func Run(gitRef, gitSha, appName string) {
	l := InitLogger()
	mainLog := l.Sugar().Named("app")
	appVersion := fmt.Sprintf("%s-%s", gitRef, gitSha)
	mainLog.Infof("starting %s build %s (%s/%s)", appName, appVersion, runtime.GOOS, runtime.GOARCH)

	cfg := InitConfig()
	sig := InitSignalHandler(cfg)
	profile := InitHealthProfile(cfg)
	storage := initSnapshotStorage(sig)

	info := models.StubInfo{
		Name:        appName,
		GitRef:      gitRef,
		GitSha:      gitSha,
		CoreVersion: profile.CoreVersion,
	}
	srvLog := l.Named("server")
	e, err := NewServer(cfg, profile, storage, info, srvLog)
	if err != nil {
		mainLog.Fatalw("failed to initialize the server", zap.Error(err))
	}

	go func() {
		sl := srvLog.Sugar()
		sl.Infof("listening on %s", cfg.Listen())
		if err := e.Start(cfg.Listen()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sl.Fatalw("failed to start the server", zap.Error(err))
		}
	}()

	sig.RegisterShutdownHook("server", e.Shutdown)
	os.Exit(sig.Start())
}

// NewServer wires Percy API, UI and fixture routes around the given storage
func NewServer(
	cfg config.StubConfig,
	profile *models.HealthProfile,
	storage capture.SnapshotStorage,
	info models.StubInfo,
	l *zap.Logger,
) (*echo.Echo, error) {
	svc := capture.NewCaptureService(storage, profile, time.Now, uuid.NewString, l.Named("capture"))

	percyController, err := initPercyController(svc, l.Named("sdk"))
	if err != nil {
		return nil, err
	}
	infoController := initInfoController(info)

	e := initEcho(cfg, l)
	if err := initUI(cfg, e, svc, l); err != nil {
		return nil, err
	}
	if err := initFixtures(e); err != nil {
		return nil, err
	}
	InitAPI(cfg, e, percyController, infoController)
	return e, nil
}
