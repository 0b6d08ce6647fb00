package app

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/selebrow/percy-selenium/html"
	"github.com/selebrow/percy-selenium/internal/controllers"
	"github.com/selebrow/percy-selenium/internal/services/capture"
	"github.com/selebrow/percy-selenium/pkg/config"
	"github.com/selebrow/percy-selenium/pkg/log"
	"github.com/selebrow/percy-selenium/pkg/models"
	"github.com/selebrow/percy-selenium/pkg/signal"
)

var InitLog *zap.SugaredLogger

func InitLoggerFunc() *zap.Logger {
	logger := log.GetLogger()
	InitLog = logger.Sugar().Named("init")
	return logger
}

func InitConfigFunc() *config.ConfigViper {
	flags, exit, err := config.ParseCmdLine(pflag.CommandLine, os.Args[1:])
	if err != nil {
		InitLog.Fatalw("failed to parse command line", zap.Error(err))
	}
	if exit {
		os.Exit(1)
	}

	cfg, err := config.NewConfig(viper.GetViper(), flags)
	if err != nil {
		InitLog.Fatalw("failed to initialize configuration", zap.Error(err))
	}

	return cfg
}

func InitSignalHandlerFunc(_ config.StubConfig) *signal.Handler {
	l := log.GetLogger().Named("signal")
	return signal.NewHandler(5*time.Second, l)
}

func InitHealthProfileFunc(cfg config.StubConfig) *models.HealthProfile {
	profile, err := loadHealthProfile(cfg)
	if err != nil {
		InitLog.Fatalw("failed to load health profile", zap.Error(err))
	}
	InitLog.Infow("healthcheck profile loaded",
		zap.String("coreVersion", profile.CoreVersion),
		zap.String("type", string(profile.Type)),
		zap.Ints("mobileWidths", profile.Widths.Mobile),
		zap.Ints("configWidths", profile.Widths.Config),
	)
	return profile
}

// loadHealthProfile reads the profile file when configured, otherwise builds it from flags
func loadHealthProfile(cfg config.StubConfig) (*models.HealthProfile, error) {
	if path := cfg.HealthProfile(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		return models.ParseHealthProfile(data)
	}

	return &models.HealthProfile{
		CoreVersion: cfg.CoreVersion(),
		Type:        cfg.SessionType(),
		Widths: models.EligibleWidths{
			Mobile: cfg.MobileWidths(),
			Config: cfg.ConfigWidths(),
		},
		Config: map[string]interface{}{
			"percy": map[string]interface{}{
				"deferUploads": cfg.DeferUploads(),
			},
			"snapshot": map[string]interface{}{
				"widths":                    cfg.ConfigWidths(),
				"responsiveSnapshotCapture": cfg.ResponsiveSnapshotCapture(),
			},
		},
	}, nil
}

func initSnapshotStorage(sig *signal.Handler) *capture.LocalSnapshotStorage {
	l := log.GetLogger().Named("storage")

	s := capture.NewLocalSnapshotStorage(l)
	sig.RegisterShutdownHook("storage", s.Shutdown)
	return s
}

func initPercyController(svc controllers.CaptureService, l *zap.Logger) (*controllers.PercyController, error) {
	script, err := html.DOMScript(html.StaticFS())
	if err != nil {
		return nil, err
	}
	return controllers.NewPercyController(svc, script, l), nil
}

func initInfoController(info models.StubInfo) *controllers.InfoController {
	return controllers.NewInfoController(info.Name, info.GitRef, info.GitSha, info.CoreVersion)
}
