package log

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/selebrow/percy-selenium/pkg/config"
)

const (
	encodingJSON    = "json"
	encodingConsole = "console"

	// Label names the root logger, console output shows it as [percy] or [percy:<component>]
	Label = "percy"
)

var (
	SetupLogger = NewConsoleLogger

	once   sync.Once
	logger *zap.Logger
)

func GetLogger() *zap.Logger {
	once.Do(func() {
		logger = SetupLogger()
	})
	return logger
}

// NewConsoleLogger is driven by PERCY_LOGLEVEL, PERCY_LOG_FORMAT and PERCY_LOG_OUTPUT.
// Output goes to stdout unless PERCY_LOG_OUTPUT names a path.
func NewConsoleLogger() *zap.Logger {
	lvl := getLogLevel()
	output := os.Getenv(envName("LOG_OUTPUT"))
	format := strings.ToLower(os.Getenv(envName("LOG_FORMAT")))

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = lvl >= zap.InfoLevel
	zc.DisableCaller = lvl >= zap.InfoLevel
	zc.OutputPaths = []string{"stdout"}
	if output != "" {
		zc.OutputPaths = []string{output}
	}
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var opts []zap.Option
	switch format {
	case encodingJSON:
		zc.Encoding = encodingJSON
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		zc.EncoderConfig.TimeKey = "@timestamp"
		zc.EncoderConfig.MessageKey = "message"
	default:
		zc.Encoding = encodingConsole
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		zc.EncoderConfig.EncodeName = encodeLabel
		if output == "" {
			zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			if runtime.GOOS == "windows" {
				opts = append(opts, zap.WrapCore(func(_ zapcore.Core) zapcore.Core {
					return zapcore.NewCore(
						zapcore.NewConsoleEncoder(zc.EncoderConfig),
						zapcore.AddSync(colorable.NewColorableStdout()),
						lvl,
					)
				}))
			}
		}
	}

	z, err := zc.Build(opts...)
	if err != nil {
		panic(err)
	}

	return z.Named(Label)
}

func encodeLabel(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + strings.ReplaceAll(name, ".", ":") + "]")
}

func getLogLevel() zapcore.Level {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return zap.InfoLevel
	}
	return cfg.LogLevel()
}

func envName(suffix string) string {
	return fmt.Sprintf("%s_%s", config.ConfigPrefix, suffix)
}
