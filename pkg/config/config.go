package config

import (
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/selebrow/percy-selenium/pkg/models"
)

var ConfigPrefix = "PERCY"

const (
	DefaultServerAddress = "http://localhost:5338"
	DefaultStubListen    = "127.0.0.1:5338"
	DefaultCoreVersion   = "1.28.0"

	DefaultResizePollInterval = 50 * time.Millisecond

	serverAddress      = "server-address"
	logLevel           = "loglevel"
	captureSleepTime   = "responsive-capture-sleep-time"
	healthcheckTimeout = "healthcheck-timeout"
	postTimeout        = "post-timeout"
	logTimeout         = "log-timeout"
	resizeTimeout      = "resize-timeout"
	resizePollInterval = "resize-poll-interval"

	listen        = "listen"
	coreVersion   = "core-version"
	sessionType   = "session-type"
	mobileWidths  = "mobile-widths"
	configWidths  = "config-widths"
	healthProfile = "health-profile"
	deferUploads  = "defer-uploads"
	responsiveCap = "responsive-snapshot-capture"
)

var (
	envReplacer = strings.NewReplacer("-", "_")

	validSessionTypes     = []models.SessionType{models.SessionTypeWeb, models.SessionTypeAutomate}
	validSessionTypesHelp = quoteStrings(validSessionTypes)
)

type (
	ServerConfig interface {
		ServerAddress() string
		HealthcheckTimeout() time.Duration
		PostTimeout() time.Duration
		LogTimeout() time.Duration
		LogLevel() zapcore.Level
	}

	CaptureConfig interface {
		ResponsiveCaptureSleepTime() time.Duration
		ResizeTimeout() time.Duration
		ResizePollInterval() time.Duration
	}

	StubConfig interface {
		Listen() string
		CoreVersion() string
		SessionType() models.SessionType
		MobileWidths() []int
		ConfigWidths() []int
		HealthProfile() string
		DeferUploads() bool
		ResponsiveSnapshotCapture() bool
	}

	Config interface {
		ServerConfig
		CaptureConfig
	}

	ConfigViper struct {
		v           *viper.Viper
		sessionType models.SessionType
	}
)

// NewConfig builds SDK configuration from environment variables, f may be nil.
func NewConfig(v *viper.Viper, f *pflag.FlagSet) (*ConfigViper, error) {
	if f != nil {
		if err := v.BindPFlags(f); err != nil {
			return nil, err
		}
	}
	if err := bindEnvVars(v); err != nil {
		return nil, err
	}
	setDefaults(v)

	st := models.SessionType(strings.ToLower(v.GetString(sessionType)))
	if st != "" && !slices.Contains(validSessionTypes, st) {
		return nil, errors.Errorf("invalid session type specified (%s), valid options are: %s", st, validSessionTypesHelp)
	}

	return &ConfigViper{
		v:           v,
		sessionType: st,
	}, nil
}

// DefaultConfig reads configuration from the process environment only.
func DefaultConfig() (*ConfigViper, error) {
	return NewConfig(viper.New(), nil)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(serverAddress, DefaultServerAddress)
	v.SetDefault(logLevel, "info")
	v.SetDefault(healthcheckTimeout, time.Second)
	v.SetDefault(postTimeout, 10*time.Minute)
	v.SetDefault(logTimeout, time.Second)
	v.SetDefault(resizeTimeout, time.Second)
	v.SetDefault(resizePollInterval, DefaultResizePollInterval)
}

func (c *ConfigViper) ServerAddress() string {
	return strings.TrimRight(c.v.GetString(serverAddress), "/")
}

func (c *ConfigViper) HealthcheckTimeout() time.Duration {
	return c.v.GetDuration(healthcheckTimeout)
}

func (c *ConfigViper) PostTimeout() time.Duration {
	return c.v.GetDuration(postTimeout)
}

func (c *ConfigViper) LogTimeout() time.Duration {
	return c.v.GetDuration(logTimeout)
}

func (c *ConfigViper) LogLevel() zapcore.Level {
	return ZapLogLevel(c.v.GetString(logLevel), zap.InfoLevel)
}

// ResponsiveCaptureSleepTime is the settle delay applied after every resize, configured in seconds.
func (c *ConfigViper) ResponsiveCaptureSleepTime() time.Duration {
	secs := c.v.GetFloat64(captureSleepTime)
	if secs <= 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}

func (c *ConfigViper) ResizeTimeout() time.Duration {
	return c.v.GetDuration(resizeTimeout)
}

// ResizePollInterval falls back to the default when configured with a non-positive value
func (c *ConfigViper) ResizePollInterval() time.Duration {
	if d := c.v.GetDuration(resizePollInterval); d > 0 {
		return d
	}
	return DefaultResizePollInterval
}

func (c *ConfigViper) Listen() string {
	return c.v.GetString(listen)
}

func (c *ConfigViper) CoreVersion() string {
	return c.v.GetString(coreVersion)
}

func (c *ConfigViper) SessionType() models.SessionType {
	return c.sessionType
}

func (c *ConfigViper) MobileWidths() []int {
	return c.v.GetIntSlice(mobileWidths)
}

func (c *ConfigViper) ConfigWidths() []int {
	return c.v.GetIntSlice(configWidths)
}

func (c *ConfigViper) HealthProfile() string {
	return c.v.GetString(healthProfile)
}

func (c *ConfigViper) DeferUploads() bool {
	return c.v.GetBool(deferUploads)
}

func (c *ConfigViper) ResponsiveSnapshotCapture() bool {
	return c.v.GetBool(responsiveCap)
}

func bindEnvVars(v *viper.Viper) error {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(ConfigPrefix)

	// these names are shared with the other Percy SDKs and don't follow the prefix rule
	if err := v.BindEnv(logLevel, "PERCY_LOGLEVEL"); err != nil {
		return err
	}
	return v.BindEnv(captureSleepTime, "RESPONSIVE_CAPTURE_SLEEP_TIME", "RESONSIVE_CAPTURE_SLEEP_TIME")
}

func quoteStrings[T ~string](vals []T) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteRune('"')
		sb.WriteString(string(v))
		sb.WriteRune('"')
	}
	return sb.String()
}

var logLevelMap = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"warn":  zap.WarnLevel,
	"error": zap.ErrorLevel,
}

func ZapLogLevel(strLevel string, defaultLevel zapcore.Level) zapcore.Level {
	if lvl, ok := logLevelMap[strings.ToLower(strLevel)]; ok {
		return lvl
	}
	return defaultLevel
}
