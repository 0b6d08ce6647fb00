package log

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogSink delivers a log line to the Percy CLI, implementations must not block for long.
type LogSink interface {
	Log(ctx context.Context, message, level string)
}

// RemoteCore is a zapcore.Core forwarding entries to a LogSink.
// Structured fields are appended to the message as key=value pairs.
type RemoteCore struct {
	zapcore.LevelEnabler
	sink   LogSink
	fields []zapcore.Field
}

func NewRemoteCore(sink LogSink, lvl zapcore.LevelEnabler) *RemoteCore {
	return &RemoteCore{
		LevelEnabler: lvl,
		sink:         sink,
	}
}

// WithRemote tees l with a RemoteCore, so every entry is also shipped to sink.
// The remote side receives all levels, the level of l only filters local output.
func WithRemote(l *zap.Logger, sink LogSink) *zap.Logger {
	remote := NewRemoteCore(sink, zapcore.DebugLevel)
	return l.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, remote)
	}))
}

func (c *RemoteCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(append([]zapcore.Field{}, c.fields...), fields...)
	return &clone
}

func (c *RemoteCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *RemoteCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	c.sink.Log(context.Background(), formatMessage(ent.Message, append(c.fields, fields...)), remoteLevel(ent.Level))
	return nil
}

func (*RemoteCore) Sync() error {
	return nil
}

func remoteLevel(lvl zapcore.Level) string {
	switch {
	case lvl <= zapcore.DebugLevel:
		return "debug"
	case lvl == zapcore.InfoLevel:
		return "info"
	case lvl == zapcore.WarnLevel:
		return "warn"
	default:
		return "error"
	}
}

func formatMessage(msg string, fields []zapcore.Field) string {
	if len(fields) == 0 {
		return msg
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	var sb strings.Builder
	sb.WriteString(msg)
	for _, f := range fields {
		v, ok := enc.Fields[f.Key]
		if !ok {
			continue
		}
		sb.WriteRune(' ')
		sb.WriteString(f.Key)
		sb.WriteRune('=')
		sb.WriteString(stringify(v))
	}
	return sb.String()
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
