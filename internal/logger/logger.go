package logger

import (
	"os"
	"strings"

	"github.com/univoucher/univoucher-api/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the global logger instance
	Log *zap.Logger = zap.NewNop()
)

// Redacted replaces the value of any field whose key names secret material.
const Redacted = "[REDACTED]"

// sensitiveKeys are field keys that may carry card secrets or key material.
// Matching is case-insensitive on the whole key.
var sensitiveKeys = map[string]struct{}{
	"private_key":           {},
	"privatekey":            {},
	"card_secret":           {},
	"cardsecret":            {},
	"secret":                {},
	"encrypted_private_key": {},
	"encrypted_key":         {},
	"master_key":            {},
	"api_key":               {},
	"rpc_api_key":           {},
	"nonce":                 {},
}

// IsSensitiveKey reports whether a field with this key is redacted.
func IsSensitiveKey(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// InitLogger builds the global logger for stage. Production logs JSON;
// every other stage logs to a colored console. LOG_LEVEL overrides the level.
func InitLogger(stage string) {
	Log = newLogger(buildCore(stage, parseLevel(os.Getenv("LOG_LEVEL"))), stage)
}

func parseLevel(raw string) zapcore.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case constants.ErrorLevel:
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func buildCore(stage string, level zapcore.Level) zapcore.Core {
	var encoder zapcore.Encoder
	if stage == constants.ProdEnvironment {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "timestamp"
		cfg.MessageKey = "message"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeCaller = zapcore.ShortCallerEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
}

// newLogger wraps core with secret redaction and the service fields.
func newLogger(core zapcore.Core, stage string) *zap.Logger {
	options := []zap.Option{zap.AddCaller()}
	if stage != constants.ProdEnvironment {
		options = append(options, zap.AddStacktrace(zapcore.ErrorLevel))
	}
	return zap.New(&redactingCore{Core: core}, options...).
		With(zap.String("service", constants.ServiceName), zap.String("stage", stage))
}

// redactingCore rewrites sensitive fields before they reach the encoder,
// both for per-entry fields and for fields bound with With.
type redactingCore struct {
	zapcore.Core
}

func (c *redactingCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactingCore{Core: c.Core.With(redact(fields))}
}

func (c *redactingCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *redactingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(entry, redact(fields))
}

func redact(fields []zapcore.Field) []zapcore.Field {
	var out []zapcore.Field
	for i, f := range fields {
		if !IsSensitiveKey(f.Key) {
			continue
		}
		if out == nil {
			out = make([]zapcore.Field, len(fields))
			copy(out, fields)
		}
		out[i] = zap.String(f.Key, Redacted)
	}
	if out == nil {
		return fields
	}
	return out
}

func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

// Fatal logs and then calls os.Exit(1)
func Fatal(msg string, fields ...zapcore.Field) {
	Log.Fatal(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return Log.Sync()
}
