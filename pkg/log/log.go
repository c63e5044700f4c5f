package log

import (
	"context"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é a fachada usada pelo restante da aplicação
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Debugf(format string, args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatal(args ...any)
}

type contextKey string

const (
	correlationIDKey contextKey = "correlation_id"
	subjectKey       contextKey = "login_id"
)

type logger struct {
	entry *logrus.Entry
}

// L é a instância global, configurada por Setup
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

var production atomic.Bool

// Setup define formato e nível dos logs. Em produção a saída é JSON; nos demais
// ambientes, texto com timestamp completo. Nível inválido cai para info.
func Setup(level, env string) {
	production.Store(env == "production" || env == "prod")

	base := logrus.StandardLogger()
	base.SetOutput(os.Stdout)

	if production.Load() {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		base.SetLevel(logrus.InfoLevel)
		base.WithField("log_level", level).Warn("Nível de log inválido, usando info")
	} else {
		base.SetLevel(parsed)
	}

	L = &logger{entry: logrus.NewEntry(base)}
}

// IsProduction reflete o ambiente informado no último Setup
func IsProduction() bool {
	return production.Load()
}

func (l *logger) WithField(key string, value any) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext anexa correlation_id e login_id quando presentes no contexto
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	fields := logrus.Fields{}
	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		fields[string(correlationIDKey)] = correlationID
	}
	if loginID, ok := ctx.Value(subjectKey).(int64); ok {
		fields[string(subjectKey)] = loginID
	}

	if len(fields) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithContext(ctx).WithFields(fields)}
}

func (l *logger) Debug(args ...any)                 { l.entry.Debug(args...) }
func (l *logger) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *logger) Info(args ...any)                  { l.entry.Info(args...) }
func (l *logger) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *logger) Warn(args ...any)                  { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...any)                 { l.entry.Error(args...) }
func (l *logger) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }
func (l *logger) Fatal(args ...any)                 { l.entry.Fatal(args...) }

// WithCorrelationID gera um novo ID de correlação e o grava no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, correlationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithSubject registra no contexto o login autenticado, para aparecer nos logs
func WithSubject(ctx context.Context, loginID int64) context.Context {
	return context.WithValue(ctx, subjectKey, loginID)
}

// ForContext cria um logger com os campos de rastreio do contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
