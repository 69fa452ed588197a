package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	log  *slog.Logger
	once sync.Once
)

// Init configures the process-wide logger. Development gets debug level,
// everything else info.
func Init(environment string) {
	level := slog.LevelInfo
	if environment == "development" {
		level = slog.LevelDebug
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
}

func std() *slog.Logger {
	once.Do(func() {
		if log == nil {
			log = slog.New(slog.NewJSONHandler(os.Stdout, nil))
		}
	})
	return log
}

func Debug(msg string, args ...any) {
	std().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	std().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	std().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	std().Error(msg, normalize(args)...)
}

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	std().Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize turns loose call-site arguments into slog key/value pairs.
// A bare error becomes an "error" attribute, a dangling value gets a
// generic key, string/value pairs pass through untouched.
func normalize(args []any) []any {
	out := make([]any, 0, len(args)*2)
	for i := 0; i < len(args); {
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			out = append(out, key, args[i+1])
			i += 2
			continue
		}
		if err, ok := args[i].(error); ok {
			out = append(out, "error", err)
			i++
			continue
		}
		out = append(out, "detail", args[i])
		i++
	}
	return out
}
