package logger

import (
	"log/slog"
	"strconv"
)

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// AttemptID tags every record of one registration attempt.
func AttemptID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("attempt_id", id)
}

// Strategy records the validation strategy in use.
func Strategy(name string) slog.Attr {
	return slog.String("strategy", name)
}

// Country records the submitted country. Names are never logged.
func Country(country string) slog.Attr {
	return slog.String("country", country)
}

// Region records the resolved region name.
func Region(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("region", name)
}

// ValidationMessages records validation failures in evaluation order.
// An empty list yields an empty Attr.
func ValidationMessages(messages []string) slog.Attr {
	if len(messages) == 0 {
		return slog.Attr{}
	}
	return slog.Any("validation", messages)
}
