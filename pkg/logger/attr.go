package logger

import (
	"log/slog"
	"time"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Mask records a field name such as "cpf" or "money".
func Mask(name string) slog.Attr {
	return slog.String("mask", name)
}

// Pattern records a mask pattern source.
func Pattern(src string) slog.Attr {
	return slog.String("pattern", src)
}

// Region records an IE region code; empty codes are dropped.
func Region(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("region", code)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
