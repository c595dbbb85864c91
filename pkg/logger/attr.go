package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

func PharmacyID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("pharmacy_id", id)
}

func Role(role string) slog.Attr {
	return slog.String("role", role)
}

// ErrorKind records the classified kind of a failure.
func ErrorKind(kind string) slog.Attr {
	return slog.String("error_kind", kind)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
