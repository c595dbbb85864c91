package apperror

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type coder interface {
	Code() string
}

// Classify maps any failure to a classified error. It never fails.
// A nil error yields an unknown error with the generic message.
func Classify(err error) *Error {
	if err == nil {
		return &Error{Kind: KindUnknown, Message: GenericMessage}
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	code := CodeOf(err)
	if kind, ok := ParseKind(code); ok {
		return &Error{Kind: kind, Code: code, Message: kind.Message(), cause: err}
	}

	msg := err.Error()
	if strings.TrimSpace(msg) == "" {
		msg = GenericMessage
	}
	return &Error{Kind: KindUnknown, Code: code, Message: msg, Details: err, cause: err}
}

// IsTransient reports whether the failure indicates lost connectivity or an
// unavailable server.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	switch CodeOf(err) {
	case KindUnavailable.String(), CodeDeadlineExceeded:
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "network") || strings.Contains(msg, "offline")
}

// Retryable reports whether err is worth another attempt. Known failures
// other than an unavailable backend are deterministic and are not retried,
// and neither is a missing document.
func Retryable(err error) bool {
	if err == nil || CodeOf(err) == CodeNotFound {
		return false
	}
	kind := Classify(err).Kind
	return kind == KindUnknown || kind == KindUnavailable
}

// CodeOf extracts the remote code carried by err, or "" when there is none.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}

	var classified *Error
	if errors.As(err, &classified) {
		if classified.Code != "" {
			return classified.Code
		}
		return classified.Kind.String()
	}

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.OK && st.Code() != codes.Unknown {
		return grpcCode(st.Code())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return CodeDeadlineExceeded
	}
	return ""
}

// grpcCode renders a canonical gRPC code in the kebab-case form used by
// document-store backends, e.g. PermissionDenied -> "permission-denied".
func grpcCode(c codes.Code) string {
	name := c.String()
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
