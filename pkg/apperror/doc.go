// Package apperror turns failures coming back from the remote backend
// (document store, auth provider, gRPC services) into stable, displayable
// errors.
//
// Remote failures are expected to optionally expose a code through a
// Code() string method and a message through Error(). Classify looks the code
// up in a closed set of known kinds, each with a French user-facing message.
// Anything else collapses into KindUnknown carrying the raw message.
//
// # Usage
//
//	user, err := retry.Do(ctx, r, signUp)
//	if err != nil {
//		appErr := apperror.Classify(err)
//		render(appErr.Kind.String(), appErr.Message)
//	}
//
// IsTransient reports whether a failure looks like lost connectivity or an
// unavailable server, so callers can offer a manual retry.
package apperror
