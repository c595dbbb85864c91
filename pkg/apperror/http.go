package apperror

import "net/http"

// HTTPStatus maps a kind to the status code used by the JSON API.
func HTTPStatus(k Kind) int {
	switch k {
	case KindUserNotFound, KindWrongPassword:
		return http.StatusUnauthorized
	case KindEmailAlreadyInUse:
		return http.StatusConflict
	case KindWeakPassword, KindInvalidEmail:
		return http.StatusUnprocessableEntity
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindFailedPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
