package account

import (
	"errors"

	"github.com/pharmagarde/pharmagarde/pkg/apperror"
)

// Storage errors.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

var ErrInvalidRole = errors.New("invalid role")

func coded(kind apperror.Kind, cause error) error {
	return apperror.Remote(kind.String(), "", cause)
}
