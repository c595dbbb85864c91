package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/pharmagarde/pharmagarde/pkg/apperror"
)

// TranslateError turns driver failures into coded errors the classifier
// understands. Errors it does not recognise are returned unchanged.
func TranslateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperror.Remote(apperror.CodeNotFound, "", err)
	case mongo.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return apperror.Remote(apperror.CodeDeadlineExceeded, "", err)
	case mongo.IsNetworkError(err):
		return apperror.Remote(apperror.KindUnavailable.String(), "", err)
	default:
		return err
	}
}
