package handler

import (
	"errors"
	"net/http"

	"github.com/pharmagarde/pharmagarde/pkg/apperror"
	"github.com/pharmagarde/pharmagarde/pkg/binder"
	"github.com/pharmagarde/pharmagarde/pkg/validator"
)

// Codes of failures that are not classified remote errors.
const (
	CodeValidation     = "validation_error"
	CodeInvalidRequest = "invalid_request"
	CodeUnauthorized   = "unauthorized"
	CodeNotFound       = apperror.CodeNotFound
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrNotFound     = errors.New("resource not found")
)

const (
	msgValidation   = "Veuillez corriger les erreurs du formulaire"
	msgBadRequest   = "Requête invalide"
	msgUnauthorized = "Authentification requise"
	msgNotFound     = "Ressource introuvable"
)

func errorToDetail(err error) (int, *ErrorDetail) {
	if ve := validator.ExtractValidationErrors(err); ve != nil {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    CodeValidation,
			Message: msgValidation,
			Details: ve.Map(),
		}
	}

	switch {
	case binder.IsBindingError(err):
		return http.StatusBadRequest, &ErrorDetail{Code: CodeInvalidRequest, Message: msgBadRequest}
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, &ErrorDetail{Code: CodeUnauthorized, Message: msgUnauthorized}
	case errors.Is(err, ErrNotFound), apperror.CodeOf(err) == apperror.CodeNotFound:
		return http.StatusNotFound, &ErrorDetail{Code: CodeNotFound, Message: msgNotFound}
	}

	classified := apperror.Classify(err)
	if classified.Kind == apperror.KindUnknown {
		// Raw messages of unknown failures stay in the logs.
		return http.StatusInternalServerError, &ErrorDetail{
			Code:      classified.Kind.String(),
			Message:   apperror.GenericMessage,
			Retryable: apperror.IsTransient(err),
		}
	}
	return apperror.HTTPStatus(classified.Kind), &ErrorDetail{
		Code:      classified.Kind.String(),
		Message:   classified.Message,
		Retryable: apperror.IsTransient(err),
	}
}
