package http

import (
	"errors"
	"net/http"

	"storefront-catalogue/internal/catalogue"
	pkgErrors "storefront-catalogue/pkg/errors"
)

var (
	errMissingSessionID = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
	errMissingKind      = pkgErrors.NewHTTPError(http.StatusBadRequest, "list kind is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Rejected edits keep their detail so clients can show it next to the field.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalogue.ErrUnknownKind):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "unknown list kind")
	case errors.Is(err, catalogue.ErrSessionNotFound), errors.Is(err, catalogue.ErrSessionClosed):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "session not found")
	case errors.Is(err, catalogue.ErrRejectedEdit):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, catalogue.ErrInvalidPage), errors.Is(err, catalogue.ErrNoEdits):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
