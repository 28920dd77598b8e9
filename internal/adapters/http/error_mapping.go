package httpadapter

import (
	"net/http"

	"github.com/mhire/seev-services/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrUnsupportedType):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrEmptyInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrExtraction):
		return http.StatusInternalServerError
	case domain.IsKind(err, domain.ErrUpstream):
		return http.StatusInternalServerError
	case domain.IsKind(err, domain.ErrValidation):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, mapErrorToHTTPStatus(err), err.Error())
}
