// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/naatukodi/catering/pkg/httpx"
	catalogdomain "github.com/naatukodi/catering/services/catalog/domain"
	ordersdomain "github.com/naatukodi/catering/services/orders/domain"
	areasdomain "github.com/naatukodi/catering/services/serviceareas/domain"
	usersdomain "github.com/naatukodi/catering/services/users/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrCatererNotFound),
		errors.Is(err, ordersdomain.ErrOrderNotFound),
		errors.Is(err, areasdomain.ErrServiceAreaNotFound),
		errors.Is(err, usersdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrCatalogItemExists),
		errors.Is(err, ordersdomain.ErrOrderExists),
		errors.Is(err, usersdomain.ErrUserExists),
		errors.Is(err, usersdomain.ErrEmailTaken),
		errors.Is(err, usersdomain.ErrPhoneTaken):
		return http.StatusConflict // 409
	default:
		return http.StatusInternalServerError // 500
	}
}
