package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePackage(r chi.Router, packageHandler *adaptor.PackageHandler) {
	// All catalog reads are public. Order matters: /featured must register
	// before the {id} wildcard.
	r.Get("/api/packages", packageHandler.List)
	r.Get("/api/packages/featured", packageHandler.Featured)
	r.Get("/api/packages/{id}", packageHandler.GetByID)
}
