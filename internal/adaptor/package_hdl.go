package adaptor

import (
	"net/http"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxPageSize = 100

type PackageHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.CatalogService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/packages?type=&featured=&limit=&offset=
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.PackageFilter{
		Type:         entity.PackageType(query.Get("type")),
		FeaturedOnly: query.Get("featured") == "true",
		Limit:        utils.ClampLimit(utils.ParseInt(query.Get("limit"), 20), maxPageSize),
		Offset:       utils.ParseOffset(query.Get("offset")),
	}

	response, err := h.service.ListPackages(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list packages")
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved", response)
}

// Featured handles GET /api/packages/featured
func (h *PackageHandler) Featured(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.FeaturedPackages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "featured packages")
		return
	}

	utils.ResponseSuccess(w, "Featured packages retrieved", response)
}

// GetByID handles GET /api/packages/{id}
func (h *PackageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid package id", nil)
		return
	}

	response, err := h.service.GetPackage(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get package")
		return
	}

	utils.ResponseSuccess(w, "Package retrieved", response)
}
