package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kundurahul/peace-trail-backend/internal/infra/http/middleware"
	"github.com/kundurahul/peace-trail-backend/internal/usecase"
)

type PackageHandler struct {
	ListUC *usecase.ListPackagesUseCase
}

func NewPackageHandler(listUC *usecase.ListPackagesUseCase) *PackageHandler {
	return &PackageHandler{ListUC: listUC}
}

func (h *PackageHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	packages, err := h.ListUC.All()
	if err != nil {
		middleware.RecordIntegrationError("sheet")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, packages)
}

func (h *PackageHandler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	packages, err := h.ListUC.Featured()
	if err != nil {
		middleware.RecordIntegrationError("sheet")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, packages)
}

func (h *PackageHandler) HandleByID(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.ListUC.ByID(chi.URLParam(r, "id"))
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Package not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}
