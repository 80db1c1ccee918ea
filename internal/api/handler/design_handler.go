package handler

import (
	"encoding/json"
	"net/http"
	"sysdesignlab/internal/api/middleware"
	"sysdesignlab/internal/app/service"
	"sysdesignlab/internal/common"

	"github.com/go-chi/chi/v5"
)

type DesignHandler struct {
	designService *service.DesignService
}

func NewDesignHandler(ds *service.DesignService) *DesignHandler {
	return &DesignHandler{designService: ds}
}

func (h *DesignHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator) // All design routes require auth
	r.Post("/", h.createDesign)
	r.Get("/", h.getMyDesigns)
	r.Get("/{designID}", h.getDesign)
	r.Get("/problem/{problemID}", h.getDesignByProblem)
}

func (h *DesignHandler) createDesign(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateDesignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	design, err := h.designService.CreateDesign(r.Context(), userID, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithSuccess(w, http.StatusCreated, design, "Design saved successfully")
}

func (h *DesignHandler) getMyDesigns(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	designs, err := h.designService.GetUserDesigns(r.Context(), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithSuccess(w, http.StatusOK, designs, "")
}

func (h *DesignHandler) getDesign(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	design, err := h.designService.GetDesignByID(r.Context(), chi.URLParam(r, "designID"), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithSuccess(w, http.StatusOK, design, "")
}

func (h *DesignHandler) getDesignByProblem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	design, err := h.designService.GetDesignByProblem(r.Context(), chi.URLParam(r, "problemID"), userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithSuccess(w, http.StatusOK, design, "")
}
