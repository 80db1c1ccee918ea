package handler

import (
	"encoding/json"
	"net/http"
	"sysdesignlab/internal/api/middleware"
	"sysdesignlab/internal/app/service"
	"sysdesignlab/internal/common"

	"github.com/go-chi/chi/v5"
)

type EvaluationHandler struct {
	evaluationService *service.EvaluationService
}

func NewEvaluationHandler(es *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: es}
}

func (h *EvaluationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.evaluateDesign)
}

type evaluateRequest struct {
	DesignID  string `json:"design_id"`
	ProblemID string `json:"problem_id"`
}

func (h *EvaluationHandler) evaluateDesign(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.DesignID == "" || req.ProblemID == "" {
		common.RespondWithError(w, http.StatusBadRequest, "design_id and problem_id are required")
		return
	}

	result, err := h.evaluationService.EvaluateDesign(r.Context(), req.DesignID, req.ProblemID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithSuccess(w, http.StatusOK, result, "Design evaluated successfully")
}
