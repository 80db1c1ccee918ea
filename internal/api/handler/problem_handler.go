package handler

import (
	"net/http"
	"sysdesignlab/internal/api/middleware"
	"sysdesignlab/internal/app/service"
	"sysdesignlab/internal/common"

	"github.com/go-chi/chi/v5"
)

type ProblemHandler struct {
	problemService *service.ProblemService
}

func NewProblemHandler(ps *service.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: ps}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator) // Role decides pro-problem visibility

	r.Get("/", h.listProblems)          // GET /api/v1/problems
	r.Get("/{problemID}", h.getProblem) // GET /api/v1/problems/{id}
}

func (h *ProblemHandler) listProblems(w http.ResponseWriter, r *http.Request) {
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())

	problems, err := h.problemService.ListProblems(r.Context(), userRole)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithSuccess(w, http.StatusOK, problems, "")
}

func (h *ProblemHandler) getProblem(w http.ResponseWriter, r *http.Request) {
	problemID := chi.URLParam(r, "problemID")
	userRole, _ := middleware.GetUserRoleFromContext(r.Context())

	problem, err := h.problemService.GetProblem(r.Context(), problemID, userRole)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithSuccess(w, http.StatusOK, problem, "")
}
