package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ioi_scoring/internal/api/middleware"
	"ioi_scoring/internal/app/service"
	"ioi_scoring/internal/common"

	"github.com/go-chi/chi/v5"
)

type ScoringConfigHandler struct {
	configService *service.ProblemConfigService
}

func NewScoringConfigHandler(cs *service.ProblemConfigService) *ScoringConfigHandler {
	return &ScoringConfigHandler{configService: cs}
}

func (h *ScoringConfigHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{problemID}/scoring-config", h.getConfig)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.Authenticator)
		admin.Use(middleware.AdminOnly)
		admin.Put("/{problemID}/scoring-config", h.configureProblem)
	})
}

func (h *ScoringConfigHandler) configureProblem(w http.ResponseWriter, r *http.Request) {
	problemID, err := strconv.ParseInt(chi.URLParam(r, "problemID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid problem id")
		return
	}

	var req service.ConfigureProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	req.ProblemID = problemID

	resp, err := h.configService.ConfigureProblem(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ScoringConfigHandler) getConfig(w http.ResponseWriter, r *http.Request) {
	problemID, err := strconv.ParseInt(chi.URLParam(r, "problemID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid problem id")
		return
	}

	cfg, err := h.configService.GetProblemConfig(r.Context(), problemID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, cfg)
}
