package handler

import (
	"net/http"
	"strconv"

	"ioi_scoring/internal/app/service"
	"ioi_scoring/internal/common"

	"github.com/go-chi/chi/v5"
)

type SubmissionHandler struct {
	scoringService *service.ScoringService
}

func NewSubmissionHandler(ss *service.ScoringService) *SubmissionHandler {
	return &SubmissionHandler{scoringService: ss}
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{submissionID}", h.getSubmissionDetail)
	r.Post("/{submissionID}/score", h.calculateScore)
}

func (h *SubmissionHandler) getSubmissionDetail(w http.ResponseWriter, r *http.Request) {
	submissionID, err := strconv.ParseInt(chi.URLParam(r, "submissionID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid submission id")
		return
	}
	includeCode := r.URL.Query().Get("include_code") == "true"

	detail, err := h.scoringService.GetSubmissionDetail(r.Context(), submissionID, includeCode)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, detail)
}

// calculateScore is invoked by the judging pipeline once a submission's test
// case results are in. Failures such as an unknown submission are reported in
// the response envelope, not as HTTP errors.
func (h *SubmissionHandler) calculateScore(w http.ResponseWriter, r *http.Request) {
	submissionID, err := strconv.ParseInt(chi.URLParam(r, "submissionID"), 10, 64)
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid submission id")
		return
	}

	resp, err := h.scoringService.CalculateSubmissionScore(r.Context(), submissionID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
