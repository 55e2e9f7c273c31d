package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"churchplus-backend/internal/service"
	"churchplus-backend/internal/validation"
)

type ContributionHandler struct {
	contributionSvc service.ContributionService
}

func NewContributionHandler(contributionSvc service.ContributionService) *ContributionHandler {
	return &ContributionHandler{contributionSvc: contributionSvc}
}

func (h *ContributionHandler) CreateContribution(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req createContributionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	contribution, err := h.contributionSvc.Create(r.Context(), req.toDomain(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"savedFinancialContribution": contribution})
}

func (h *ContributionHandler) ListContributionsByDate(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	from, to, err := dateRangeFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	contributions, err := h.contributionSvc.ListByDateRange(r.Context(), from, to, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contributions": contributions})
}

func (h *ContributionHandler) GetContributionSummary(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	from, to, err := dateRangeFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	totals, err := h.contributionSvc.MonthlySummary(r.Context(), from, to, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"summary": totals})
}

func (h *ContributionHandler) ListContributionSnapshots(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	year := time.Now().UTC().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil || year < 1 {
			writeErrorMessage(w, http.StatusBadRequest, "invalid year")
			return
		}
	}

	snapshots, err := h.contributionSvc.ListSnapshots(r.Context(), year, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"snapshots": snapshots})
}

func (h *ContributionHandler) GetContribution(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	contribution, err := h.contributionSvc.GetByID(r.Context(), mux.Vars(r)["contributionId"], ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contribution": contribution})
}

func (h *ContributionHandler) ListContributionsByMember(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	contributions, err := h.contributionSvc.ListByMember(r.Context(), mux.Vars(r)["memberId"], ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"contributions": contributions})
}

func (h *ContributionHandler) UpdateContribution(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req updateContributionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	contribution, err := h.contributionSvc.Update(r.Context(), mux.Vars(r)["id"], req.toDomain(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updatedFinancialContribution": contribution})
}

func (h *ContributionHandler) DeleteContribution(w http.ResponseWriter, r *http.Request) {
	ownerID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	if err := h.contributionSvc.Delete(r.Context(), mux.Vars(r)["id"], ownerID); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Financial contribution deleted.")
}

// dateRangeFromQuery reads fromDate and toDate. A bare calendar toDate
// covers that whole day.
func dateRangeFromQuery(r *http.Request) (time.Time, time.Time, error) {
	q := r.URL.Query()
	rawFrom := strings.TrimSpace(q.Get("fromDate"))
	rawTo := strings.TrimSpace(q.Get("toDate"))
	if rawFrom == "" || rawTo == "" {
		return time.Time{}, time.Time{}, errMissingParameter
	}

	if err := validation.ValidateDate("fromDate", rawFrom); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if err := validation.ValidateDate("toDate", rawTo); err != nil {
		return time.Time{}, time.Time{}, err
	}

	from, _ := validation.ParseDate(rawFrom)
	to, _ := validation.ParseDate(rawTo)
	if len(rawTo) == len("2006-01-02") {
		to = to.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	return from, to, nil
}
