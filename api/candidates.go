package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/rskd/talent/pkg/models"
	"github.com/rskd/talent/pkg/repository"
)

type CandidatesHandler struct {
	repo repository.CandidateRepo
}

func NewCandidatesHandler(repo repository.CandidateRepo) *CandidatesHandler {
	return &CandidatesHandler{repo: repo}
}

func candidateID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// ListCandidates handles GET /candidates/ with skip/limit/search/sort_by/
// sort_desc/stage query parameters. Stage values other than the reserved
// "all"/"accepted"/"rejected" keywords are accepted and ignored; the shipped
// frontend depends on that behavior.
func (h *CandidatesHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	listQ := repository.ListQuery{
		Skip:   0,
		Limit:  100,
		Search: q.Get("search"),
		SortBy: q.Get("sort_by"),
		Stage:  q.Get("stage"),
	}
	if s := q.Get("skip"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			listQ.Skip = v
		}
	}
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			listQ.Limit = v
		}
	}
	if d := q.Get("sort_desc"); d != "" {
		if v, err := strconv.ParseBool(d); err == nil {
			listQ.SortDesc = v
		}
	}

	candidates, err := h.repo.ListCandidates(r.Context(), listQ)
	if err != nil {
		logger.Error("list candidates", slog.Any("err", err), slog.String("request_id", requestID(r)))
		writeError(w, "failed to list candidates", http.StatusInternalServerError)
		return
	}

	writeJSON(w, candidates, http.StatusOK)
}

func (h *CandidatesHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := candidateID(r)
	if err != nil {
		writeError(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	c, err := h.repo.GetCandidate(r.Context(), id)
	if err != nil {
		h.storeError(w, r, err, "get candidate")
		return
	}

	writeJSON(w, c, http.StatusOK)
}

func (h *CandidatesHandler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := validateCreatePayload(r.Context(), body); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var draft models.CandidateDraft
	if err := json.Unmarshal(body, &draft); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	c, err := h.repo.CreateCandidate(r.Context(), &draft, time.Now())
	if err != nil {
		logger.Error("create candidate", slog.Any("err", err), slog.String("request_id", requestID(r)))
		writeError(w, "failed to create candidate", http.StatusInternalServerError)
		return
	}

	writeJSON(w, c, http.StatusCreated)
}

func (h *CandidatesHandler) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := candidateID(r)
	if err != nil {
		writeError(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	var upd models.CandidateUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	c, err := h.repo.UpdateCandidate(r.Context(), id, &upd)
	if err != nil {
		h.storeError(w, r, err, "update candidate")
		return
	}

	writeJSON(w, c, http.StatusOK)
}

func (h *CandidatesHandler) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := candidateID(r)
	if err != nil {
		writeError(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	if err := h.repo.DeleteCandidate(r.Context(), id); err != nil {
		h.storeError(w, r, err, "delete candidate")
		return
	}

	writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}

// AdvanceStage handles PUT /candidates/{id}/next-stage?next_stage=...; the
// label is stored verbatim, there is no fixed set of stages.
func (h *CandidatesHandler) AdvanceStage(w http.ResponseWriter, r *http.Request) {
	id, err := candidateID(r)
	if err != nil {
		writeError(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	next := r.URL.Query().Get("next_stage")
	if next == "" {
		writeError(w, "next_stage is required", http.StatusBadRequest)
		return
	}

	c, err := h.repo.AdvanceStage(r.Context(), id, next)
	if err != nil {
		h.storeError(w, r, err, "advance stage")
		return
	}

	writeJSON(w, c, http.StatusOK)
}

func (h *CandidatesHandler) RejectCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := candidateID(r)
	if err != nil {
		writeError(w, "invalid candidate id", http.StatusBadRequest)
		return
	}

	c, err := h.repo.RejectCandidate(r.Context(), id)
	if err != nil {
		h.storeError(w, r, err, "reject candidate")
		return
	}

	writeJSON(w, c, http.StatusOK)
}

// storeError maps a repository failure to the right client response: a 404
// for missing ids, a generic 500 (with the detail only logged) otherwise.
func (h *CandidatesHandler) storeError(w http.ResponseWriter, r *http.Request, err error, op string) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, "Candidate not found", http.StatusNotFound)
		return
	}
	logger.Error(op, slog.Any("err", err), slog.String("request_id", requestID(r)))
	writeError(w, "internal server error", http.StatusInternalServerError)
}
