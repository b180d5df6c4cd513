package api

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/rskd/talent/internal/metrics"
	"github.com/rskd/talent/pkg/models"
)

const maxImportMemory = 32 << 20

// ImportCandidates handles POST /candidates/import/: a multipart CSV upload
// under the "file" field. Every row is parsed and validated before anything
// is persisted, and the batch insert runs in one transaction, so a bad row
// anywhere means nothing is committed.
func (h *CandidatesHandler) ImportCandidates(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportMemory); err != nil {
		writeError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	drafts, err := parseCandidatesCSV(file)
	if err != nil {
		metrics.RecordImportFailure()
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.repo.CreateCandidates(r.Context(), drafts, time.Now())
	if err != nil {
		metrics.RecordImportFailure()
		logger.Error("import candidates", slog.Any("err", err), slog.String("request_id", requestID(r)))
		writeError(w, "failed to import candidates", http.StatusInternalServerError)
		return
	}

	metrics.RecordImport(len(created))
	writeJSON(w, created, http.StatusCreated)
}

// parseCandidatesCSV decodes the upload into creation drafts. The header row
// selects columns by name, so column order does not matter and unknown
// columns are ignored. Row numbers in errors are 1-based counting from the
// first data row.
func parseCandidatesCSV(r io.Reader) ([]models.CandidateDraft, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("missing CSV header: %v", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(rec []string, name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return "", false
		}
		return strings.TrimSpace(rec[i]), true
	}

	drafts := make([]models.CandidateDraft, 0)
	row := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("error parsing row %d: %v", row, err)
		}

		draft := models.CandidateDraft{Stage: models.DefaultStage}
		if v, ok := field(rec, "name"); ok {
			draft.Name = v
		}
		if v, ok := field(rec, "avatar"); ok {
			draft.Avatar = v
		}
		if v, ok := field(rec, "rating"); ok && v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing row %d: invalid rating %q", row, v)
			}
			draft.Rating = f
		}
		if v, ok := field(rec, "stage"); ok && v != "" {
			draft.Stage = v
		}
		if v, ok := field(rec, "role"); ok {
			draft.Role = v
		}
		if v, ok := field(rec, "files"); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("error parsing row %d: invalid files %q", row, v)
			}
			draft.Files = n
		}
		if v, ok := field(rec, "email"); ok {
			draft.Email = v
		}
		if v, ok := field(rec, "phone"); ok {
			draft.Phone = v
		}
		if v, ok := field(rec, "experience"); ok {
			draft.Experience = v
		}

		if draft.Name == "" {
			return nil, fmt.Errorf("error parsing row %d: name is required", row)
		}
		if draft.Role == "" {
			return nil, fmt.Errorf("error parsing row %d: role is required", row)
		}

		drafts = append(drafts, draft)
	}

	return drafts, nil
}
