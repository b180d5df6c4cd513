package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rskd/talent/pkg/models"
)

// ErrNotFound is returned by operations addressing a candidate id that does
// not exist. Callers should test with errors.Is so wrapped errors match.
var ErrNotFound = errors.New("candidate not found")

// Stage filter keywords recognized by ListCandidates. Any other stage value
// is accepted but matches nothing special (see ListQuery.Stage).
const (
	StageFilterAll      = "all"
	StageFilterAccepted = "accepted"
	StageFilterRejected = "rejected"
)

// ListQuery carries the list-with-filter-sort-paginate parameters.
type ListQuery struct {
	Skip  int
	Limit int

	// Search matches case-insensitively as a substring of name, email or
	// role (logical OR). Empty means no search filter.
	Search string

	// SortBy names a candidate column. Unknown names fall back to id
	// ascending; SortDesc reverses whatever column was chosen.
	SortBy   string
	SortDesc bool

	// Stage is a keyword filter: "accepted" selects rejected == false,
	// "rejected" selects rejected == true, "all" or empty selects
	// everything. Other values are ignored, matching the behavior the
	// frontend has always depended on.
	Stage string
}

// sortColumns is the allow-list mapping request-supplied sort keys to real
// columns. Request input never reaches the SQL layer as an identifier.
var sortColumns = map[string]string{
	"id":       "id",
	"name":     "name",
	"rating":   "rating",
	"stage":    "stage",
	"role":     "role",
	"date":     "date",
	"files":    "files",
	"email":    "email",
	"rejected": "rejected",
}

// SortColumn resolves a request sort key against the allow-list. It returns
// the safe column name and whether the key was recognized; unrecognized keys
// resolve to the id column.
func SortColumn(key string) (string, bool) {
	if col, ok := sortColumns[key]; ok {
		return col, true
	}
	return "id", false
}

// CandidateRepo is the public contract of the record store. The concrete
// implementation lives under internal/repository/sqlite.
type CandidateRepo interface {
	CreateCandidate(ctx context.Context, draft *models.CandidateDraft, date time.Time) (*models.Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*models.Candidate, error)
	ListCandidates(ctx context.Context, q ListQuery) ([]models.Candidate, error)
	CountCandidates(ctx context.Context) (int64, error)
	UpdateCandidate(ctx context.Context, id int64, upd *models.CandidateUpdate) (*models.Candidate, error)
	DeleteCandidate(ctx context.Context, id int64) error

	// CreateCandidates inserts all drafts inside one transaction; any
	// failure rolls back the whole batch.
	CreateCandidates(ctx context.Context, drafts []models.CandidateDraft, date time.Time) ([]models.Candidate, error)

	// AdvanceStage stores the caller-supplied stage label verbatim.
	AdvanceStage(ctx context.Context, id int64, stage string) (*models.Candidate, error)

	// RejectCandidate sets rejected and the "Rejected" stage label in a
	// single statement.
	RejectCandidate(ctx context.Context, id int64) (*models.Candidate, error)
}
