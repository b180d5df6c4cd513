package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/rskd/talent/pkg/models"
	"github.com/rskd/talent/pkg/repository"
)

const candidateColumns = `id, name, avatar, rating, stage, role, date, files, email, phone, experience, rejected`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*models.Candidate, error) {
	var c models.Candidate
	var avatar, email, phone, expText sql.NullString
	var dateMillis int64
	if err := row.Scan(&c.ID, &c.Name, &avatar, &c.Rating, &c.Stage, &c.Role, &dateMillis, &c.Files, &email, &phone, &expText, &c.Rejected); err != nil {
		return nil, err
	}
	c.Avatar = avatar.String
	c.Email = email.String
	c.Phone = phone.String
	c.Experience = expText.String
	c.Date = fromMillis(dateMillis)
	return &c, nil
}

// nullable maps empty optional strings to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (r *SQLiteRepo) CreateCandidate(ctx context.Context, draft *models.CandidateDraft, date time.Time) (*models.Candidate, error) {
	if draft == nil {
		return nil, fmt.Errorf("draft is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO candidates (name, avatar, rating, stage, role, date, files, email, phone, experience, rejected) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		draft.Name, nullable(draft.Avatar), draft.Rating, draft.Stage, draft.Role, toMillis(date), draft.Files, nullable(draft.Email), nullable(draft.Phone), nullable(draft.Experience),
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetCandidate(ctx, id)
}

func (r *SQLiteRepo) GetCandidate(ctx context.Context, id int64) (*models.Candidate, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id)
	c, err := scanCandidate(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteRepo) ListCandidates(ctx context.Context, q repository.ListQuery) ([]models.Candidate, error) {
	var (
		where []string
		args  []any
	)

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		where = append(where, `(LOWER(name) LIKE ? OR LOWER(IFNULL(email, '')) LIKE ? OR LOWER(role) LIKE ?)`)
		args = append(args, pattern, pattern, pattern)
	}

	// Only the two reserved keywords filter anything; "all" and arbitrary
	// stage names deliberately pass everything through.
	switch strings.ToLower(q.Stage) {
	case repository.StageFilterAccepted:
		where = append(where, `rejected = 0`)
	case repository.StageFilterRejected:
		where = append(where, `rejected = 1`)
	}

	query := `SELECT ` + candidateColumns + ` FROM candidates`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}

	col, known := repository.SortColumn(q.SortBy)
	if q.SortBy != "" && !known {
		r.logger.Debug("unknown sort key, using id", slog.String("sort_by", q.SortBy))
	}
	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	query += fmt.Sprintf(` ORDER BY %s %s LIMIT ? OFFSET ?`, col, dir)
	args = append(args, q.Limit, q.Skip)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]models.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}

func (r *SQLiteRepo) CountCandidates(ctx context.Context) (int64, error) {
	var count int64
	row := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM candidates`)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteRepo) UpdateCandidate(ctx context.Context, id int64, upd *models.CandidateUpdate) (*models.Candidate, error) {
	if upd == nil || upd.IsEmpty() {
		// nothing to change; still reports not-found for absent ids
		return r.GetCandidate(ctx, id)
	}

	var (
		set  []string
		args []any
	)
	add := func(col string, v any) {
		set = append(set, col+" = ?")
		args = append(args, v)
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Avatar != nil {
		add("avatar", nullable(*upd.Avatar))
	}
	if upd.Rating != nil {
		add("rating", *upd.Rating)
	}
	if upd.Stage != nil {
		add("stage", *upd.Stage)
	}
	if upd.Role != nil {
		add("role", *upd.Role)
	}
	if upd.Files != nil {
		add("files", *upd.Files)
	}
	if upd.Email != nil {
		add("email", nullable(*upd.Email))
	}
	if upd.Phone != nil {
		add("phone", nullable(*upd.Phone))
	}
	if upd.Experience != nil {
		add("experience", nullable(*upd.Experience))
	}
	if upd.Rejected != nil {
		add("rejected", *upd.Rejected)
	}
	args = append(args, id)

	res, err := r.conn.Exec(ctx, `UPDATE candidates SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.GetCandidate(ctx, id)
}

func (r *SQLiteRepo) DeleteCandidate(ctx context.Context, id int64) error {
	res, err := r.conn.Exec(ctx, `DELETE FROM candidates WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepo) CreateCandidates(ctx context.Context, drafts []models.CandidateDraft, date time.Time) ([]models.Candidate, error) {
	tx, err := r.conn.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ids := make([]int64, 0, len(drafts))
	for i, draft := range drafts {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO candidates (name, avatar, rating, stage, role, date, files, email, phone, experience, rejected) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
			draft.Name, nullable(draft.Avatar), draft.Rating, draft.Stage, draft.Role, toMillis(date), draft.Files, nullable(draft.Email), nullable(draft.Phone), nullable(draft.Experience),
		)
		if err != nil {
			return nil, fmt.Errorf("insert row %d: %w", i+1, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("insert row %d: %w", i+1, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	candidates := make([]models.Candidate, 0, len(ids))
	for _, id := range ids {
		c, err := r.GetCandidate(ctx, id)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, nil
}

func (r *SQLiteRepo) AdvanceStage(ctx context.Context, id int64, stage string) (*models.Candidate, error) {
	res, err := r.conn.Exec(ctx, `UPDATE candidates SET stage = ? WHERE id = ?`, stage, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetCandidate(ctx, id)
}

func (r *SQLiteRepo) RejectCandidate(ctx context.Context, id int64) (*models.Candidate, error) {
	// one statement so the flag and the stage label cannot diverge here
	res, err := r.conn.Exec(ctx, `UPDATE candidates SET rejected = 1, stage = ? WHERE id = ?`, models.RejectedStage, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetCandidate(ctx, id)
}
