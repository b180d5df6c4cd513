package mock

import (
	"context"
	"sync"
	"time"

	"github.com/rskd/talent/pkg/models"
	"github.com/rskd/talent/pkg/repository"
)

// CandidateRepo is an in-memory repository.CandidateRepo for tests. It does
// not reproduce the store's filtering or sorting; list returns insertion
// order.
type CandidateRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*models.Candidate
	order  []int64

	// Err, when set, is returned by every operation.
	Err error
}

var _ repository.CandidateRepo = (*CandidateRepo)(nil)

func NewCandidateRepo() *CandidateRepo {
	return &CandidateRepo{nextID: 1, items: make(map[int64]*models.Candidate)}
}

func (m *CandidateRepo) CreateCandidate(ctx context.Context, draft *models.CandidateDraft, date time.Time) (*models.Candidate, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &models.Candidate{
		ID:         m.nextID,
		Name:       draft.Name,
		Avatar:     draft.Avatar,
		Rating:     draft.Rating,
		Stage:      draft.Stage,
		Role:       draft.Role,
		Date:       date,
		Files:      draft.Files,
		Email:      draft.Email,
		Phone:      draft.Phone,
		Experience: draft.Experience,
	}
	m.items[c.ID] = c
	m.order = append(m.order, c.ID)
	m.nextID++
	out := *c
	return &out, nil
}

func (m *CandidateRepo) GetCandidate(ctx context.Context, id int64) (*models.Candidate, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (m *CandidateRepo) ListCandidates(ctx context.Context, q repository.ListQuery) ([]models.Candidate, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Candidate, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.items[id])
	}
	return out, nil
}

func (m *CandidateRepo) CountCandidates(ctx context.Context) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

func (m *CandidateRepo) UpdateCandidate(ctx context.Context, id int64, upd *models.CandidateUpdate) (*models.Candidate, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd != nil {
		if upd.Name != nil {
			c.Name = *upd.Name
		}
		if upd.Avatar != nil {
			c.Avatar = *upd.Avatar
		}
		if upd.Rating != nil {
			c.Rating = *upd.Rating
		}
		if upd.Stage != nil {
			c.Stage = *upd.Stage
		}
		if upd.Role != nil {
			c.Role = *upd.Role
		}
		if upd.Files != nil {
			c.Files = *upd.Files
		}
		if upd.Email != nil {
			c.Email = *upd.Email
		}
		if upd.Phone != nil {
			c.Phone = *upd.Phone
		}
		if upd.Experience != nil {
			c.Experience = *upd.Experience
		}
		if upd.Rejected != nil {
			c.Rejected = *upd.Rejected
		}
	}
	out := *c
	return &out, nil
}

func (m *CandidateRepo) DeleteCandidate(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *CandidateRepo) CreateCandidates(ctx context.Context, drafts []models.CandidateDraft, date time.Time) ([]models.Candidate, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]models.Candidate, 0, len(drafts))
	for i := range drafts {
		c, err := m.CreateCandidate(ctx, &drafts[i], date)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *CandidateRepo) AdvanceStage(ctx context.Context, id int64, stage string) (*models.Candidate, error) {
	return m.UpdateCandidate(ctx, id, &models.CandidateUpdate{Stage: &stage})
}

func (m *CandidateRepo) RejectCandidate(ctx context.Context, id int64) (*models.Candidate, error) {
	rejected := true
	stage := models.RejectedStage
	return m.UpdateCandidate(ctx, id, &models.CandidateUpdate{Rejected: &rejected, Stage: &stage})
}
