package models

import "time"

// Domain models matching the database schema in db/migrations/0001_init.sql

// Candidate is the full read shape of a stored candidate record.
type Candidate struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Avatar     string    `json:"avatar,omitempty" db:"avatar"`
	Rating     float64   `json:"rating" db:"rating"`
	Stage      string    `json:"stage" db:"stage"`
	Role       string    `json:"role" db:"role"`
	Date       time.Time `json:"date" db:"date"`
	Files      int       `json:"files" db:"files"`
	Email      string    `json:"email,omitempty" db:"email"`
	Phone      string    `json:"phone,omitempty" db:"phone"`
	Experience string    `json:"experience,omitempty" db:"experience"`
	Rejected   bool      `json:"rejected" db:"rejected"`
}

// CandidateDraft is the creation payload. The store assigns id and date;
// rejected always starts false.
type CandidateDraft struct {
	Name       string  `json:"name" validate:"required"`
	Avatar     string  `json:"avatar,omitempty"`
	Rating     float64 `json:"rating"`
	Stage      string  `json:"stage"`
	Role       string  `json:"role" validate:"required"`
	Files      int     `json:"files"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Experience string  `json:"experience,omitempty"`
}

// DefaultStage is the pipeline position new candidates start in.
const DefaultStage = "Screening"

// RejectedStage is the stage label the reject operation couples with the
// rejected flag.
const RejectedStage = "Rejected"

// CandidateUpdate is a sparse update payload. A nil field means "leave the
// stored value unchanged"; only non-nil fields are written. The creation
// date has no entry here on purpose: it is immutable.
type CandidateUpdate struct {
	Name       *string  `json:"name,omitempty"`
	Avatar     *string  `json:"avatar,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Stage      *string  `json:"stage,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Files      *int     `json:"files,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Experience *string  `json:"experience,omitempty"`
	Rejected   *bool    `json:"rejected,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u *CandidateUpdate) IsEmpty() bool {
	return u.Name == nil && u.Avatar == nil && u.Rating == nil &&
		u.Stage == nil && u.Role == nil && u.Files == nil &&
		u.Email == nil && u.Phone == nil && u.Experience == nil &&
		u.Rejected == nil
}
