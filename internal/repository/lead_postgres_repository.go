package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/prepitus/college-chances-api/internal/models"
)

// LeadPostgresRepository is the keyed alternative to the file store. The
// unique index on email makes the dedup check and the insert one atomic
// statement instead of a racy read-modify-write.
type LeadPostgresRepository struct {
	db *sqlx.DB
}

// NewLeadPostgresRepository creates a new instance of LeadPostgresRepository.
func NewLeadPostgresRepository(db *sqlx.DB) *LeadPostgresRepository {
	return &LeadPostgresRepository{db: db}
}

// Upsert inserts the lead unless the email already exists, in which case
// the stored record is returned unmodified with the duplicate flag set.
func (r *LeadPostgresRepository) Upsert(ctx context.Context, lead models.Lead) (models.Lead, bool, error) {
	lead.ID = newLeadID()
	lead.CreatedAt = time.Now().UTC()
	lead.SubmissionCount = 1

	const insert = `INSERT INTO leads (id, email, first_name, last_name, gpa, sat_score, graduation_year, created_at, submission_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (email) DO NOTHING`
	res, err := r.db.ExecContext(ctx, insert,
		lead.ID, lead.Email, lead.FirstName, lead.LastName,
		lead.GPA, lead.SATScore, lead.GraduationYear, lead.CreatedAt, lead.SubmissionCount,
	)
	if err != nil {
		return models.Lead{}, false, fmt.Errorf("insert lead: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Lead{}, false, fmt.Errorf("insert lead result: %w", err)
	}
	if affected > 0 {
		return lead, false, nil
	}

	existing, err := r.findByEmail(ctx, lead.Email)
	if err != nil {
		return models.Lead{}, false, err
	}
	return *existing, true, nil
}

// List returns stored leads, oldest first.
func (r *LeadPostgresRepository) List(ctx context.Context) ([]models.Lead, error) {
	const query = `SELECT id, email, first_name, last_name, gpa, sat_score, graduation_year, created_at, submission_count FROM leads ORDER BY created_at ASC`
	leads := []models.Lead{}
	if err := r.db.SelectContext(ctx, &leads, query); err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

func (r *LeadPostgresRepository) findByEmail(ctx context.Context, email string) (*models.Lead, error) {
	const query = `SELECT id, email, first_name, last_name, gpa, sat_score, graduation_year, created_at, submission_count FROM leads WHERE email = $1 LIMIT 1`
	var lead models.Lead
	if err := r.db.GetContext(ctx, &lead, query, email); err != nil {
		return nil, fmt.Errorf("find lead by email: %w", err)
	}
	return &lead, nil
}
