package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/prepitus/college-chances-api/internal/models"
)

// LeadFileRepository persists leads as a single pretty-printed JSON array
// on disk. Every write is a full read-modify-rewrite with no locking, so
// two concurrent writers can lose an update (last-writer-wins on the whole
// file). Acceptable at this write volume; the Postgres driver exists for
// anything stricter.
type LeadFileRepository struct {
	path   string
	logger *zap.Logger
}

// NewLeadFileRepository initializes the backing file with an empty array
// if it does not exist yet.
func NewLeadFileRepository(path string, logger *zap.Logger) (*LeadFileRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("initialize users file: %w", err)
		}
	}
	return &LeadFileRepository{path: path, logger: logger}, nil
}

// Upsert returns the existing record untouched when the email is already
// known; otherwise it appends a new record and rewrites the file.
func (r *LeadFileRepository) Upsert(ctx context.Context, lead models.Lead) (models.Lead, bool, error) {
	leads := r.readAll()

	for _, existing := range leads {
		if existing.Email == lead.Email {
			r.logger.Info("duplicate lead, skipping store", zap.String("email", lead.Email))
			return existing, true, nil
		}
	}

	lead.ID = newLeadID()
	lead.CreatedAt = time.Now().UTC()
	lead.SubmissionCount = 1
	leads = append(leads, lead)

	if err := r.writeAll(leads); err != nil {
		return models.Lead{}, false, err
	}
	r.logger.Info("new lead stored", zap.String("email", lead.Email))
	return lead, false, nil
}

// List returns every stored lead.
func (r *LeadFileRepository) List(ctx context.Context) ([]models.Lead, error) {
	return r.readAll(), nil
}

// readAll parses the whole file. A corrupt file is logged and treated as
// empty; the next successful write replaces it.
func (r *LeadFileRepository) readAll() []models.Lead {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error("read users file", zap.Error(err))
		return []models.Lead{}
	}
	var leads []models.Lead
	if err := json.Unmarshal(data, &leads); err != nil {
		r.logger.Error("parse users file", zap.Error(err))
		return []models.Lead{}
	}
	return leads
}

func (r *LeadFileRepository) writeAll(leads []models.Lead) error {
	data, err := json.MarshalIndent(leads, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users file: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}

// newLeadID derives an identifier from the current time, matching the
// stored records produced by earlier versions of this service.
func newLeadID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}
