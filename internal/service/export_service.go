package service

import (
	"context"
	"fmt"
	"time"

	appErrors "github.com/prepitus/college-chances-api/pkg/errors"
	"github.com/prepitus/college-chances-api/pkg/export"
)

// ExportFormat selects the rendering of a lead export.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult is a rendered export ready to stream to the client.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService flattens stored leads into downloadable documents.
type ExportService struct {
	store leadStore
}

// NewExportService constructs the service.
func NewExportService(store leadStore) *ExportService {
	return &ExportService{store: store}
}

var exportHeaders = []string{"Email", "First Name", "Last Name", "GPA", "SAT", "Grad Year", "Created At", "Submissions"}

// Leads renders every stored lead in the requested format.
func (s *ExportService) Leads(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	leads, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load leads")
	}

	dataset := export.Dataset{Headers: exportHeaders, Rows: make([]map[string]string, 0, len(leads))}
	for _, lead := range leads {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Email":       lead.Email,
			"First Name":  lead.FirstName,
			"Last Name":   lead.LastName,
			"GPA":         lead.GPA,
			"SAT":         lead.SATScore,
			"Grad Year":   lead.GraduationYear,
			"Created At":  lead.CreatedAt.Format(time.RFC3339),
			"Submissions": fmt.Sprintf("%d", lead.SubmissionCount),
		})
	}

	stamp := time.Now().Format("20060102")
	switch format {
	case ExportFormatCSV:
		content, err := export.RenderCSV(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
		}
		return &ExportResult{Filename: "leads_" + stamp + ".csv", ContentType: "text/csv", Content: content}, nil
	case ExportFormatPDF:
		content, err := export.RenderPDF(dataset, "Captured Leads")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
		}
		return &ExportResult{Filename: "leads_" + stamp + ".pdf", ContentType: "application/pdf", Content: content}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
