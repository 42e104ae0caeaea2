package service

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/prepitus/college-chances-api/internal/dto"
	"github.com/prepitus/college-chances-api/internal/models"
	appErrors "github.com/prepitus/college-chances-api/pkg/errors"
	"github.com/prepitus/college-chances-api/pkg/mail"
)

// Shape check only: requires an "@" with a dot somewhere after it. Many
// invalid addresses pass; the frontend applies the same pattern.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const reportSubject = "🎓 Your Personalized College Admission Report & Action Plan - Prepitus"

type leadStore interface {
	Upsert(ctx context.Context, lead models.Lead) (models.Lead, bool, error)
	List(ctx context.Context) ([]models.Lead, error)
}

type catalogSource interface {
	FindByName(ctx context.Context, name string) (models.College, bool)
}

// ReportService orchestrates the delivery flow: validate, persist the
// lead, classify, compose, send. Each failure is terminal for the request;
// there are no retries at any layer.
type ReportService struct {
	store     leadStore
	catalog   catalogSource
	composer  *EmailComposer
	mailer    mail.Sender
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	pdfPath   string
}

// NewReportService constructs the service. metrics may be nil.
func NewReportService(store leadStore, catalog catalogSource, composer *EmailComposer, mailer mail.Sender, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, pdfPath string) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ReportService{
		store:     store,
		catalog:   catalog,
		composer:  composer,
		mailer:    mailer,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		pdfPath:   pdfPath,
	}
}

// StoreAndSend deduplicates the lead by email, then analyzes, composes and
// sends the report. Duplicate leads are not modified but still receive a
// report.
func (s *ReportService) StoreAndSend(ctx context.Context, req dto.StoreAndSendRequest) (*dto.ReportDelivery, error) {
	if req.UserData == nil || s.validator.Struct(req.UserData) != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "All user information is required")
	}
	if !emailPattern.MatchString(req.UserData.Email) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Please enter a valid email address")
	}

	s.logger.Info("processing lead", zap.String("email", req.UserData.Email))

	_, isDuplicate, err := s.store.Upsert(ctx, leadFromPayload(req.UserData))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrStoreFailed.Code, appErrors.ErrStoreFailed.Status, appErrors.ErrStoreFailed.Message)
	}
	if s.metrics != nil && !isDuplicate {
		s.metrics.IncLeadStored()
	}

	profile := req.FormData
	if profile == nil {
		profile = req.UserData
	}

	delivery, err := s.deliver(ctx, req.UserData, profile, req.SelectedColleges)
	if err != nil {
		if e := appErrors.FromError(err); e.Code == appErrors.ErrDelivery.Code {
			return nil, appErrors.Wrap(e.Err, e.Code, e.Status, "Failed to process your request. Please try again later.")
		}
		return nil, err
	}
	delivery.IsDuplicate = &isDuplicate

	return delivery, nil
}

// SendLegacy is the pre-capture flow: no lead is stored, the report is
// composed from userData directly.
func (s *ReportService) SendLegacy(ctx context.Context, req dto.SendReportRequest) (*dto.ReportDelivery, error) {
	if req.UserData == nil || req.UserData.Email == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Email address is required")
	}
	if len(req.SelectedColleges) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "At least one college must be selected")
	}
	if !emailPattern.MatchString(req.UserData.Email) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Please enter a valid email address")
	}

	s.logger.Info("processing report", zap.String("email", req.UserData.Email))

	return s.deliver(ctx, req.UserData, req.UserData, req.SelectedColleges)
}

// deliver runs the shared tail of both flows: load the attachment,
// classify, render, send.
func (s *ReportService) deliver(ctx context.Context, recipient, profile *dto.UserPayload, selected []dto.SelectedCollege) (*dto.ReportDelivery, error) {
	attachment, err := s.loadAttachment(recipient.FirstName)
	if err != nil {
		return nil, err
	}

	colleges := s.resolveColleges(ctx, selected)
	analysis := Analyze(profile.GPA.String(), profile.SATScore.String(), colleges)

	html, err := s.composer.Render(ReportEmailData{
		FirstName:     profile.FirstName,
		GPA:           profile.GPA.String(),
		SATScore:      profile.SATScore.String(),
		OverallChance: analysis.OverallChance,
		Colleges:      analysis.Colleges,
		Summary:       analysis.Summary,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if err := s.mailer.Send(mail.Message{
		To:         recipient.Email,
		Subject:    reportSubject,
		HTML:       html,
		Attachment: attachment,
	}); err != nil {
		if s.metrics != nil {
			s.metrics.IncReportFailed()
		}
		return nil, appErrors.Wrap(err, appErrors.ErrDelivery.Code, appErrors.ErrDelivery.Status, appErrors.ErrDelivery.Message)
	}

	if s.metrics != nil {
		s.metrics.IncReportSent()
	}
	s.logger.Info("report sent", zap.String("email", recipient.Email))

	return &dto.ReportDelivery{
		Email:            recipient.Email,
		CollegesAnalyzed: len(selected),
		OverallChance:    analysis.OverallChance,
		Summary:          analysis.Summary,
	}, nil
}

// loadAttachment reads the static report PDF. A missing file is a
// configuration problem surfaced as its own error so operators can tell it
// apart from transport failures.
func (s *ReportService) loadAttachment(firstName string) (*mail.Attachment, error) {
	content, err := os.ReadFile(s.pdfPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Error("report PDF not found", zap.String("path", s.pdfPath))
			return nil, appErrors.Wrap(err, appErrors.ErrMissingAsset.Code, appErrors.ErrMissingAsset.Status, appErrors.ErrMissingAsset.Message)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	if firstName == "" {
		firstName = "Student"
	}
	return &mail.Attachment{
		Filename:    fmt.Sprintf("Prepitus_College_Admission_Report_%s.pdf", firstName),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// resolveColleges backfills missing metadata from the catalog. The wizard
// sends placeholder empty strings on the store-and-send path; names the
// catalog knows get their real numbers, unknown names keep the degenerate
// metadata and classify as Reach / "Close match".
func (s *ReportService) resolveColleges(ctx context.Context, selected []dto.SelectedCollege) []models.College {
	colleges := make([]models.College, 0, len(selected))
	for _, sc := range selected {
		college := models.College{
			Name:      sc.Name,
			AdmitRate: sc.AdmitRate,
			GPAAvg:    sc.GPAAvg,
			SATRange:  sc.SATRange,
		}
		if s.catalog != nil && college.SATRange == "" && college.GPAAvg == "" {
			if known, ok := s.catalog.FindByName(ctx, sc.Name); ok {
				if college.AdmitRate == "" {
					college.AdmitRate = known.AdmitRate
				}
				college.GPAAvg = known.GPAAvg
				college.SATRange = known.SATRange
			}
		}
		colleges = append(colleges, college)
	}
	return colleges
}

func leadFromPayload(u *dto.UserPayload) models.Lead {
	return models.Lead{
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		GPA:            u.GPA.String(),
		SATScore:       u.SATScore.String(),
		GraduationYear: u.GraduationYear,
	}
}
