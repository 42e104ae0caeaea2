package service

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepitus/college-chances-api/internal/dto"
	"github.com/prepitus/college-chances-api/internal/models"
	appErrors "github.com/prepitus/college-chances-api/pkg/errors"
	"github.com/prepitus/college-chances-api/pkg/mail"
)

type stubLeadStore struct {
	upsertCalls int
	duplicate   bool
	upsertErr   error
	leads       []models.Lead
}

func (s *stubLeadStore) Upsert(_ context.Context, lead models.Lead) (models.Lead, bool, error) {
	s.upsertCalls++
	if s.upsertErr != nil {
		return models.Lead{}, false, s.upsertErr
	}
	lead.ID = "1"
	s.leads = append(s.leads, lead)
	return lead, s.duplicate, nil
}

func (s *stubLeadStore) List(_ context.Context) ([]models.Lead, error) {
	return s.leads, nil
}

type stubCatalog struct {
	byName map[string]models.College
}

func (s *stubCatalog) FindByName(_ context.Context, name string) (models.College, bool) {
	c, ok := s.byName[name]
	return c, ok
}

type stubMailer struct {
	sent    []mail.Message
	sendErr error
}

func (s *stubMailer) Send(msg mail.Message) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, msg)
	return nil
}

func writeReportPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644))
	return path
}

func validUser() *dto.UserPayload {
	return &dto.UserPayload{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		GPA:       "3.8",
		SATScore:  "1450",
	}
}

func nyuSelection() []dto.SelectedCollege {
	return []dto.SelectedCollege{{
		Name:      "New York University",
		AdmitRate: "12%",
		GPAAvg:    "3.7",
		SATRange:  "1390 - 1540",
	}}
}

func newTestReportService(store *stubLeadStore, mailer *stubMailer, pdfPath string) *ReportService {
	catalog := &stubCatalog{byName: map[string]models.College{
		"New York University": {Name: "New York University", AdmitRate: "12%", GPAAvg: "3.7", SATRange: "1390 - 1540"},
	}}
	return NewReportService(store, catalog, NewEmailComposer(), mailer, nil, nil, nil, pdfPath)
}

func TestReportServiceStoreAndSendValidation(t *testing.T) {
	svc := newTestReportService(&stubLeadStore{}, &stubMailer{}, writeReportPDF(t))

	tests := []struct {
		name    string
		req     dto.StoreAndSendRequest
		message string
	}{
		{"missing user data", dto.StoreAndSendRequest{}, "All user information is required"},
		{
			"missing first name",
			dto.StoreAndSendRequest{UserData: &dto.UserPayload{Email: "jane@example.com", LastName: "Doe"}},
			"All user information is required",
		},
		{
			"malformed email",
			dto.StoreAndSendRequest{UserData: &dto.UserPayload{Email: "not-an-email", FirstName: "Jane", LastName: "Doe"}},
			"Please enter a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.StoreAndSend(context.Background(), tt.req)
			require.Error(t, err)
			appErr := appErrors.FromError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestReportServiceStoreAndSendSuccess(t *testing.T) {
	store := &stubLeadStore{}
	mailer := &stubMailer{}
	svc := newTestReportService(store, mailer, writeReportPDF(t))

	delivery, err := svc.StoreAndSend(context.Background(), dto.StoreAndSendRequest{
		UserData:         validUser(),
		SelectedColleges: nyuSelection(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, store.upsertCalls)
	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "jane@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Your Personalized College Admission Report")
	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "Prepitus_College_Admission_Report_Jane.pdf", msg.Attachment.Filename)
	assert.Equal(t, "application/pdf", msg.Attachment.ContentType)

	assert.Equal(t, "jane@example.com", delivery.Email)
	assert.Equal(t, 1, delivery.CollegesAnalyzed)
	assert.Equal(t, models.ChanceTarget, delivery.OverallChance)
	require.NotNil(t, delivery.IsDuplicate)
	assert.False(t, *delivery.IsDuplicate)
}

func TestReportServiceStoreAndSendDuplicateStillSends(t *testing.T) {
	store := &stubLeadStore{duplicate: true}
	mailer := &stubMailer{}
	svc := newTestReportService(store, mailer, writeReportPDF(t))

	delivery, err := svc.StoreAndSend(context.Background(), dto.StoreAndSendRequest{
		UserData:         validUser(),
		SelectedColleges: nyuSelection(),
	})
	require.NoError(t, err)
	assert.Len(t, mailer.sent, 1)
	require.NotNil(t, delivery.IsDuplicate)
	assert.True(t, *delivery.IsDuplicate)
}

func TestReportServiceStoreAndSendStoreFailure(t *testing.T) {
	store := &stubLeadStore{upsertErr: errors.New("disk full")}
	svc := newTestReportService(store, &stubMailer{}, writeReportPDF(t))

	_, err := svc.StoreAndSend(context.Background(), dto.StoreAndSendRequest{
		UserData:         validUser(),
		SelectedColleges: nyuSelection(),
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Failed to store user information", appErr.Message)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestReportServiceStoreAndSendDeliveryFailure(t *testing.T) {
	mailer := &stubMailer{sendErr: errors.New("connection refused")}
	svc := newTestReportService(&stubLeadStore{}, mailer, writeReportPDF(t))

	_, err := svc.StoreAndSend(context.Background(), dto.StoreAndSendRequest{
		UserData:         validUser(),
		SelectedColleges: nyuSelection(),
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Failed to process your request. Please try again later.", appErr.Message)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestReportServiceMissingAttachment(t *testing.T) {
	svc := newTestReportService(&stubLeadStore{}, &stubMailer{}, filepath.Join(t.TempDir(), "missing.pdf"))

	_, err := svc.SendLegacy(context.Background(), dto.SendReportRequest{
		UserData:         validUser(),
		SelectedColleges: nyuSelection(),
	})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Report template not available. Please try again later.", appErr.Message)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestReportServiceSendLegacyValidation(t *testing.T) {
	svc := newTestReportService(&stubLeadStore{}, &stubMailer{}, writeReportPDF(t))

	_, err := svc.SendLegacy(context.Background(), dto.SendReportRequest{
		SelectedColleges: nyuSelection(),
	})
	require.Error(t, err)
	assert.Equal(t, "Email address is required", appErrors.FromError(err).Message)

	_, err = svc.SendLegacy(context.Background(), dto.SendReportRequest{
		UserData: validUser(),
	})
	require.Error(t, err)
	assert.Equal(t, "At least one college must be selected", appErrors.FromError(err).Message)
}

func TestReportServiceSendLegacyDeliveryFailure(t *testing.T) {
	mailer := &stubMailer{sendErr: errors.New("timeout")}
	svc := newTestReportService(&stubLeadStore{}, mailer, writeReportPDF(t))

	_, err := svc.SendLegacy(context.Background(), dto.SendReportRequest{
		UserData:         validUser(),
		SelectedColleges: nyuSelection(),
	})
	require.Error(t, err)
	assert.Equal(t, "Failed to send report. Please try again later.", appErrors.FromError(err).Message)
}

func TestReportServiceSendLegacySuccess(t *testing.T) {
	mailer := &stubMailer{}
	store := &stubLeadStore{}
	svc := newTestReportService(store, mailer, writeReportPDF(t))

	delivery, err := svc.SendLegacy(context.Background(), dto.SendReportRequest{
		UserData:         validUser(),
		SelectedColleges: nyuSelection(),
	})
	require.NoError(t, err)
	assert.Zero(t, store.upsertCalls)
	assert.Len(t, mailer.sent, 1)
	assert.Nil(t, delivery.IsDuplicate)
	assert.Equal(t, models.ChanceTarget, delivery.OverallChance)
}

func TestReportServiceCatalogBackfill(t *testing.T) {
	mailer := &stubMailer{}
	svc := newTestReportService(&stubLeadStore{}, mailer, writeReportPDF(t))

	delivery, err := svc.StoreAndSend(context.Background(), dto.StoreAndSendRequest{
		UserData:         validUser(),
		SelectedColleges: []dto.SelectedCollege{{Name: "New York University"}},
	})
	require.NoError(t, err)
	// Name-only selections pick up catalog numbers instead of degrading
	// to a blanket Reach.
	assert.Equal(t, models.ChanceTarget, delivery.OverallChance)
	assert.Equal(t, 1, delivery.Summary.Target)
}

func TestReportServiceBlankAttachmentName(t *testing.T) {
	mailer := &stubMailer{}
	svc := newTestReportService(&stubLeadStore{}, mailer, writeReportPDF(t))

	user := validUser()
	user.FirstName = ""
	req := dto.SendReportRequest{UserData: user, SelectedColleges: nyuSelection()}
	_, err := svc.SendLegacy(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "Prepitus_College_Admission_Report_Student.pdf", mailer.sent[0].Attachment.Filename)
}
