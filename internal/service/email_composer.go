package service

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/prepitus/college-chances-api/internal/models"
)

// ReportEmailData is the view-model the report email is rendered from.
// Composition is pure string building; transport is someone else's job.
type ReportEmailData struct {
	FirstName     string
	GPA           string
	SATScore      string
	OverallChance models.Chance
	Colleges      []models.Classification
	Summary       models.Summary
	TotalColleges int
}

// EmailComposer renders the HTML report email with inline styles, the only
// styling mail clients reliably support.
type EmailComposer struct {
	tmpl *template.Template
}

// NewEmailComposer parses the report template once.
func NewEmailComposer() *EmailComposer {
	funcs := template.FuncMap{
		"badgeStyle": badgeStyle,
	}
	return &EmailComposer{
		tmpl: template.Must(template.New("report").Funcs(funcs).Parse(reportEmailTemplate)),
	}
}

// Render produces the full HTML document for the given view-model.
func (c *EmailComposer) Render(data ReportEmailData) (string, error) {
	if data.FirstName == "" {
		data.FirstName = "Student"
	}
	data.TotalColleges = len(data.Colleges)

	buf := &bytes.Buffer{}
	if err := c.tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("render report email: %w", err)
	}
	return buf.String(), nil
}

func badgeStyle(chance models.Chance) template.CSS {
	switch chance {
	case models.ChanceLikely:
		return "background: #dcfce7; color: #166534;"
	case models.ChanceTarget:
		return "background: #fef3c7; color: #92400e;"
	default:
		return "background: #fee2e2; color: #991b1b;"
	}
}

const reportEmailTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Your College Admission Report - Prepitus</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f5f7fa;">
    <table width="100%" border="0" cellpadding="0" cellspacing="0" style="background-color: #f5f7fa;">
        <tr>
            <td align="center" style="padding: 20px 0;">
                <table width="100%" border="0" cellpadding="0" cellspacing="0" style="max-width: 600px; background-color: #ffffff; border-radius: 8px; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #4361ee 0%, #3a0ca3 100%); padding: 40px 30px; text-align: center; color: #ffffff;">
                            <h1 style="font-size: 32px; font-weight: bold; margin: 0 0 10px 0;">Prepitus</h1>
                            <p style="font-size: 20px; margin: 0 0 8px 0; font-weight: 600;">Your College Admission Report</p>
                            <p style="font-size: 16px; margin: 0; opacity: 0.9;">Personalized Analysis &amp; Strategic Action Plan</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px; text-align: center; background-color: #f8fafc; border-bottom: 1px solid #e2e8f0;">
                            <h2 style="font-size: 24px; color: #2d3748; margin: 0 0 15px 0;">Hello, {{.FirstName}}!</h2>
                            <p style="font-size: 16px; color: #4a5568; line-height: 1.6; margin: 0;">
                                Thank you for using the Prepitus College Chances Calculator! Based on your academic profile,
                                we've prepared this detailed report to help you understand your admission chances and create
                                a clear roadmap to your dream colleges.
                            </p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <h3 style="font-size: 22px; color: #2d3748; margin: 0 0 20px 0;">Your Current Standing</h3>
                            <table width="100%" border="0" cellpadding="0" cellspacing="0" style="margin-bottom: 30px;">
                                <tr>
                                    <td width="33%" align="center" style="padding: 0 10px;">
                                        <div style="border: 2px solid #e2e8f0; border-radius: 12px; padding: 25px 15px; text-align: center;">
                                            <div style="font-size: 32px; font-weight: bold; color: #4361ee; margin-bottom: 8px;">{{.GPA}}</div>
                                            <div style="font-size: 12px; color: #718096; font-weight: 600; text-transform: uppercase;">GPA Score</div>
                                        </div>
                                    </td>
                                    <td width="33%" align="center" style="padding: 0 10px;">
                                        <div style="border: 2px solid #e2e8f0; border-radius: 12px; padding: 25px 15px; text-align: center;">
                                            <div style="font-size: 32px; font-weight: bold; color: #4361ee; margin-bottom: 8px;">{{.SATScore}}</div>
                                            <div style="font-size: 12px; color: #718096; font-weight: 600; text-transform: uppercase;">SAT Score</div>
                                        </div>
                                    </td>
                                    <td width="33%" align="center" style="padding: 0 10px;">
                                        <div style="border: 2px solid #e2e8f0; border-radius: 12px; padding: 25px 15px; text-align: center;">
                                            <span style="{{badgeStyle .OverallChance}} padding: 8px 16px; border-radius: 20px; font-size: 12px; font-weight: bold; text-transform: uppercase;">{{.OverallChance}}</span>
                                            <div style="font-size: 12px; color: #718096; font-weight: 600; text-transform: uppercase; margin-top: 10px;">Classification</div>
                                        </div>
                                    </td>
                                </tr>
                            </table>
                            <div style="background: #ebf8ff; border: 2px solid #90cdf4; border-radius: 12px; padding: 25px;">
                                <h4 style="color: #2b6cb0; font-size: 18px; margin: 0 0 15px 0;">Understanding Your Classification</h4>
                                <p style="color: #4a5568; font-size: 14px; margin: 0 0 8px 0;"><strong>Target</strong> &mdash; Your SAT score falls within the college's average range</p>
                                <p style="color: #4a5568; font-size: 14px; margin: 0 0 8px 0;"><strong>Likely</strong> &mdash; Your SAT score and GPA are higher than the college's average</p>
                                <p style="color: #4a5568; font-size: 14px; margin: 0;"><strong>Reach</strong> &mdash; Your scores are below the college's typical SAT or GPA range</p>
                            </div>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px; background-color: #f8fafc;">
                            <h3 style="font-size: 22px; color: #2d3748; margin: 0 0 20px 0;">Selected Colleges Analysis</h3>
                            <table width="100%" border="0" cellpadding="0" cellspacing="0" style="background: #ffffff; border-radius: 8px; overflow: hidden;">
                                <tr style="background: linear-gradient(135deg, #4361ee, #3a0ca3);">
                                    <th style="padding: 15px; text-align: left; color: #ffffff; font-size: 14px;">College</th>
                                    <th style="padding: 15px; text-align: left; color: #ffffff; font-size: 14px;">Your Chance</th>
                                    <th style="padding: 15px; text-align: left; color: #ffffff; font-size: 14px;">Admit Rate</th>
                                    <th style="padding: 15px; text-align: left; color: #ffffff; font-size: 14px;">Gap Analysis</th>
                                </tr>
                                {{range .Colleges}}
                                <tr style="border-bottom: 1px solid #e2e8f0;">
                                    <td style="padding: 15px; font-size: 14px; color: #2d3748; font-weight: bold;">{{.Name}}</td>
                                    <td style="padding: 15px;"><span style="{{badgeStyle .Chance}} padding: 6px 12px; border-radius: 16px; font-size: 12px; font-weight: bold;">{{.Chance}}</span></td>
                                    <td style="padding: 15px; font-size: 14px; color: #4a5568;">{{.AdmitRate}}</td>
                                    <td style="padding: 15px; font-size: 14px; color: #4a5568;">{{.GapAnalysis}}</td>
                                </tr>
                                {{end}}
                            </table>
                            <table width="100%" border="0" cellpadding="0" cellspacing="0" style="margin-top: 30px;">
                                <tr>
                                    <td width="33%" align="center">
                                        <div style="border: 2px solid #e2e8f0; border-radius: 12px; padding: 20px; text-align: center;">
                                            <div style="font-size: 36px; font-weight: bold; color: #16a34a;">{{.Summary.Likely}}</div>
                                            <div style="font-size: 12px; color: #718096; font-weight: 600; text-transform: uppercase;">Likely Admissions</div>
                                        </div>
                                    </td>
                                    <td width="33%" align="center">
                                        <div style="border: 2px solid #e2e8f0; border-radius: 12px; padding: 20px; text-align: center;">
                                            <div style="font-size: 36px; font-weight: bold; color: #d97706;">{{.Summary.Target}}</div>
                                            <div style="font-size: 12px; color: #718096; font-weight: 600; text-transform: uppercase;">Target Range</div>
                                        </div>
                                    </td>
                                    <td width="33%" align="center">
                                        <div style="border: 2px solid #e2e8f0; border-radius: 12px; padding: 20px; text-align: center;">
                                            <div style="font-size: 36px; font-weight: bold; color: #dc2626;">{{.Summary.Reach}}</div>
                                            <div style="font-size: 12px; color: #718096; font-weight: 600; text-transform: uppercase;">Reach Schools</div>
                                        </div>
                                    </td>
                                </tr>
                            </table>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px;">
                            <h3 style="font-size: 22px; color: #2d3748; margin: 0 0 20px 0;">Admission Outlook Summary</h3>
                            <div style="background: #f8fafc; padding: 25px; border-radius: 12px; border-left: 4px solid #4361ee; margin-bottom: 20px;">
                                <p style="margin: 0 0 12px 0; font-size: 16px; color: #2d3748;"><strong>Total Colleges Analyzed:</strong> {{.TotalColleges}}</p>
                                <p style="margin: 0 0 12px 0; font-size: 16px; color: #2d3748;"><strong>Likely Admissions:</strong> {{.Summary.Likely}}</p>
                                <p style="margin: 0 0 12px 0; font-size: 16px; color: #2d3748;"><strong>Target Range:</strong> {{.Summary.Target}}</p>
                                <p style="margin: 0; font-size: 16px; color: #2d3748;"><strong>Reach Schools:</strong> {{.Summary.Reach}}</p>
                            </div>
                            {{if gt .Summary.Reach 0}}
                            <div style="background: #ebf8ff; border: 2px solid #90cdf4; border-radius: 12px; padding: 25px;">
                                <h4 style="color: #2b6cb0; font-size: 18px; margin: 0 0 15px 0;">From Reach to Target</h4>
                                <p style="color: #2d3748; margin: 0; font-size: 16px; line-height: 1.6;">
                                    <strong>Target SAT Increase:</strong> 120-150 points<br>
                                    <strong>Timeline:</strong> 3-4 months of focused preparation
                                </p>
                            </div>
                            {{end}}
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px; background: linear-gradient(135deg, #4361ee 0%, #3a0ca3 100%); color: #ffffff; text-align: center;">
                            <h2 style="font-size: 28px; font-weight: bold; margin: 0 0 15px 0;">Exclusive Offer</h2>
                            <p style="font-size: 20px; margin: 0 0 30px 0; opacity: 0.95;">Free 4 Week SAT Bootcamp</p>
                            <a href="https://www.prepitus.com/" style="display: inline-block; background: #ffffff; color: #4361ee; padding: 16px 40px; border-radius: 50px; text-decoration: none; font-weight: bold; font-size: 16px;">
                                Start Your FREE Bootcamp Now
                            </a>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px 30px; text-align: center;">
                            <div style="background: #f0f9ff; border: 2px solid #0ea5e9; border-radius: 12px; padding: 30px;">
                                <h3 style="color: #0369a1; font-size: 22px; margin: 0 0 15px 0;">Your Detailed Report</h3>
                                <p style="color: #475569; font-size: 16px; margin: 0;">
                                    <strong>A comprehensive PDF report has been attached to this email</strong>
                                </p>
                            </div>
                        </td>
                    </tr>
                    <tr>
                        <td style="background: #1a202c; color: #a0aec0; padding: 40px 30px; text-align: center;">
                            <div style="font-size: 24px; font-weight: bold; color: #ffffff; margin-bottom: 15px;">Prepitus</div>
                            <p style="font-size: 16px; margin: 0 0 20px 0;">Empowering students to achieve their college dreams</p>
                            <p style="font-size: 12px; margin: 20px 0 0 0; opacity: 0.8; line-height: 1.6;">
                                You're receiving this email because you used the Prepitus College Chances Calculator.<br>
                                This report is confidential and intended solely for the recipient.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
