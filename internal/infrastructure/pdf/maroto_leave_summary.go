// Package pdf renders the printable A4 summary of a leave request.
//
// Page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Leave Request Summary  │  Request ID + status      │
//	│  ───────────────────────────────────────────────────────── │
//	│  EMPLOYEE: name / email / department / manager              │
//	│  PERIOD: start | end | total days | reason                  │
//	│  ───────────────────────────────────────────────────────── │
//	│  REVIEW: reviewer / decided at / notes                      │
//	│  ATTACHMENTS: one line per file URL                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appleave "github.com/soprahr/leavedesk-api/internal/application/leave"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appleave.SummaryPDFGenerator = (*MarotoLeaveSummary)(nil)

// MarotoLeaveSummary implements leave.SummaryPDFGenerator with Maroto v2.
type MarotoLeaveSummary struct{}

// NewMarotoLeaveSummary builds the generator.
func NewMarotoLeaveSummary() *MarotoLeaveSummary { return &MarotoLeaveSummary{} }

// GenerateLeaveSummaryPDF renders the document and returns its bytes.
func (g *MarotoLeaveSummary) GenerateLeaveSummaryPDF(
	_ context.Context,
	lr *entity.LeaveRequest,
	employee, reviewer *entity.User,
	attachments []*entity.Attachment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Leave Request Summary", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(lr))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(employeeRows(employee, lr)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(periodRows(lr)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(reviewRows(lr, reviewer)...)

	if len(attachments) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(attachmentRows(attachments)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(lr *entity.LeaveRequest) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Leave Request Summary", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Request "+lr.ID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(string(lr.Status), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3,
			}),
		),
	)
}

func employeeRows(employee *entity.User, lr *entity.LeaveRequest) []core.Row {
	name := lr.EmployeeName
	email, department := "", ""
	if employee != nil {
		email = employee.Email
		department = employee.Department
	}
	return []core.Row{
		labelValueRow("Employee", name),
		labelValueRow("Email", email),
		labelValueRow("Department", department),
	}
}

func periodRows(lr *entity.LeaveRequest) []core.Row {
	return []core.Row{
		labelValueRow("From", lr.StartDate.Format("02/01/2006")),
		labelValueRow("To", lr.EndDate.Format("02/01/2006")),
		labelValueRow("Total days", fmt.Sprintf("%d", lr.TotalDays())),
		labelValueRow("Reason", lr.Reason),
	}
}

func reviewRows(lr *entity.LeaveRequest, reviewer *entity.User) []core.Row {
	reviewerName := ""
	if lr.ReviewedByName != nil {
		reviewerName = *lr.ReviewedByName
	} else if reviewer != nil {
		reviewerName = reviewer.Name
	}
	decidedAt := "pending review"
	if lr.ReviewedAt != nil {
		decidedAt = lr.ReviewedAt.Format("02/01/2006 15:04")
	}
	notes := ""
	if lr.ReviewNotes != nil {
		notes = *lr.ReviewNotes
	}
	return []core.Row{
		labelValueRow("Reviewer", reviewerName),
		labelValueRow("Decided at", decidedAt),
		labelValueRow("Notes", notes),
	}
}

func attachmentRows(attachments []*entity.Attachment) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("Attachments", props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary}),
		)),
	}
	for _, a := range attachments {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(a.FileURL, props.Text{Size: 8, Color: colorGray}),
		)))
	}
	return rows
}

func labelValueRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9})),
		col.New(9).Add(text.New(value, props.Text{Size: 9})),
	)
}
