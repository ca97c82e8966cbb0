package academic

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrUnknownReport = errors.New("unknown report type")

// Report kinds.
const (
	ReportStudentPerformance = "student_performance"
	ReportAttendanceSummary  = "attendance_summary"
	ReportCIESummary         = "cie_summary"
)

// Report is an aggregated snapshot generated on demand; nothing is persisted.
type Report struct {
	Type        string       `json:"type"`
	GeneratedAt string       `json:"generatedAt"`
	Rows        []ReportRow  `json:"rows"`
	Summary     ReportTotals `json:"summary"`
}

// ReportRow is one per-student line of a report.
type ReportRow struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Roll        string `json:"roll"`
	Value       int    `json:"value"`
	Detail      string `json:"detail,omitempty"`
}

// ReportTotals carries the aggregate over all rows.
type ReportTotals struct {
	Students int `json:"students"`
	Average  int `json:"average"`
}

// GenerateReport aggregates the current document into the requested report.
func (svc *Service) GenerateReport(reportType string) (Report, error) {
	doc := svc.store.Read()

	var rows []ReportRow
	switch reportType {
	case ReportStudentPerformance:
		rows = performanceRows(&doc)
	case ReportAttendanceSummary:
		rows = attendanceRows(&doc)
	case ReportCIESummary:
		rows = cieRows(&doc)
	default:
		return Report{}, errors.Wrapf(ErrUnknownReport, "%q", reportType)
	}

	total := 0
	for _, r := range rows {
		total += r.Value
	}
	avg := 0
	if len(rows) > 0 {
		avg = total / len(rows)
	}
	return Report{
		Type:        reportType,
		GeneratedAt: nowISO(),
		Rows:        rows,
		Summary:     ReportTotals{Students: len(rows), Average: avg},
	}, nil
}

// performanceRows scores each student as the rounded percentage of marks
// obtained against marks expected across every logged CIE.
func performanceRows(doc *Document) []ReportRow {
	rows := make([]ReportRow, 0, len(doc.Students))
	for _, stu := range doc.Students {
		obtained, expected := 0, 0
		for _, m := range doc.CIEMarks {
			if m.StudentID == stu.ID {
				obtained += m.Obtained
				expected += m.Expected
			}
		}
		rows = append(rows, ReportRow{
			StudentID:   stu.ID,
			StudentName: stu.Name,
			Roll:        stu.Roll,
			Value:       roundedPercent(obtained, expected),
		})
	}
	return rows
}

func attendanceRows(doc *Document) []ReportRow {
	rows := make([]ReportRow, 0, len(doc.Students))
	for _, stu := range doc.Students {
		present, total := 0, 0
		for _, rec := range doc.Attendance {
			if rec.StudentID != stu.ID {
				continue
			}
			total++
			if rec.Status == AttendancePresent {
				present++
			}
		}
		rows = append(rows, ReportRow{
			StudentID:   stu.ID,
			StudentName: stu.Name,
			Roll:        stu.Roll,
			Value:       roundedPercent(present, total),
		})
	}
	return rows
}

func cieRows(doc *Document) []ReportRow {
	rows := make([]ReportRow, 0, len(doc.Students))
	for _, stu := range doc.Students {
		obtained, outOf := 0, 0
		for _, m := range doc.CIEMarks {
			if m.StudentID == stu.ID {
				obtained += m.Obtained
				outOf += m.Total
			}
		}
		rows = append(rows, ReportRow{
			StudentID:   stu.ID,
			StudentName: stu.Name,
			Roll:        stu.Roll,
			Value:       obtained,
			Detail:      markFraction(obtained, outOf),
		})
	}
	return rows
}

func markFraction(obtained, outOf int) string {
	return fmt.Sprintf("%d/%d", obtained, outOf)
}
