package academic

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
)

// ErrUnknownRole is returned when a user record carries a role no generator
// exists for.
var ErrUnknownRole = errors.New("unknown role")

// Dashboard is a precomputed role-specific view model. The concrete types
// are StudentDashboard, FacultyDashboard and ProctorDashboard; the interface
// is sealed so a new role cannot be added without a generator.
type Dashboard interface {
	isDashboard()
}

type (
	// SubjectProgress is one catalog subject with the student's aggregate
	// CIE performance.
	SubjectProgress struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Progress int    `json:"progress"`
		Score    int    `json:"score"`
	}

	// CIEChartPoint is one mark of the student's CIE chart series.
	CIEChartPoint struct {
		CIE      string `json:"cie"`
		Expected int    `json:"expected"`
		Obtained int    `json:"obtained"`
	}

	// TimelinePoint is one month of the attendance trend.
	TimelinePoint struct {
		Date string `json:"date"`
		Val  int    `json:"val"`
	}

	Performance struct {
		Attendance int `json:"attendance"`
	}

	StudentDashboard struct {
		User               Student           `json:"user"`
		Role               Role              `json:"role"`
		Subjects           []SubjectProgress `json:"dashboardSubjects"`
		CIEChart           []CIEChartPoint   `json:"cie_marks_for_chart"`
		AttendanceTimeline []TimelinePoint   `json:"attendanceTimeline"`
		UpcomingClasses    []UpcomingClass   `json:"upcomingClasses"`
		Assignment         *Assignment       `json:"assignment"`
		PendingQuizzes     []PendingQuiz     `json:"pendingQuizzes"`
		Performance        Performance       `json:"performance"`
		CompletedCourses   int               `json:"completedCourses"`
		HoursSpent         string            `json:"hoursSpent"`
	}

	FacultyStats struct {
		TotalSubjects        int `json:"totalSubjects"`
		AverageAttendance    int `json:"averageAttendance"`
		PendingAssignments   int `json:"pendingAssignments"`
		CompletedEvaluations int `json:"completedEvaluations"`
	}

	FacultyDashboard struct {
		User                Staff           `json:"user"`
		Role                Role            `json:"role"`
		FacultySubjects     []Subject       `json:"facultySubjects"`
		TotalStudents       int             `json:"totalStudents"`
		PendingCertificates int             `json:"pendingCertificates"`
		PendingReasons      int             `json:"pendingReasons"`
		UpcomingClasses     []UpcomingClass `json:"upcomingClasses"`
		RecentMarks         []CIEMark       `json:"recentMarks"`
		Stats               FacultyStats    `json:"dashboardStats"`
	}

	ProctorStats struct {
		AveragePerformance int `json:"averagePerformance"`
		AtRiskStudents     int `json:"atRiskStudents"`
		PendingActions     int `json:"pendingActions"`
	}

	ProctorDashboard struct {
		User                 Staff              `json:"user"`
		Role                 Role               `json:"role"`
		ProctorStudents      []Student          `json:"proctorStudents"`
		TotalStudents        int                `json:"totalStudents"`
		StudentAttendance    []AttendanceRecord `json:"studentAttendance"`
		StudentCIEMarks      []CIEMark          `json:"studentCieMarks"`
		PendingLeaves        int                `json:"pendingLeaves"`
		AttendancePercentage int                `json:"attendancePercentage"`
		Stats                ProctorStats       `json:"dashboardStats"`
	}
)

func (StudentDashboard) isDashboard() {}
func (FacultyDashboard) isDashboard() {}
func (ProctorDashboard) isDashboard() {}

// GenerateDashboard builds the view model for the given user's role. Pure:
// it never mutates doc, and two calls on the same inputs return deep-equal
// results.
func GenerateDashboard(doc *Document, usr User) (Dashboard, error) {
	switch usr.Role {
	case RoleStudent:
		return NewStudentDashboard(doc, usr), nil
	case RoleFaculty:
		return NewFacultyDashboard(doc, usr), nil
	case RoleProctor:
		return NewProctorDashboard(doc, usr), nil
	default:
		return nil, errors.Wrapf(ErrUnknownRole, "role %q", usr.Role)
	}
}

// NewStudentDashboard joins the catalog, the student's CIE marks and the
// attendance log into the student view model.
func NewStudentDashboard(doc *Document, usr User) StudentDashboard {
	student, ok := doc.FindStudent(usr.ID)
	if !ok {
		// tolerate a dangling users->students link
		student = Student{ID: usr.ID, Role: usr.Role, Name: usr.Name, Roll: usr.Roll, Email: usr.Email, ProctorID: usr.ProctorID}
	}

	subjects := make([]SubjectProgress, 0, len(doc.Subjects))
	completed := 0
	for _, sub := range doc.Subjects {
		var obtained, expected int
		for _, m := range doc.CIEMarks {
			if m.StudentID == student.ID && m.SubjectID == sub.ID {
				obtained += m.Obtained
				expected += m.Expected
			}
		}
		progress := roundedPercent(obtained, expected)
		if progress >= 100 {
			completed++
		}
		// score is currently derived the same way as progress
		subjects = append(subjects, SubjectProgress{ID: sub.ID, Name: sub.Name, Progress: progress, Score: progress})
	}

	var chart []CIEChartPoint
	for _, m := range doc.CIEMarks {
		if m.StudentID == student.ID {
			chart = append(chart, CIEChartPoint{CIE: fmt.Sprintf("CIE-%d", m.CIENo), Expected: m.Expected, Obtained: m.Obtained})
		}
	}

	timeline := attendanceTimeline(doc.Attendance, student.ID)

	// legacy metric: the share of fully-present months, not the overall
	// presence ratio
	fullMonths := 0
	for _, p := range timeline {
		if p.Val == 100 {
			fullMonths++
		}
	}
	attendancePercent := roundedPercent(fullMonths, len(timeline))

	return StudentDashboard{
		User:               student,
		Role:               RoleStudent,
		Subjects:           subjects,
		CIEChart:           chart,
		AttendanceTimeline: timeline,
		UpcomingClasses:    doc.UpcomingClasses,
		Assignment:         doc.Assignment,
		PendingQuizzes:     doc.PendingQuizzes,
		Performance:        Performance{Attendance: attendancePercent},
		CompletedCourses:   completed,
		HoursSpent:         "12h",
	}
}

// NewFacultyDashboard aggregates the faculty member's subjects, marks and
// pending-action counters.
func NewFacultyDashboard(doc *Document, usr User) FacultyDashboard {
	faculty := findStaff(doc.Faculty, usr)

	var subjects []Subject
	for _, sub := range doc.Subjects {
		if sub.FacultyID == usr.ID {
			subjects = append(subjects, sub)
		}
	}

	var marks []CIEMark
	for _, m := range doc.CIEMarks {
		for _, sub := range subjects {
			if sub.ID == m.SubjectID {
				marks = append(marks, m)
				break
			}
		}
	}
	// last 5 in collection order, not time-sorted
	recent := marks
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	pendingCerts := 0
	for _, c := range doc.Certificates {
		if !c.Forwarded {
			pendingCerts++
		}
	}
	pendingReasons := 0
	for _, r := range doc.Reasons {
		if r.FacultyReply == "" {
			pendingReasons++
		}
	}

	var classes []UpcomingClass
	for _, cls := range doc.UpcomingClasses {
		if cls.Teacher == faculty.Name {
			classes = append(classes, cls)
		}
	}

	return FacultyDashboard{
		User:                faculty,
		Role:                RoleFaculty,
		FacultySubjects:     subjects,
		TotalStudents:       len(doc.Students),
		PendingCertificates: pendingCerts,
		PendingReasons:      pendingReasons,
		UpcomingClasses:     classes,
		RecentMarks:         recent,
		Stats: FacultyStats{
			TotalSubjects: len(subjects),
			// placeholder statistics, not derived from data
			AverageAttendance:    85,
			PendingAssignments:   3,
			CompletedEvaluations: 12,
		},
	}
}

// NewProctorDashboard aggregates attendance, marks and pending leaves over
// the proctor's cohort.
func NewProctorDashboard(doc *Document, usr User) ProctorDashboard {
	proctor := findStaff(doc.Proctors, usr)

	var students []Student
	for _, s := range doc.Students {
		if s.ProctorID == usr.ID {
			students = append(students, s)
		}
	}
	cohort := make(map[string]bool, len(students))
	for _, s := range students {
		cohort[s.ID] = true
	}

	var attendance []AttendanceRecord
	present := 0
	for _, a := range doc.Attendance {
		if cohort[a.StudentID] {
			attendance = append(attendance, a)
			if a.Status == AttendancePresent {
				present++
			}
		}
	}

	var marks []CIEMark
	for _, m := range doc.CIEMarks {
		if cohort[m.StudentID] {
			marks = append(marks, m)
		}
	}

	pendingLeaves := 0
	for _, l := range doc.Leaves {
		if cohort[l.StudentID] && l.Status != LeaveApproved {
			pendingLeaves++
		}
	}

	atRisk := 0
	for _, s := range students {
		var sum, n int
		for _, m := range marks {
			if m.StudentID == s.ID {
				sum += m.Obtained
				n++
			}
		}
		avg := 0.0
		if n > 0 {
			avg = float64(sum) / float64(n)
		}
		if avg < 60 {
			atRisk++
		}
	}

	return ProctorDashboard{
		User:                 proctor,
		Role:                 RoleProctor,
		ProctorStudents:      students,
		TotalStudents:        len(students),
		StudentAttendance:    attendance,
		StudentCIEMarks:      marks,
		PendingLeaves:        pendingLeaves,
		AttendancePercentage: roundedPercent(present, len(attendance)),
		Stats: ProctorStats{
			AveragePerformance: 75, // placeholder, not derived from data
			AtRiskStudents:     atRisk,
			PendingActions:     pendingLeaves,
		},
	}
}

// attendanceTimeline groups a student's attendance records by calendar month
// (short month name, year not disambiguated) in first-seen order and derives
// the per-month presence percentage.
func attendanceTimeline(records []AttendanceRecord, studentID string) []TimelinePoint {
	type tally struct{ present, total int }
	byMonth := make(map[string]*tally)
	var order []string

	for _, a := range records {
		if a.StudentID != studentID {
			continue
		}
		date, err := time.Parse("2006-01-02", a.Date)
		if err != nil {
			continue
		}
		month := date.Format("Jan")
		t, ok := byMonth[month]
		if !ok {
			t = &tally{}
			byMonth[month] = t
			order = append(order, month)
		}
		t.total++
		if a.Status == AttendancePresent {
			t.present++
		}
	}

	var timeline []TimelinePoint
	for _, month := range order {
		t := byMonth[month]
		timeline = append(timeline, TimelinePoint{Date: month, Val: roundedPercent(t.present, t.total)})
	}
	return timeline
}

func findStaff(staff []Staff, usr User) Staff {
	for _, st := range staff {
		if st.ID == usr.ID {
			return st
		}
	}
	return Staff{ID: usr.ID, Name: usr.Name, Email: usr.Email}
}

// roundedPercent returns round(100*n/total), or 0 when total is 0.
func roundedPercent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(n) / float64(total)))
}
