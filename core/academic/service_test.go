package academic_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/acadly/spams/core/academic"
	testutil "github.com/acadly/spams/tests"
)

func TestService_Dashboards(t *testing.T) {
	svc := testutil.NewTestService(t)

	t.Run("student", func(t *testing.T) {
		dash, err := svc.StudentDashboard()
		if err != nil {
			t.Fatalf("StudentDashboard() error = %v", err)
		}
		sd, ok := dash.(academic.StudentDashboard)
		if !ok {
			t.Fatalf("StudentDashboard() = %T, want StudentDashboard", dash)
		}
		assert.Equal(t, "s1", sd.User.ID)
	})

	t.Run("faculty", func(t *testing.T) {
		dash, err := svc.FacultyDashboard("f1")
		if err != nil {
			t.Fatalf("FacultyDashboard() error = %v", err)
		}
		fd, ok := dash.(academic.FacultyDashboard)
		if !ok {
			t.Fatalf("FacultyDashboard() = %T, want FacultyDashboard", dash)
		}
		assert.Equal(t, "f1", fd.User.ID)
	})

	t.Run("proctor", func(t *testing.T) {
		dash, err := svc.ProctorDashboard("p1")
		if err != nil {
			t.Fatalf("ProctorDashboard() error = %v", err)
		}
		pd, ok := dash.(academic.ProctorDashboard)
		if !ok {
			t.Fatalf("ProctorDashboard() = %T, want ProctorDashboard", dash)
		}
		assert.Equal(t, "p1", pd.User.ID)
	})

	t.Run("role mismatch", func(t *testing.T) {
		if _, err := svc.FacultyDashboard("s1"); errors.Cause(err) != academic.ErrUserNotFound {
			t.Errorf("FacultyDashboard(student id) error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("any user by id", func(t *testing.T) {
		dash, err := svc.DashboardFor("p1")
		if err != nil {
			t.Fatalf("DashboardFor() error = %v", err)
		}
		assert.IsType(t, academic.ProctorDashboard{}, dash)
	})
}

func TestService_Marks(t *testing.T) {
	svc := testutil.NewTestService(t)

	mark, err := svc.AddCIEMark(academic.CIEMark{StudentID: "s1", SubjectID: "sub1", CIENo: 3, Expected: 50, Obtained: 44, Total: 50, Date: "2026-01-10"})
	if err != nil {
		t.Fatalf("AddCIEMark() error = %v", err)
	}
	assert.Len(t, svc.ListCIEMarks("s1"), 6)

	obtained := 48
	updated, err := svc.UpdateCIEMarkByID(mark.ID, academic.UpdateCIEMark{Obtained: &obtained})
	if err != nil {
		t.Fatalf("UpdateCIEMarkByID() error = %v", err)
	}
	assert.Equal(t, 48, updated.Obtained)
	// untouched fields survive
	assert.Equal(t, 3, updated.CIENo)

	if _, err := svc.UpdateCIEMarkByID("cie_missing", academic.UpdateCIEMark{Obtained: &obtained}); errors.Cause(err) != academic.ErrNotFound {
		t.Errorf("UpdateCIEMarkByID() error = %v, want ErrNotFound", err)
	}
}

func TestService_Attendance(t *testing.T) {
	svc := testutil.NewTestService(t)

	before := len(svc.ListAttendance("s1"))
	rec, err := svc.AddAttendance(academic.AttendanceRecord{StudentID: "s1", SubjectID: "sub2", Date: "2026-01-12", Status: academic.AttendanceAbsent, Reason: "sick"})
	if err != nil {
		t.Fatalf("AddAttendance() error = %v", err)
	}
	assert.NotEmpty(t, rec.ID)
	assert.Len(t, svc.ListAttendance("s1"), before+1)
}

func TestService_Reasons(t *testing.T) {
	svc := testutil.NewTestService(t)

	reason, err := svc.AddReason(academic.Reason{StudentID: "s1", SubjectID: "sub1", Date: "2026-01-12", Text: "bus strike"})
	if err != nil {
		t.Fatalf("AddReason() error = %v", err)
	}

	// pending for the faculty owning sub1
	listed := svc.ListReasons("f1")
	if assert.Len(t, listed, 1) {
		assert.Empty(t, listed[0].FacultyReply)
	}

	replied, err := svc.UpdateReasonFeedback(reason.ID, "noted, rest up")
	if err != nil {
		t.Fatalf("UpdateReasonFeedback() error = %v", err)
	}
	assert.Equal(t, "noted, rest up", replied.FacultyReply)
	assert.NotEmpty(t, replied.RepliedAt)
}

func TestService_Messages(t *testing.T) {
	svc := testutil.NewTestService(t)

	sent, err := svc.SendMessage(academic.Message{SenderID: "s1", ReceiverRole: academic.RoleProctor, Body: "requesting a meeting"})
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	assert.False(t, sent.Read)
	assert.NotEmpty(t, sent.Timestamp)

	// visible to the sender and to the role inbox, invisible to others
	assert.Len(t, svc.ListMessages("s1", academic.RoleStudent), 1)
	assert.Len(t, svc.ListMessages("p1", academic.RoleProctor), 1)
	assert.Len(t, svc.ListMessages("f1", academic.RoleFaculty), 0)

	if err := svc.MarkMessageRead(sent.ID); err != nil {
		t.Fatalf("MarkMessageRead() error = %v", err)
	}
	assert.True(t, svc.ListMessages("s1", academic.RoleStudent)[0].Read)
}

func TestService_GenerateReport(t *testing.T) {
	svc := testutil.NewTestService(t)

	t.Run("student performance", func(t *testing.T) {
		rep, err := svc.GenerateReport(academic.ReportStudentPerformance)
		if err != nil {
			t.Fatalf("GenerateReport() error = %v", err)
		}
		if assert.Len(t, rep.Rows, 1) {
			// Alice: 145 obtained of 250 expected
			assert.Equal(t, 58, rep.Rows[0].Value)
		}
		assert.Equal(t, 1, rep.Summary.Students)
		assert.Equal(t, 58, rep.Summary.Average)
	})

	t.Run("attendance summary", func(t *testing.T) {
		rep, err := svc.GenerateReport(academic.ReportAttendanceSummary)
		if err != nil {
			t.Fatalf("GenerateReport() error = %v", err)
		}
		if assert.Len(t, rep.Rows, 1) {
			// 11 of 18 present
			assert.Equal(t, 61, rep.Rows[0].Value)
		}
	})

	t.Run("cie summary", func(t *testing.T) {
		rep, err := svc.GenerateReport(academic.ReportCIESummary)
		if err != nil {
			t.Fatalf("GenerateReport() error = %v", err)
		}
		if assert.Len(t, rep.Rows, 1) {
			assert.Equal(t, 145, rep.Rows[0].Value)
			assert.Equal(t, "145/250", rep.Rows[0].Detail)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := svc.GenerateReport("vibes"); errors.Cause(err) != academic.ErrUnknownReport {
			t.Errorf("GenerateReport() error = %v, want ErrUnknownReport", err)
		}
	})
}

func TestService_ResetAndClear(t *testing.T) {
	svc := testutil.NewTestService(t)

	testutil.CreateLeave(t, svc, "s1", "fever")
	if !svc.ResetToSeed() {
		t.Fatal("ResetToSeed() = false")
	}
	assert.Len(t, svc.ListLeaves("", ""), 0)

	doc := svc.Clear()
	assert.NotEmpty(t, doc.Subjects)
}
