package academic_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/acadly/spams/core/academic"
	testutil "github.com/acadly/spams/tests"
)

func TestService_ForwardCertificate(t *testing.T) {
	svc := testutil.NewTestService(t)

	// the seed medical certificate c1 is unforwarded
	cert, err := svc.ForwardCertificate("c1", "f1")
	if err != nil {
		t.Fatalf("ForwardCertificate() error = %v", err)
	}
	assert.True(t, cert.Forwarded)
	assert.Equal(t, "f1", cert.FacultyID)

	// one-way: forwarding again fails
	if _, err := svc.ForwardCertificate("c1", "f1"); errors.Cause(err) != academic.ErrAlreadyForwarded {
		t.Errorf("second ForwardCertificate() error = %v, want ErrAlreadyForwarded", err)
	}

	// faculty scoping picks it up
	got := svc.ListCertificates("", "f1")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "c1", got[0].ID)
	}
}

func TestService_AddActivityCertificate(t *testing.T) {
	svc := testutil.NewTestService(t)

	ac, err := svc.AddActivityCertificate(academic.ActivityCertificate{
		StudentID: "s1",
		Type:      "Hackathon",
		File:      "/uploads/hack.pdf",
		Points:    999, // caller-provided points are discarded
		Status:    academic.ActivityApproved,
	})
	if err != nil {
		t.Fatalf("AddActivityCertificate() error = %v", err)
	}
	assert.Contains(t, ac.ID, "act_")
	assert.Equal(t, academic.ActivityPending, ac.Status)
	assert.Equal(t, 0, ac.Points)
	assert.Empty(t, ac.RejectReason)
	assert.NotEmpty(t, ac.Date)
}

func TestService_ApproveActivityCertificate(t *testing.T) {
	svc := testutil.NewTestService(t)

	pointsBefore := studentPoints(t, svc, "s1")

	// the seed activity certificate a1 is pending
	ac, err := svc.ApproveActivityCertificate("a1", 15)
	if err != nil {
		t.Fatalf("ApproveActivityCertificate() error = %v", err)
	}
	assert.Equal(t, academic.ActivityApproved, ac.Status)
	assert.Equal(t, 15, ac.Points)

	// the student's total moves in the same write
	assert.Equal(t, pointsBefore+15, studentPoints(t, svc, "s1"))

	// approving twice must not double-count
	if _, err := svc.ApproveActivityCertificate("a1", 15); errors.Cause(err) != academic.ErrActivityReviewed {
		t.Errorf("second ApproveActivityCertificate() error = %v, want ErrActivityReviewed", err)
	}
	assert.Equal(t, pointsBefore+15, studentPoints(t, svc, "s1"))
}

func TestService_ApproveActivityCertificate_pointsRequired(t *testing.T) {
	svc := testutil.NewTestService(t)

	for _, points := range []int{0, -5} {
		if _, err := svc.ApproveActivityCertificate("a1", points); err == nil {
			t.Errorf("ApproveActivityCertificate(points=%d) succeeded, want error", points)
		}
	}
	// still pending, no points awarded
	got := svc.ListActivityCertificates("s1")
	if assert.Len(t, got, 1) {
		assert.Equal(t, academic.ActivityPending, got[0].Status)
	}
	assert.Equal(t, 0, studentPoints(t, svc, "s1"))
}

func TestService_RejectActivityCertificate(t *testing.T) {
	svc := testutil.NewTestService(t)

	t.Run("reason is mandatory", func(t *testing.T) {
		if _, err := svc.RejectActivityCertificate("a1", "  "); err == nil {
			t.Fatal("RejectActivityCertificate() succeeded without a reason")
		}
	})

	t.Run("rejects with reason", func(t *testing.T) {
		ac, err := svc.RejectActivityCertificate("a1", "certificate unreadable")
		if err != nil {
			t.Fatalf("RejectActivityCertificate() error = %v", err)
		}
		assert.Equal(t, academic.ActivityRejected, ac.Status)
		assert.Equal(t, "certificate unreadable", ac.RejectReason)
		// no points on rejection
		assert.Equal(t, 0, studentPoints(t, svc, "s1"))
	})
}

func TestService_ForwardActivityCertificate(t *testing.T) {
	svc := testutil.NewTestService(t)

	ac, err := svc.ForwardActivityCertificate("a1")
	if err != nil {
		t.Fatalf("ForwardActivityCertificate() error = %v", err)
	}
	assert.Equal(t, academic.ActivityForwarded, ac.Status)

	// forwarded is not terminal: approval still works and awards points
	approved, err := svc.ApproveActivityCertificate("a1", 10)
	if err != nil {
		t.Fatalf("ApproveActivityCertificate() after forward error = %v", err)
	}
	assert.Equal(t, academic.ActivityApproved, approved.Status)
	assert.Equal(t, 10, studentPoints(t, svc, "s1"))
}

func studentPoints(t *testing.T, svc *academic.Service, studentID string) int {
	t.Helper()
	stu, err := svc.GetStudent(studentID)
	if err != nil {
		t.Fatalf("GetStudent() error = %v", err)
	}
	return stu.ActivityPoints
}
