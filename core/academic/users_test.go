package academic_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/acadly/spams/core"
	"github.com/acadly/spams/core/academic"
	testutil "github.com/acadly/spams/tests"
)

func TestService_RegisterStudent(t *testing.T) {
	svc := testutil.NewTestService(t)

	stu := testutil.CreateStudent(t, svc, "Eve", "eve@example.com", 3, "p1")

	assert.True(t, strings.HasPrefix(stu.ID, "stu_"))
	assert.Equal(t, academic.RoleStudent, stu.Role)
	assert.Equal(t, "3", stu.Semester)
	assert.Equal(t, "active", stu.Status)
	assert.NotEmpty(t, stu.RegistrationDate)

	// subjects snapshot and credit total come from the semester catalog
	catalog := academic.SubjectsForSemester(3)
	assert.Equal(t, catalog, stu.Subjects)
	credits := 0
	for _, sub := range catalog {
		credits += sub.Credits
	}
	assert.Equal(t, credits, stu.TotalCredits)

	// a login identity with the same id exists
	usr, err := svc.GetUser(stu.ID)
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	assert.Equal(t, "eve@example.com", usr.Email)
	assert.Equal(t, academic.RoleStudent, usr.Role)

	// and the new account can log in right away
	assert.True(t, svc.Authenticate("eve@example.com", "pass").Success)
}

func TestService_RegisterStudent_validation(t *testing.T) {
	svc := testutil.NewTestService(t)

	tests := []struct {
		name string
		new  academic.NewStudent
	}{
		{name: "blank name", new: academic.NewStudent{Name: "  ", Email: "x@example.com", Password: "pass", PasswordConfirm: "pass", Roll: "R1", Department: "CSE", StudyYear: "2", Semester: 3, ProctorID: "p1"}},
		{name: "bad email", new: academic.NewStudent{Name: "X", Email: "not-an-email", Password: "pass", PasswordConfirm: "pass", Roll: "R1", Department: "CSE", StudyYear: "2", Semester: 3, ProctorID: "p1"}},
		{name: "password mismatch", new: academic.NewStudent{Name: "X", Email: "x@example.com", Password: "pass", PasswordConfirm: "ssap", Roll: "R1", Department: "CSE", StudyYear: "2", Semester: 3, ProctorID: "p1"}},
		{name: "semester out of range", new: academic.NewStudent{Name: "X", Email: "x@example.com", Password: "pass", PasswordConfirm: "pass", Roll: "R1", Department: "CSE", StudyYear: "2", Semester: 9, ProctorID: "p1"}},
		{name: "duplicate email", new: academic.NewStudent{Name: "X", Email: "alice@example.com", Password: "pass", PasswordConfirm: "pass", Roll: "R1", Department: "CSE", StudyYear: "2", Semester: 3, ProctorID: "p1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterStudent(tt.new)
			var vErr *core.ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("RegisterStudent() error = %v, want ValidationError", err)
			}
		})
	}
}

func TestService_RegisterFaculty(t *testing.T) {
	svc := testutil.NewTestService(t)

	staff, err := svc.RegisterFaculty(academic.NewFaculty{
		Name:            "Prof. Carol",
		Email:           "carol@example.com",
		Password:        "pass",
		PasswordConfirm: "pass",
	})
	if err != nil {
		t.Fatalf("RegisterFaculty() error = %v", err)
	}
	assert.True(t, strings.HasPrefix(staff.ID, "fac_"))
	assert.True(t, svc.Authenticate("carol@example.com", "pass").Success)

	// duplicate email across roles is still a duplicate
	_, err = svc.RegisterFaculty(academic.NewFaculty{
		Name:            "Prof. Carol II",
		Email:           "carol@example.com",
		Password:        "pass",
		PasswordConfirm: "pass",
	})
	if errors.Cause(err) == nil {
		t.Fatal("RegisterFaculty() accepted a duplicate email")
	}
}

func TestService_idsAreUnique(t *testing.T) {
	svc := testutil.NewTestService(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		mark, err := svc.AddCIEMark(academic.CIEMark{StudentID: "s1", SubjectID: "sub1", CIENo: 1, Expected: 50, Obtained: 40, Total: 50, Date: "2026-01-05"})
		if err != nil {
			t.Fatalf("AddCIEMark() error = %v", err)
		}
		if seen[mark.ID] {
			t.Fatalf("duplicate id %s after %d inserts", mark.ID, i+1)
		}
		seen[mark.ID] = true
	}
}

func TestService_UpdateUserProfile(t *testing.T) {
	svc := testutil.NewTestService(t)

	name := "Alice B."
	usr, err := svc.UpdateUserProfile("s1", academic.UpdateUser{Name: &name})
	if err != nil {
		t.Fatalf("UpdateUserProfile() error = %v", err)
	}
	assert.Equal(t, "Alice B.", usr.Name)
	// untouched fields survive
	assert.Equal(t, "alice@example.com", usr.Email)

	if _, err := svc.UpdateUserProfile("ghost", academic.UpdateUser{Name: &name}); errors.Cause(err) != academic.ErrUserNotFound {
		t.Errorf("UpdateUserProfile() error = %v, want ErrUserNotFound", err)
	}
}
