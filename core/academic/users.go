package academic

import (
	"fmt"
	"net/mail"
	"strconv"

	"github.com/pkg/errors"

	"github.com/acadly/spams/core"
)

// CheckEmailUniqueness reports ErrEmailExists (as a ValidationError) when a
// user with the given email is already registered. Uniqueness lives here, at
// registration time; the store layer does not enforce it.
func (svc *Service) CheckEmailUniqueness(email string) error {
	doc := svc.store.Read()
	if _, ok := doc.FindUserByEmail(email); ok {
		return core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	}
	return nil
}

// RegisterStudent creates a student-role User and the matching Student
// record (same id) in one write. The student's subjects snapshot is taken
// from the per-semester catalog; totalCredits is the snapshot's sum.
func (svc *Service) RegisterStudent(ns NewStudent) (Student, error) {
	if err := ns.Validate(svc); err != nil {
		return Student{}, err
	}

	doc := svc.store.Read()
	// re-check against the snapshot we are about to mutate
	if _, ok := doc.FindUserByEmail(ns.Email); ok {
		return Student{}, core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	}

	id := newID("stu")
	subjects := SubjectsForSemester(ns.Semester)
	credits := 0
	for _, sub := range subjects {
		credits += sub.Credits
	}

	usr := User{
		ID:        id,
		Role:      RoleStudent,
		Name:      ns.Name,
		Email:     ns.Email,
		Password:  ns.Password,
		Roll:      ns.Roll,
		ProctorID: ns.ProctorID,
	}
	student := Student{
		ID:               id,
		Role:             RoleStudent,
		Name:             ns.Name,
		Roll:             ns.Roll,
		Email:            ns.Email,
		ProctorID:        ns.ProctorID,
		Department:       ns.Department,
		StudyYear:        ns.StudyYear,
		Semester:         strconv.Itoa(ns.Semester),
		Subjects:         subjects,
		TotalCredits:     credits,
		Status:           "active",
		RegistrationDate: nowISO(),
	}

	doc.Users = append(doc.Users, usr)
	doc.Students = append(doc.Students, student)
	if err := svc.write(doc); err != nil {
		return Student{}, err
	}

	svc.sendWelcomeEmail(usr)
	return student, nil
}

// RegisterFaculty creates a faculty-role User and the matching Staff record.
func (svc *Service) RegisterFaculty(nf NewFaculty) (Staff, error) {
	if err := nf.Validate(svc); err != nil {
		return Staff{}, err
	}

	doc := svc.store.Read()
	if _, ok := doc.FindUserByEmail(nf.Email); ok {
		return Staff{}, core.NewValidationError(ErrEmailExists, core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
	}

	id := newID("fac")
	usr := User{ID: id, Role: RoleFaculty, Name: nf.Name, Email: nf.Email, Password: nf.Password}
	staff := Staff{ID: id, Name: nf.Name, Email: nf.Email}

	doc.Users = append(doc.Users, usr)
	doc.Faculty = append(doc.Faculty, staff)
	if err := svc.write(doc); err != nil {
		return Staff{}, err
	}

	svc.sendWelcomeEmail(usr)
	return staff, nil
}

// ListUsers returns every login identity.
func (svc *Service) ListUsers() []User {
	return svc.store.Read().Users
}

// GetUser returns the user with the given id.
func (svc *Service) GetUser(id string) (User, error) {
	doc := svc.store.Read()
	if usr, ok := doc.FindUser(id); ok {
		return usr, nil
	}
	return User{}, errors.Wrapf(ErrUserNotFound, "id %s", id)
}

// GetUserByEmail returns the user with the given email.
func (svc *Service) GetUserByEmail(email string) (User, error) {
	doc := svc.store.Read()
	if usr, ok := doc.FindUserByEmail(core.CleanString(email, true /* lower */)); ok {
		return usr, nil
	}
	return User{}, errors.Wrapf(ErrUserNotFound, "email %s", email)
}

// UpdateUser describes a partial profile update; nil fields are left as-is.
type UpdateUser struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Roll      *string `json:"roll"`
	ProctorID *string `json:"proctorId"`
}

// UpdateUserProfile shallow-merges the patch over the stored user record.
func (svc *Service) UpdateUserProfile(id string, patch UpdateUser) (User, error) {
	doc := svc.store.Read()
	for i := range doc.Users {
		if doc.Users[i].ID != id {
			continue
		}
		usr := &doc.Users[i]
		if patch.Name != nil {
			usr.Name = *patch.Name
		}
		if patch.Email != nil {
			usr.Email = core.CleanString(*patch.Email, true /* lower */)
		}
		if patch.Password != nil {
			usr.Password = *patch.Password
		}
		if patch.Roll != nil {
			usr.Roll = *patch.Roll
		}
		if patch.ProctorID != nil {
			usr.ProctorID = *patch.ProctorID
		}
		if err := svc.write(doc); err != nil {
			return User{}, err
		}
		return *usr, nil
	}
	return User{}, errors.Wrapf(ErrUserNotFound, "id %s", id)
}

func (svc *Service) sendWelcomeEmail(usr User) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Welcome to " + svc.conf.AppName,
		BodyStr: fmt.Sprintf("Hi %s,\n\nYour %s account is ready. You can sign in at %s.\n", usr.Name, usr.Role, svc.conf.FrontendBaseURL),
	})
}
