package academic

import "github.com/acadly/spams/core"

// NewStudent contains information needed to register a Student and the
// matching student-role User.
type NewStudent struct {
	Name            string `json:"name" validate:"required,notblank"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Roll            string `json:"roll" validate:"required,notblank"`
	Department      string `json:"department" validate:"required"`
	StudyYear       string `json:"studyYear" validate:"required"`
	Semester        int    `json:"semester" validate:"required,min=1,max=8"`
	ProctorID       string `json:"proctorId" validate:"required"`
}

func (ns *NewStudent) Validate(svc *Service) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Roll = core.CleanString(ns.Roll)

	if err := core.Validate.Struct(ns); err != nil {
		return core.NewValidationError(err, core.TranslateValidationErrors(err)...)
	}
	return svc.CheckEmailUniqueness(ns.Email)
}

// NewFaculty contains information needed to register a faculty-role User and
// the matching Staff record.
type NewFaculty struct {
	Name            string `json:"name" validate:"required,notblank"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=4"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Department      string `json:"department"`
}

func (nf *NewFaculty) Validate(svc *Service) error {
	nf.Name = core.CleanString(nf.Name)
	nf.Email = core.CleanString(nf.Email, true /* lower */)

	if err := core.Validate.Struct(nf); err != nil {
		return core.NewValidationError(err, core.TranslateValidationErrors(err)...)
	}
	return svc.CheckEmailUniqueness(nf.Email)
}

// NewLeave is a student leave request; the status always starts out pending.
type NewLeave struct {
	StudentID string `json:"studentId" validate:"required"`
	From      string `json:"from" validate:"required"`
	To        string `json:"to" validate:"required"`
	Reason    string `json:"reason" validate:"required,notblank"`
	DocLink   string `json:"docLink"`
}

func (nl *NewLeave) Validate() error {
	nl.Reason = core.CleanString(nl.Reason)

	if err := core.Validate.Struct(nl); err != nil {
		return core.NewValidationError(err, core.TranslateValidationErrors(err)...)
	}
	return nil
}
