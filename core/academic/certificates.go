package academic

import (
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/acadly/spams/core"
)

var (
	ErrAlreadyForwarded = errors.New("certificate has already been forwarded")
	ErrPointsRequired   = errors.New("activity points must be greater than zero")
	ErrReasonRequired   = errors.New("a reason is required to reject an activity certificate")
	ErrActivityReviewed = errors.New("activity certificate has already been reviewed")
)

// ListCertificates returns medical and leave certificates, optionally scoped
// to one student or to the faculty member they were forwarded to.
func (svc *Service) ListCertificates(studentID, facultyID string) []Certificate {
	doc := svc.store.Read()

	certs := make([]Certificate, 0, len(doc.Certificates))
	for _, c := range doc.Certificates {
		if studentID != "" && c.StudentID != studentID {
			continue
		}
		if facultyID != "" && c.FacultyID != facultyID {
			continue
		}
		certs = append(certs, c)
	}
	return certs
}

// AddCertificate appends an unforwarded certificate with a generated id.
func (svc *Service) AddCertificate(cert Certificate) (Certificate, error) {
	doc := svc.store.Read()
	cert.ID = newID("cert")
	cert.Forwarded = false
	if cert.Date == "" {
		cert.Date = today()
	}
	doc.Certificates = append(doc.Certificates, cert)
	if err := svc.write(doc); err != nil {
		return Certificate{}, err
	}
	return cert, nil
}

// CertificatePatch holds the certificate fields that can be updated in place.
// Nil fields are left untouched.
type CertificatePatch struct {
	Type   *string
	Date   *string
	Reason *string
	File   *string
}

// UpdateCertificate shallow-merges the patch into the stored certificate.
func (svc *Service) UpdateCertificate(id string, patch CertificatePatch) (Certificate, error) {
	doc := svc.store.Read()
	i, err := findCertificate(&doc, id)
	if err != nil {
		return Certificate{}, err
	}

	if patch.Type != nil {
		doc.Certificates[i].Type = *patch.Type
	}
	if patch.Date != nil {
		doc.Certificates[i].Date = *patch.Date
	}
	if patch.Reason != nil {
		doc.Certificates[i].Reason = *patch.Reason
	}
	if patch.File != nil {
		doc.Certificates[i].File = *patch.File
	}

	if err := svc.write(doc); err != nil {
		return Certificate{}, err
	}
	return doc.Certificates[i], nil
}

// ForwardCertificate marks the certificate as forwarded to the given faculty
// member and notifies them. Forwarding is one-way; a forwarded certificate
// cannot be forwarded again.
func (svc *Service) ForwardCertificate(id, facultyID string) (Certificate, error) {
	doc := svc.store.Read()
	i, err := findCertificate(&doc, id)
	if err != nil {
		return Certificate{}, err
	}
	if doc.Certificates[i].Forwarded {
		return Certificate{}, errors.Wrapf(ErrAlreadyForwarded, "certificate %s", id)
	}

	doc.Certificates[i].Forwarded = true
	doc.Certificates[i].FacultyID = facultyID

	if err := svc.write(doc); err != nil {
		return Certificate{}, err
	}

	cert := doc.Certificates[i]
	svc.notifyForwardedCertificate(&doc, cert)
	return cert, nil
}

// ListActivityCertificates returns activity certificates, optionally scoped
// to one student.
func (svc *Service) ListActivityCertificates(studentID string) []ActivityCertificate {
	doc := svc.store.Read()
	if studentID == "" {
		return doc.ActivityCertificates
	}
	scoped := make([]ActivityCertificate, 0, len(doc.ActivityCertificates))
	for _, a := range doc.ActivityCertificates {
		if a.StudentID == studentID {
			scoped = append(scoped, a)
		}
	}
	return scoped
}

// AddActivityCertificate appends a pending activity certificate with a
// generated id. Points stay zero until a proctor approves the submission.
func (svc *Service) AddActivityCertificate(ac ActivityCertificate) (ActivityCertificate, error) {
	doc := svc.store.Read()
	ac.ID = newID("act")
	ac.Status = ActivityPending
	ac.Points = 0
	ac.RejectReason = ""
	if ac.Date == "" {
		ac.Date = today()
	}
	doc.ActivityCertificates = append(doc.ActivityCertificates, ac)
	if err := svc.write(doc); err != nil {
		return ActivityCertificate{}, err
	}
	return ac, nil
}

// ApproveActivityCertificate awards points for a pending or forwarded
// activity certificate. The certificate status, its points and the student's
// activity total all change in the same document write.
func (svc *Service) ApproveActivityCertificate(id string, points int) (ActivityCertificate, error) {
	if points <= 0 {
		return ActivityCertificate{}, core.NewValidationError(ErrPointsRequired, core.FieldError{Field: "points", Error: ErrPointsRequired.Error()})
	}

	doc := svc.store.Read()
	i, err := findActivityCertificate(&doc, id)
	if err != nil {
		return ActivityCertificate{}, err
	}
	if s := doc.ActivityCertificates[i].Status; s != ActivityPending && s != ActivityForwarded {
		return ActivityCertificate{}, errors.Wrapf(ErrActivityReviewed, "activity certificate %s is %s", id, s)
	}

	doc.ActivityCertificates[i].Status = ActivityApproved
	doc.ActivityCertificates[i].Points = points
	for j := range doc.Students {
		if doc.Students[j].ID == doc.ActivityCertificates[i].StudentID {
			doc.Students[j].ActivityPoints += points
			break
		}
	}

	if err := svc.write(doc); err != nil {
		return ActivityCertificate{}, err
	}
	return doc.ActivityCertificates[i], nil
}

// RejectActivityCertificate rejects a pending or forwarded activity
// certificate. A non-empty reason is mandatory.
func (svc *Service) RejectActivityCertificate(id, reason string) (ActivityCertificate, error) {
	reason = core.CleanString(reason)
	if reason == "" {
		return ActivityCertificate{}, core.NewValidationError(ErrReasonRequired, core.FieldError{Field: "rejectReason", Error: ErrReasonRequired.Error()})
	}

	doc := svc.store.Read()
	i, err := findActivityCertificate(&doc, id)
	if err != nil {
		return ActivityCertificate{}, err
	}
	if s := doc.ActivityCertificates[i].Status; s != ActivityPending && s != ActivityForwarded {
		return ActivityCertificate{}, errors.Wrapf(ErrActivityReviewed, "activity certificate %s is %s", id, s)
	}

	doc.ActivityCertificates[i].Status = ActivityRejected
	doc.ActivityCertificates[i].RejectReason = reason

	if err := svc.write(doc); err != nil {
		return ActivityCertificate{}, err
	}
	return doc.ActivityCertificates[i], nil
}

// ForwardActivityCertificate routes a pending activity certificate to the
// faculty desk. The forwarded state is not terminal; the certificate can
// still be approved or rejected afterwards.
func (svc *Service) ForwardActivityCertificate(id string) (ActivityCertificate, error) {
	doc := svc.store.Read()
	i, err := findActivityCertificate(&doc, id)
	if err != nil {
		return ActivityCertificate{}, err
	}
	if s := doc.ActivityCertificates[i].Status; s != ActivityPending {
		return ActivityCertificate{}, errors.Wrapf(ErrActivityReviewed, "activity certificate %s is %s", id, s)
	}

	doc.ActivityCertificates[i].Status = ActivityForwarded

	if err := svc.write(doc); err != nil {
		return ActivityCertificate{}, err
	}
	return doc.ActivityCertificates[i], nil
}

func findCertificate(doc *Document, id string) (int, error) {
	for i := range doc.Certificates {
		if doc.Certificates[i].ID == id {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrNotFound, "certificate %s", id)
}

func findActivityCertificate(doc *Document, id string) (int, error) {
	for i := range doc.ActivityCertificates {
		if doc.ActivityCertificates[i].ID == id {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrNotFound, "activity certificate %s", id)
}

func (svc *Service) notifyForwardedCertificate(doc *Document, cert Certificate) {
	if svc.mailSvc == nil || cert.FacultyID == "" {
		return
	}
	fac, ok := doc.FindUser(cert.FacultyID)
	if !ok || fac.Email == "" {
		return
	}
	stu, _ := doc.FindStudent(cert.StudentID)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: fac.Name, Address: fac.Email}},
		Subject: fmt.Sprintf("%s certificate forwarded for review", cert.Type),
		BodyStr: fmt.Sprintf("Hi %s,\n\nA %s certificate from %s (%s) was forwarded to you for review.\n", fac.Name, cert.Type, stu.Name, cert.Date),
	})
}
