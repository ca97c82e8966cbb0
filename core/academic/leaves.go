package academic

import (
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/acadly/spams/core"
)

var (
	ErrRemarkRequired = errors.New("a remark is required to reject a leave")
	ErrLeaveReviewed  = errors.New("leave has already been reviewed")
)

// ListLeaves returns leave requests, optionally scoped to one student or to
// a proctor's cohort.
func (svc *Service) ListLeaves(studentID, proctorID string) []Leave {
	doc := svc.store.Read()

	leaves := doc.Leaves
	if studentID != "" {
		scoped := make([]Leave, 0, len(leaves))
		for _, l := range leaves {
			if l.StudentID == studentID {
				scoped = append(scoped, l)
			}
		}
		leaves = scoped
	}
	if proctorID != "" {
		cohort := make(map[string]bool)
		for _, s := range doc.Students {
			if s.ProctorID == proctorID {
				cohort[s.ID] = true
			}
		}
		scoped := make([]Leave, 0, len(leaves))
		for _, l := range leaves {
			if cohort[l.StudentID] {
				scoped = append(scoped, l)
			}
		}
		leaves = scoped
	}
	return leaves
}

// AddLeave appends a pending leave request with a generated id.
func (svc *Service) AddLeave(nl NewLeave) (Leave, error) {
	if err := nl.Validate(); err != nil {
		return Leave{}, err
	}

	doc := svc.store.Read()
	leave := Leave{
		ID:        newID("leave"),
		StudentID: nl.StudentID,
		From:      nl.From,
		To:        nl.To,
		Reason:    nl.Reason,
		Status:    LeavePending,
		DocLink:   nl.DocLink,
	}
	doc.Leaves = append(doc.Leaves, leave)
	if err := svc.write(doc); err != nil {
		return Leave{}, err
	}
	return leave, nil
}

// ApproveLeave transitions a pending leave to approved (the remark is
// optional) and derives a "Leave Approval" certificate for the student.
// Both changes land in the same document write.
func (svc *Service) ApproveLeave(id, remark string) (Leave, error) {
	doc := svc.store.Read()
	i, err := findLeave(&doc, id)
	if err != nil {
		return Leave{}, err
	}
	if doc.Leaves[i].Status != LeavePending {
		return Leave{}, errors.Wrapf(ErrLeaveReviewed, "leave %s is %s", id, doc.Leaves[i].Status)
	}

	doc.Leaves[i].Status = LeaveApproved
	doc.Leaves[i].Remarks = remark
	doc.Leaves[i].ReviewedAt = nowISO()

	doc.Certificates = append(doc.Certificates, Certificate{
		ID:        newID("cert"),
		StudentID: doc.Leaves[i].StudentID,
		Type:      "Leave Approval",
		Date:      today(),
		Reason:    doc.Leaves[i].Reason,
		File:      doc.Leaves[i].DocLink,
		Forwarded: false,
	})

	if err := svc.write(doc); err != nil {
		return Leave{}, err
	}

	leave := doc.Leaves[i]
	svc.notifyLeaveDecision(&doc, leave)
	return leave, nil
}

// RejectLeave transitions a pending leave to rejected. A non-empty remark is
// mandatory; a whitespace-only remark leaves the request pending.
func (svc *Service) RejectLeave(id, remark string) (Leave, error) {
	remark = core.CleanString(remark)
	if remark == "" {
		return Leave{}, core.NewValidationError(ErrRemarkRequired, core.FieldError{Field: "remarks", Error: ErrRemarkRequired.Error()})
	}

	doc := svc.store.Read()
	i, err := findLeave(&doc, id)
	if err != nil {
		return Leave{}, err
	}
	if doc.Leaves[i].Status != LeavePending {
		return Leave{}, errors.Wrapf(ErrLeaveReviewed, "leave %s is %s", id, doc.Leaves[i].Status)
	}

	doc.Leaves[i].Status = LeaveRejected
	doc.Leaves[i].Remarks = remark
	doc.Leaves[i].ReviewedAt = nowISO()

	if err := svc.write(doc); err != nil {
		return Leave{}, err
	}

	leave := doc.Leaves[i]
	svc.notifyLeaveDecision(&doc, leave)
	return leave, nil
}

func findLeave(doc *Document, id string) (int, error) {
	for i := range doc.Leaves {
		if doc.Leaves[i].ID == id {
			return i, nil
		}
	}
	return 0, errors.Wrapf(ErrNotFound, "leave %s", id)
}

func (svc *Service) notifyLeaveDecision(doc *Document, leave Leave) {
	if svc.mailSvc == nil {
		return
	}
	stu, ok := doc.FindStudent(leave.StudentID)
	if !ok || stu.Email == "" {
		return
	}
	body := fmt.Sprintf("Hi %s,\n\nYour leave request (%s to %s) was %s.", stu.Name, leave.From, leave.To, leave.Status)
	if leave.Remarks != "" {
		body += "\nRemarks: " + leave.Remarks
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: stu.Name, Address: stu.Email}},
		Subject: fmt.Sprintf("Leave request %s", leave.Status),
		BodyStr: body + "\n",
	})
}
