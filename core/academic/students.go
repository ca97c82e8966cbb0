package academic

import "github.com/pkg/errors"

// StudentDetail is a Student with its related records attached. The nested
// slices are computed at call time and never persisted; they are pure
// response shaping.
type StudentDetail struct {
	Student
	CIEMarks     []CIEMark          `json:"cie_marks"`
	Attendance   []AttendanceRecord `json:"attendance"`
	Leaves       []Leave            `json:"leaves"`
	Certificates []Certificate      `json:"certificates,omitempty"`
}

// ListStudents returns student records scoped by role:
//   - proctor: only students assigned to filterID, each with all their
//     marks, attendance and leaves attached;
//   - faculty: every student, with only the marks belonging to filterID's
//     subjects attached;
//   - anything else: the plain student collection.
func (svc *Service) ListStudents(filterID string, role Role) []StudentDetail {
	doc := svc.store.Read()

	switch role {
	case RoleFaculty:
		subjectIDs := make(map[string]bool)
		for _, sub := range doc.Subjects {
			if sub.FacultyID == filterID {
				subjectIDs[sub.ID] = true
			}
		}
		out := make([]StudentDetail, 0, len(doc.Students))
		for _, stu := range doc.Students {
			detail := svc.attachRecords(&doc, stu)
			scoped := make([]CIEMark, 0, len(detail.CIEMarks))
			for _, m := range detail.CIEMarks {
				if subjectIDs[m.SubjectID] {
					scoped = append(scoped, m)
				}
			}
			detail.CIEMarks = scoped
			out = append(out, detail)
		}
		return out

	case RoleProctor:
		var out []StudentDetail
		for _, stu := range doc.Students {
			if stu.ProctorID == filterID {
				out = append(out, svc.attachRecords(&doc, stu))
			}
		}
		return out

	default:
		out := make([]StudentDetail, 0, len(doc.Students))
		for _, stu := range doc.Students {
			out = append(out, StudentDetail{Student: stu})
		}
		return out
	}
}

// GetStudent returns one student with marks, attendance, leaves and
// certificates attached.
func (svc *Service) GetStudent(id string) (StudentDetail, error) {
	doc := svc.store.Read()
	stu, ok := doc.FindStudent(id)
	if !ok {
		return StudentDetail{}, errors.Wrapf(ErrNotFound, "student %s", id)
	}
	detail := svc.attachRecords(&doc, stu)
	for _, c := range doc.Certificates {
		if c.StudentID == id {
			detail.Certificates = append(detail.Certificates, c)
		}
	}
	return detail, nil
}

// StudentRecords bundles one student's marks, attendance and leaves without
// the student record itself.
type StudentRecords struct {
	CIEMarks   []CIEMark          `json:"cie_marks"`
	Attendance []AttendanceRecord `json:"attendance"`
	Leaves     []Leave            `json:"leaves"`
}

// GetStudentRecords gathers all of a student's log entries.
func (svc *Service) GetStudentRecords(studentID string) StudentRecords {
	doc := svc.store.Read()
	detail := svc.attachRecords(&doc, Student{ID: studentID})
	return StudentRecords{CIEMarks: detail.CIEMarks, Attendance: detail.Attendance, Leaves: detail.Leaves}
}

func (svc *Service) attachRecords(doc *Document, stu Student) StudentDetail {
	detail := StudentDetail{
		Student:    stu,
		CIEMarks:   []CIEMark{},
		Attendance: []AttendanceRecord{},
		Leaves:     []Leave{},
	}
	for _, m := range doc.CIEMarks {
		if m.StudentID == stu.ID {
			detail.CIEMarks = append(detail.CIEMarks, m)
		}
	}
	for _, a := range doc.Attendance {
		if a.StudentID == stu.ID {
			detail.Attendance = append(detail.Attendance, a)
		}
	}
	for _, l := range doc.Leaves {
		if l.StudentID == stu.ID {
			detail.Leaves = append(detail.Leaves, l)
		}
	}
	return detail
}
