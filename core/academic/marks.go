package academic

import "github.com/pkg/errors"

// ListCIEMarks returns the mark log, optionally scoped to one student.
func (svc *Service) ListCIEMarks(studentID string) []CIEMark {
	doc := svc.store.Read()
	if studentID == "" {
		return doc.CIEMarks
	}
	var marks []CIEMark
	for _, m := range doc.CIEMarks {
		if m.StudentID == studentID {
			marks = append(marks, m)
		}
	}
	return marks
}

// AddCIEMark appends a mark entry with a generated id. The
// (studentId, subjectId, cieNo) triple is deliberately not unique-enforced.
func (svc *Service) AddCIEMark(entry CIEMark) (CIEMark, error) {
	doc := svc.store.Read()
	entry.ID = newID("cie")
	doc.CIEMarks = append(doc.CIEMarks, entry)
	if err := svc.write(doc); err != nil {
		return CIEMark{}, err
	}
	return entry, nil
}

// UpdateCIEMark describes a partial mark update; nil fields are left as-is.
type UpdateCIEMark struct {
	CIENo    *int    `json:"cieNo"`
	Expected *int    `json:"expected"`
	Obtained *int    `json:"obtained"`
	Total    *int    `json:"total"`
	Date     *string `json:"date"`
}

// UpdateCIEMarkByID shallow-merges the patch over the stored mark.
func (svc *Service) UpdateCIEMarkByID(id string, patch UpdateCIEMark) (CIEMark, error) {
	doc := svc.store.Read()
	for i := range doc.CIEMarks {
		if doc.CIEMarks[i].ID != id {
			continue
		}
		m := &doc.CIEMarks[i]
		if patch.CIENo != nil {
			m.CIENo = *patch.CIENo
		}
		if patch.Expected != nil {
			m.Expected = *patch.Expected
		}
		if patch.Obtained != nil {
			m.Obtained = *patch.Obtained
		}
		if patch.Total != nil {
			m.Total = *patch.Total
		}
		if patch.Date != nil {
			m.Date = *patch.Date
		}
		if err := svc.write(doc); err != nil {
			return CIEMark{}, err
		}
		return *m, nil
	}
	return CIEMark{}, errors.Wrapf(ErrNotFound, "mark %s", id)
}
