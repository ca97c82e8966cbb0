package academic

import "github.com/pkg/errors"

// ListReasons returns absence explanations, optionally scoped to the
// subjects taught by one faculty member.
func (svc *Service) ListReasons(facultyID string) []Reason {
	doc := svc.store.Read()
	if facultyID == "" {
		return doc.Reasons
	}

	subjectIDs := make(map[string]bool)
	for _, sub := range doc.Subjects {
		if sub.FacultyID == facultyID {
			subjectIDs[sub.ID] = true
		}
	}
	var reasons []Reason
	for _, r := range doc.Reasons {
		if subjectIDs[r.SubjectID] {
			reasons = append(reasons, r)
		}
	}
	return reasons
}

// AddReason appends an absence explanation with a generated id.
func (svc *Service) AddReason(entry Reason) (Reason, error) {
	doc := svc.store.Read()
	entry.ID = newID("reason")
	doc.Reasons = append(doc.Reasons, entry)
	if err := svc.write(doc); err != nil {
		return Reason{}, err
	}
	return entry, nil
}

// UpdateReasonFeedback records the faculty reply on an absence explanation.
func (svc *Service) UpdateReasonFeedback(id, facultyReply string) (Reason, error) {
	doc := svc.store.Read()
	for i := range doc.Reasons {
		if doc.Reasons[i].ID != id {
			continue
		}
		doc.Reasons[i].FacultyReply = facultyReply
		doc.Reasons[i].RepliedAt = nowISO()
		if err := svc.write(doc); err != nil {
			return Reason{}, err
		}
		return doc.Reasons[i], nil
	}
	return Reason{}, errors.Wrapf(ErrNotFound, "reason %s", id)
}
