package academic

import "github.com/pkg/errors"

// ListSubjects returns the subject catalog, optionally scoped to one
// faculty member.
func (svc *Service) ListSubjects(facultyID string) []Subject {
	doc := svc.store.Read()
	if facultyID == "" {
		return doc.Subjects
	}
	var subjects []Subject
	for _, sub := range doc.Subjects {
		if sub.FacultyID == facultyID {
			subjects = append(subjects, sub)
		}
	}
	return subjects
}

// GetSubject returns the catalog entry with the given id.
func (svc *Service) GetSubject(id string) (Subject, error) {
	doc := svc.store.Read()
	for _, sub := range doc.Subjects {
		if sub.ID == id {
			return sub, nil
		}
	}
	return Subject{}, errors.Wrapf(ErrNotFound, "subject %s", id)
}
