package academic

// ListAttendance returns the attendance log, optionally scoped to one
// student. Percentages are always derived from this log, never stored.
func (svc *Service) ListAttendance(studentID string) []AttendanceRecord {
	doc := svc.store.Read()
	if studentID == "" {
		return doc.Attendance
	}
	var records []AttendanceRecord
	for _, a := range doc.Attendance {
		if a.StudentID == studentID {
			records = append(records, a)
		}
	}
	return records
}

// AddAttendance appends an attendance entry with a generated id.
func (svc *Service) AddAttendance(entry AttendanceRecord) (AttendanceRecord, error) {
	doc := svc.store.Read()
	entry.ID = newID("att")
	doc.Attendance = append(doc.Attendance, entry)
	if err := svc.write(doc); err != nil {
		return AttendanceRecord{}, err
	}
	return entry, nil
}
