package academic

// Seed returns a fresh copy of the fixed document used to initialize the
// store and to recover it after corruption. Callers own the returned value.
func Seed() Document {
	return Document{
		Users: []User{
			{ID: "s1", Role: RoleStudent, Name: "Alice", Email: "alice@example.com", Password: "pass", Roll: "CS101", ProctorID: "p1"},
			{ID: "f1", Role: RoleFaculty, Name: "Prof. Bob", Email: "bob@example.com", Password: "pass"},
			{ID: "p1", Role: RoleProctor, Name: "Proctor John", Email: "proctor@example.com", Password: "pass"},
		},

		Students: []Student{
			{ID: "s1", Role: RoleStudent, Name: "Alice", Roll: "CS101", Email: "alice@example.com", ProctorID: "p1", ActivityPoints: 0},
		},

		Faculty: []Staff{
			{ID: "f1", Name: "Prof. Bob", Email: "bob@example.com"},
		},

		Proctors: []Staff{
			{ID: "p1", Name: "Proctor John", Email: "proctor@example.com"},
		},

		Subjects: []Subject{
			{ID: "sub1", Name: "Mathematics", FacultyID: "f1"},
			{ID: "sub2", Name: "Physics", FacultyID: "f1"},
			{ID: "sub3", Name: "Chemistry", FacultyID: "f1"},
		},

		CIEMarks: []CIEMark{
			{StudentID: "s1", SubjectID: "sub1", CIENo: 1, Expected: 50, Obtained: 28, Total: 50, Date: "2025-08-01"},
			{StudentID: "s1", SubjectID: "sub1", CIENo: 2, Expected: 50, Obtained: 32, Total: 50, Date: "2025-09-15"},
			{StudentID: "s1", SubjectID: "sub2", CIENo: 1, Expected: 50, Obtained: 25, Total: 50, Date: "2025-08-01"},
			{StudentID: "s1", SubjectID: "sub2", CIENo: 2, Expected: 50, Obtained: 22, Total: 50, Date: "2025-10-10"},
			{StudentID: "s1", SubjectID: "sub3", CIENo: 1, Expected: 50, Obtained: 38, Total: 50, Date: "2025-09-01"},
		},

		// deterministic sample data, ~50-60% attendance
		Attendance: []AttendanceRecord{
			{StudentID: "s1", SubjectID: "sub1", Date: "2024-08-01", Status: AttendancePresent},
			{StudentID: "s1", SubjectID: "sub1", Date: "2024-08-03", Status: AttendanceAbsent, Reason: "Sick"},
			{StudentID: "s1", SubjectID: "sub1", Date: "2024-08-06", Status: AttendancePresent},
			{StudentID: "s1", SubjectID: "sub1", Date: "2024-08-09", Status: AttendanceAbsent},
			{StudentID: "s1", SubjectID: "sub1", Date: "2024-08-12", Status: AttendancePresent},
			{StudentID: "s1", SubjectID: "sub1", Date: "2024-08-15", Status: AttendancePresent},
			{StudentID: "s1", SubjectID: "sub1", Date: "2024-08-18", Status: AttendanceAbsent},
			{StudentID: "s1", SubjectID: "sub1", Date: "2024-08-21", Status: AttendancePresent},

			{StudentID: "s1", SubjectID: "sub2", Date: "2024-08-01", Status: AttendancePresent},
			{StudentID: "s1", SubjectID: "sub2", Date: "2024-08-03", Status: AttendancePresent},
			{StudentID: "s1", SubjectID: "sub2", Date: "2024-08-06", Status: AttendancePresent},
			{StudentID: "s1", SubjectID: "sub2", Date: "2024-08-09", Status: AttendanceAbsent},
			{StudentID: "s1", SubjectID: "sub2", Date: "2024-08-12", Status: AttendancePresent},

			{StudentID: "s1", SubjectID: "sub3", Date: "2024-08-01", Status: AttendanceAbsent},
			{StudentID: "s1", SubjectID: "sub3", Date: "2024-08-03", Status: AttendancePresent},
			{StudentID: "s1", SubjectID: "sub3", Date: "2024-08-06", Status: AttendanceAbsent},
			{StudentID: "s1", SubjectID: "sub3", Date: "2024-08-09", Status: AttendanceAbsent},
			{StudentID: "s1", SubjectID: "sub3", Date: "2024-08-12", Status: AttendancePresent},
		},

		Leaves:   []Leave{},
		Reasons:  []Reason{},
		Messages: []Message{},

		Certificates: []Certificate{
			{ID: "c1", StudentID: "s1", FacultyID: "f1", Type: "Medical", Date: "2025-12-12", Reason: "Sick leave", File: "/uploads/cert1.pdf", Forwarded: false},
		},

		ActivityCertificates: []ActivityCertificate{
			{ID: "a1", StudentID: "s1", Type: "Coding Contest", Date: "2025-12-15", Points: 10, File: "/uploads/activity1.pdf", Status: ActivityPending, RejectReason: ""},
		},

		Dashboard: emptyDashboard(),

		UpcomingClasses: []UpcomingClass{
			{ID: "cls1", Title: "Calculus Lecture", Subject: "Mathematics", Teacher: "Prof. Bob", Date: "2025-02-10", Time: "10:00 AM", TimeLeft: "2h"},
			{ID: "cls2", Title: "Physics Lab", Subject: "Physics", Teacher: "Prof. Bob", Date: "2025-02-11", Time: "2:00 PM", TimeLeft: "5h"},
		},

		Assignment: &Assignment{Title: "Homework 1", Subject: "Mathematics", Deadline: "2025-02-15"},

		PendingQuizzes: []PendingQuiz{
			{ID: "q1", Title: "Quiz 1", Questions: 10, Duration: 15},
			{ID: "q2", Title: "Quiz 2", Questions: 5, Duration: 10},
		},
	}
}

// subjectsBySemester is the registration-time catalog; it is not persisted
// per student beyond the subjects snapshot taken at registration.
var subjectsBySemester = map[int][]SubjectRef{
	1: {
		{Code: "MAT101", Name: "Engineering Mathematics I", Credits: 4},
		{Code: "PHY101", Name: "Engineering Physics", Credits: 3},
		{Code: "CSE101", Name: "Programming Fundamentals", Credits: 4},
		{Code: "EEE101", Name: "Basic Electrical Engineering", Credits: 3},
		{Code: "ENG101", Name: "Technical Communication", Credits: 2},
	},
	2: {
		{Code: "MAT102", Name: "Engineering Mathematics II", Credits: 4},
		{Code: "CHE101", Name: "Engineering Chemistry", Credits: 3},
		{Code: "CSE102", Name: "Data Structures", Credits: 4},
		{Code: "MEC101", Name: "Engineering Mechanics", Credits: 3},
		{Code: "EEE102", Name: "Digital Electronics", Credits: 3},
	},
	3: {
		{Code: "CSE201", Name: "Object Oriented Programming", Credits: 4},
		{Code: "CSE202", Name: "Discrete Mathematics", Credits: 3},
		{Code: "CSE203", Name: "Computer Organization", Credits: 3},
		{Code: "MAT201", Name: "Probability & Statistics", Credits: 3},
		{Code: "HUM201", Name: "Environmental Studies", Credits: 2},
	},
	4: {
		{Code: "CSE204", Name: "Database Management Systems", Credits: 4},
		{Code: "CSE205", Name: "Operating Systems", Credits: 4},
		{Code: "CSE206", Name: "Theory of Computation", Credits: 3},
		{Code: "CSE207", Name: "Software Engineering", Credits: 3},
		{Code: "ECE201", Name: "Microprocessors", Credits: 3},
	},
	5: {
		{Code: "CSE301", Name: "Computer Networks", Credits: 4},
		{Code: "CSE302", Name: "Design & Analysis of Algorithms", Credits: 4},
		{Code: "CSE303", Name: "Web Technologies", Credits: 3},
		{Code: "CSE304", Name: "Artificial Intelligence", Credits: 4},
		{Code: "CSE305", Name: "Computer Graphics", Credits: 3},
	},
	6: {
		{Code: "CSE306", Name: "Compiler Design", Credits: 4},
		{Code: "CSE307", Name: "Machine Learning", Credits: 4},
		{Code: "CSE308", Name: "Mobile Application Development", Credits: 3},
		{Code: "CSE309", Name: "Cloud Computing", Credits: 3},
		{Code: "CSE310", Name: "Information Security", Credits: 3},
	},
	7: {
		{Code: "CSE401", Name: "Data Science", Credits: 4},
		{Code: "CSE402", Name: "Internet of Things", Credits: 3},
		{Code: "CSE403", Name: "Big Data Analytics", Credits: 4},
		{Code: "CSE404", Name: "Blockchain Technology", Credits: 3},
		{Code: "CSE405", Name: "Cyber Security", Credits: 4},
	},
	8: {
		{Code: "CSE406", Name: "Natural Language Processing", Credits: 4},
		{Code: "CSE407", Name: "Computer Vision", Credits: 4},
		{Code: "CSE408", Name: "Robotics", Credits: 3},
		{Code: "CSE409", Name: "Quantum Computing", Credits: 3},
		{Code: "CSE410", Name: "Project Management", Credits: 2},
	},
}

// SubjectsForSemester returns the enrollment catalog for semesters 1-8.
// Callers own the returned slice.
func SubjectsForSemester(semester int) []SubjectRef {
	subjects, ok := subjectsBySemester[semester]
	if !ok {
		return nil
	}
	out := make([]SubjectRef, len(subjects))
	copy(out, subjects)
	return out
}
