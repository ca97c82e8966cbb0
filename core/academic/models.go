package academic

import "encoding/json"

// Role of a login identity.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleProctor Role = "proctor"
)

// User is one login identity. Passwords are stored as-is: this is a
// demo-grade credential store, not a production one.
type User struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Roll      string `json:"roll,omitempty"`
	ProctorID string `json:"proctorId,omitempty"`
}

func (u User) IsStudent() bool { return u.Role == RoleStudent }
func (u User) IsFaculty() bool { return u.Role == RoleFaculty }
func (u User) IsProctor() bool { return u.Role == RoleProctor }

// Sanitized returns a copy safe to hand to callers (no password).
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// SubjectRef is one enrolled subject in a student's per-semester snapshot.
type SubjectRef struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}

// Student holds the academic record matching a student-role User (same id).
type Student struct {
	ID               string       `json:"id"`
	Role             Role         `json:"role,omitempty"`
	Name             string       `json:"name"`
	Roll             string       `json:"roll"`
	Email            string       `json:"email"`
	ProctorID        string       `json:"proctorId,omitempty"`
	ActivityPoints   int          `json:"activityPoints"`
	Department       string       `json:"department,omitempty"`
	StudyYear        string       `json:"studyYear,omitempty"`
	Semester         string       `json:"semester,omitempty"`
	Subjects         []SubjectRef `json:"subjects,omitempty"`
	TotalCredits     int          `json:"totalCredits,omitempty"`
	Status           string       `json:"status,omitempty"`
	RegistrationDate string       `json:"registrationDate,omitempty"`
}

// Staff is a faculty member or proctor, as referenced by Subject.FacultyID
// and Student.ProctorID.
type Staff struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Subject is one entry of the static catalog.
type Subject struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FacultyID string `json:"facultyId"`
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// CIEMark is one Continuous Internal Evaluation entry. The
// (studentId, subjectId, cieNo) triple is not unique-enforced; the log is
// append-only.
type CIEMark struct {
	ID        string `json:"id,omitempty"`
	StudentID string `json:"studentId"`
	SubjectID string `json:"subjectId"`
	CIENo     int    `json:"cieNo"`
	Expected  int    `json:"expected"`
	Obtained  int    `json:"obtained"`
	Total     int    `json:"total"`
	Date      string `json:"date"`
}

// AttendanceRecord is one append-only attendance log entry; percentages are
// always derived, never stored.
type AttendanceRecord struct {
	ID        string           `json:"id,omitempty"`
	StudentID string           `json:"studentId"`
	SubjectID string           `json:"subjectId"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Reason    string           `json:"reason,omitempty"`
}

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Leave is a student leave request; Status is the authoritative state field.
type Leave struct {
	ID         string      `json:"id"`
	StudentID  string      `json:"studentId"`
	From       string      `json:"from"`
	To         string      `json:"to"`
	Reason     string      `json:"reason"`
	Status     LeaveStatus `json:"status"`
	Remarks    string      `json:"remarks,omitempty"`
	DocLink    string      `json:"docLink,omitempty"`
	ReviewedAt string      `json:"reviewedAt,omitempty"`
}

// Reason is a student-submitted absence explanation awaiting a faculty reply.
type Reason struct {
	ID           string `json:"id"`
	StudentID    string `json:"studentId"`
	SubjectID    string `json:"subjectId"`
	Date         string `json:"date,omitempty"`
	Text         string `json:"text,omitempty"`
	FacultyReply string `json:"facultyReply,omitempty"`
	RepliedAt    string `json:"repliedAt,omitempty"`
}

// Certificate is a medical/event/leave-approval certificate. Forwarded flips
// false->true exactly once, when a proctor routes it to a faculty member.
type Certificate struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	FacultyID string `json:"facultyId"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Reason    string `json:"reason,omitempty"`
	File      string `json:"file"`
	Forwarded bool   `json:"forwarded"`
}

type ActivityStatus string

const (
	ActivityPending   ActivityStatus = "pending"
	ActivityApproved  ActivityStatus = "approved"
	ActivityRejected  ActivityStatus = "rejected"
	ActivityForwarded ActivityStatus = "forwarded"
)

// ActivityCertificate is a student activity claim reviewed by the proctor.
type ActivityCertificate struct {
	ID           string         `json:"id"`
	StudentID    string         `json:"studentId"`
	Type         string         `json:"type"`
	Date         string         `json:"date"`
	Points       int            `json:"points"`
	File         string         `json:"file"`
	Notes        string         `json:"notes,omitempty"`
	Status       ActivityStatus `json:"status"`
	RejectReason string         `json:"rejectReason"`
}

// Message is one entry of the in-app message log.
type Message struct {
	ID           string `json:"id"`
	SenderID     string `json:"senderId"`
	ReceiverID   string `json:"receiverId,omitempty"`
	ReceiverRole Role   `json:"receiverRole,omitempty"`
	Body         string `json:"body,omitempty"`
	Timestamp    string `json:"timestamp"`
	Read         bool   `json:"read"`
}

// Static fixtures feeding the student dashboard.

type UpcomingClass struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	Teacher  string `json:"teacher"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	TimeLeft string `json:"timeLeft"`
}

type Assignment struct {
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	Deadline string `json:"deadline"`
}

type PendingQuiz struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Questions int    `json:"questions"`
	Duration  int    `json:"duration"`
}

// Document is the single root object holding all collections and singletons.
// It is read and written whole; there is no partial update.
type Document struct {
	Users                []User                `json:"users"`
	Students             []Student             `json:"students"`
	Faculty              []Staff               `json:"faculty"`
	Proctors             []Staff               `json:"proctors"`
	Subjects             []Subject             `json:"subjects"`
	CIEMarks             []CIEMark             `json:"cie_marks"`
	Attendance           []AttendanceRecord    `json:"attendance"`
	Leaves               []Leave               `json:"leaves"`
	Reasons              []Reason              `json:"reasons"`
	Messages             []Message             `json:"messages"`
	Certificates         []Certificate         `json:"certificates"`
	ActivityCertificates []ActivityCertificate `json:"activityCertificates"`
	Dashboard            json.RawMessage       `json:"dashboard"`
	UpcomingClasses      []UpcomingClass       `json:"upcomingClasses"`
	Assignment           *Assignment           `json:"assignment"`
	PendingQuizzes       []PendingQuiz         `json:"pendingQuizzes"`
}

// FindUserByEmail returns the user with the given email, if any.
func (d *Document) FindUserByEmail(email string) (User, bool) {
	for _, u := range d.Users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// FindUser returns the user with the given id, if any.
func (d *Document) FindUser(id string) (User, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// FindStudent returns the student record with the given id, if any.
func (d *Document) FindStudent(id string) (Student, bool) {
	for _, s := range d.Students {
		if s.ID == id {
			return s, true
		}
	}
	return Student{}, false
}
