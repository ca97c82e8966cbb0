package testutil

import (
	"testing"
	"time"

	"github.com/acadly/spams/core"
	"github.com/acadly/spams/core/academic"
	emailsvc "github.com/acadly/spams/services/email"
	"github.com/acadly/spams/storage/kv"
)

// Logger discards everything except Fatal, which fails the test.
type Logger struct {
	T *testing.T
}

var _ core.Logger = (*Logger)(nil)

func (l Logger) Enable(bool)                        {}
func (l Logger) Debug(string, ...interface{})       {}
func (l Logger) Info(string, ...interface{})        {}
func (l Logger) Warn(string, ...interface{})        {}
func (l Logger) Error(string, ...interface{})       {}
func (l Logger) Fatal(msg string, _ ...interface{}) { l.T.Fatal(msg) }

func NewTestConfig() *core.Config {
	return &core.Config{
		TestMode:           true,
		Env:                "TEST",
		AppName:            "SPAMS",
		SecretKey:          []byte("t3st-s3cret"),
		StorageKey:         "spams_v5_store",
		JWTExpirationDelta: time.Hour,
		DefaultFromName:    "SPAMS",
		DefaultFromAddr:    "noreply@test.local",
		FrontendBaseURL:    "http://localhost:3000",
	}
}

// NewTestStore returns a document store over a fresh in-memory key-value
// store; the first Read seeds it.
func NewTestStore(t *testing.T) academic.Store {
	t.Helper()
	conf := NewTestConfig()
	return academic.NewStore(kv.OpenInmemStore(), conf, Logger{T: t})
}

// NewTestService wires a Service over an in-memory store and a synchronous
// console email mock.
func NewTestService(t *testing.T) *academic.Service {
	t.Helper()
	conf := NewTestConfig()
	store := academic.NewStore(kv.OpenInmemStore(), conf, Logger{T: t})
	return academic.NewService(store, emailsvc.NewConsoleServiceMock(conf), Logger{T: t}, conf)
}

// CreateStudent registers a student through the service, failing the test on
// any validation or write error.
func CreateStudent(t *testing.T, svc *academic.Service, name, email string, semester int, proctorID string) academic.Student {
	t.Helper()
	stu, err := svc.RegisterStudent(academic.NewStudent{
		Name:            name,
		Email:           email,
		Password:        "pass",
		PasswordConfirm: "pass",
		Roll:            "TST" + name,
		Department:      "CSE",
		StudyYear:       "2",
		Semester:        semester,
		ProctorID:       proctorID,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return stu
}

// CreateLeave files a pending leave for the student.
func CreateLeave(t *testing.T, svc *academic.Service, studentID, reason string) academic.Leave {
	t.Helper()
	leave, err := svc.AddLeave(academic.NewLeave{
		StudentID: studentID,
		From:      "2026-02-01",
		To:        "2026-02-03",
		Reason:    reason,
	})
	if err != nil {
		t.Fatalf("CreateLeave() failed: %v", err)
	}
	return leave
}
