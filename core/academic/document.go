package academic

import (
	"bytes"
	"encoding/json"

	"github.com/acadly/spams/core"
	"github.com/acadly/spams/storage/kv"
)

func emptyDashboard() json.RawMessage { return json.RawMessage(`{}`) }

// EnsureShape repairs a decoded document into a structurally valid one:
// every missing collection is replaced with the seed's version (empty but
// non-nil where the seed has none) and the singletons get their defaults.
// Idempotent: EnsureShape(EnsureShape(d)) == EnsureShape(d).
//
// Wrong-typed fields never reach this function; they fail the document
// decode and the store falls back to the seed (fail closed).
func EnsureShape(doc Document) Document {
	seed := Seed()

	if doc.Users == nil {
		doc.Users = seed.Users
	}
	if doc.Students == nil {
		doc.Students = seed.Students
	}
	if doc.Faculty == nil {
		doc.Faculty = seed.Faculty
	}
	if doc.Proctors == nil {
		doc.Proctors = seed.Proctors
	}
	if doc.Subjects == nil {
		doc.Subjects = seed.Subjects
	}
	if doc.CIEMarks == nil {
		doc.CIEMarks = seed.CIEMarks
	}
	if doc.Attendance == nil {
		doc.Attendance = seed.Attendance
	}
	if doc.Leaves == nil {
		doc.Leaves = seed.Leaves
	}
	if doc.Reasons == nil {
		doc.Reasons = seed.Reasons
	}
	if doc.Messages == nil {
		doc.Messages = seed.Messages
	}
	if doc.Certificates == nil {
		doc.Certificates = seed.Certificates
	}
	if doc.ActivityCertificates == nil {
		doc.ActivityCertificates = seed.ActivityCertificates
	}
	if doc.UpcomingClasses == nil {
		doc.UpcomingClasses = seed.UpcomingClasses
	}
	if doc.PendingQuizzes == nil {
		doc.PendingQuizzes = seed.PendingQuizzes
	}
	if !isJSONObject(doc.Dashboard) {
		doc.Dashboard = emptyDashboard()
	}
	if doc.Assignment == nil {
		doc.Assignment = seed.Assignment
	}
	return doc
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}

// Store gives whole-document access to the persisted state. Every operation
// is synchronous; there is no partial read or write.
type Store interface {
	// Read loads the document, seeding the slot when it is absent or
	// unreadable. It never fails.
	Read() Document
	// Write repairs, serializes and persists the document, replacing the
	// previous value whole. Returns false instead of failing so callers can
	// surface an error without crashing.
	Write(doc Document) bool
	// ResetToSeed overwrites the slot with a fresh copy of the seed.
	ResetToSeed() bool
	// Clear deletes the slot and returns a fresh seed copy.
	Clear() Document
}

type documentStore struct {
	kv  kv.Store
	key string
	log core.Logger
}

var _ Store = (*documentStore)(nil)

// NewStore returns a Store persisting the document under conf.StorageKey.
func NewStore(kvs kv.Store, conf *core.Config, log core.Logger) Store {
	return &documentStore{kv: kvs, key: conf.StorageKey, log: log}
}

func (s *documentStore) Read() Document {
	raw, err := s.kv.Get(s.key)
	if err != nil {
		if err != kv.ErrKeyNotFound {
			s.log.Warn("reading document, falling back to seed", err)
		}
		return s.reseed()
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("unreadable document, resetting to seed", err)
		return s.reseed()
	}
	doc = EnsureShape(doc)

	// An empty subject catalog is always treated as corruption: a freshly
	// initialized slot carries the seeded catalog, so "legitimately empty"
	// is not a state this store can get into on its own.
	if len(doc.Subjects) == 0 {
		s.log.Warn("empty subject catalog, resetting to seed")
		return s.reseed()
	}
	return doc
}

func (s *documentStore) Write(doc Document) bool {
	doc = EnsureShape(doc)
	raw, err := json.Marshal(doc)
	if err != nil {
		s.log.Error("serializing document", err)
		return false
	}
	if err := s.kv.Set(s.key, raw); err != nil {
		s.log.Error("persisting document", err)
		return false
	}
	return true
}

func (s *documentStore) ResetToSeed() bool {
	raw, err := json.Marshal(Seed())
	if err != nil {
		s.log.Error("serializing seed", err)
		return false
	}
	if err := s.kv.Set(s.key, raw); err != nil {
		s.log.Error("persisting seed", err)
		return false
	}
	return true
}

func (s *documentStore) Clear() Document {
	if err := s.kv.Delete(s.key); err != nil {
		s.log.Error("clearing document", err)
	}
	return Seed()
}

// reseed persists a fresh seed and returns it. Reads never fail: even when
// persisting the seed errors out, the caller still gets a usable document.
func (s *documentStore) reseed() Document {
	seed := Seed()
	if raw, err := json.Marshal(seed); err == nil {
		if err := s.kv.Set(s.key, raw); err != nil {
			s.log.Error("persisting seed", err)
		}
	}
	return seed
}
