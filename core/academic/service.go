package academic

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/acadly/spams/core"
)

var (
	// errors
	ErrNotFound     = errors.New("record not found")
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("a user with this email already exists")
	ErrWriteFailed  = errors.New("persisting document failed")
)

// Service is the domain API facade: CRUD-style operations over every
// collection, all routed through the document Store. List operations never
// mutate; add/update operations follow the whole-document
// read-modify-write pattern, so with two concurrent writers the last write
// wins (single-writer assumption, documented in the design notes).
type Service struct {
	store   Store
	mailSvc core.EmailService
	log     core.Logger
	conf    *core.Config
}

func NewService(store Store, mailSvc core.EmailService, log core.Logger, conf *core.Config) *Service {
	return &Service{store: store, mailSvc: mailSvc, log: log, conf: conf}
}

// ResetToSeed discards all data and restores the fixed seed document.
func (svc *Service) ResetToSeed() bool {
	return svc.store.ResetToSeed()
}

// Clear removes the persisted document entirely and returns a fresh seed.
func (svc *Service) Clear() Document {
	return svc.store.Clear()
}

// newID returns a collision-resistant record id. The prefix keeps ids
// human-greppable; the UUID removes the collision risk of the legacy
// timestamp+random scheme.
func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}

func (svc *Service) write(doc Document) error {
	if !svc.store.Write(doc) {
		return ErrWriteFailed
	}
	return nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
