package academic

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/acadly/spams/core"
	"github.com/acadly/spams/storage/kv"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func testConf() *core.Config {
	return &core.Config{
		TestMode:   true,
		Env:        "TEST",
		AppName:    "SPAMS",
		SecretKey:  []byte("t3st-s3cret"),
		StorageKey: "spams_v5_store",
	}
}

func newTestStore() (Store, kv.Store) {
	kvs := kv.OpenInmemStore()
	return NewStore(kvs, testConf(), nopLogger{}), kvs
}

func TestEnsureShape(t *testing.T) {
	seed := Seed()

	t.Run("fills missing collections from seed", func(t *testing.T) {
		got := EnsureShape(Document{})
		if !reflect.DeepEqual(got.Users, seed.Users) {
			t.Errorf("Users = %+v, want seed users", got.Users)
		}
		if !reflect.DeepEqual(got.Subjects, seed.Subjects) {
			t.Errorf("Subjects = %+v, want seed subjects", got.Subjects)
		}
		if got.Leaves == nil || len(got.Leaves) != 0 {
			t.Errorf("Leaves = %+v, want empty non-nil", got.Leaves)
		}
		if !isJSONObject(got.Dashboard) {
			t.Errorf("Dashboard = %s, want JSON object", got.Dashboard)
		}
		if got.Assignment == nil {
			t.Error("Assignment = nil, want seed assignment")
		}
	})

	t.Run("leaves present collections alone", func(t *testing.T) {
		doc := Document{Users: []User{{ID: "u1"}}, Subjects: []Subject{}}
		got := EnsureShape(doc)
		if len(got.Users) != 1 || got.Users[0].ID != "u1" {
			t.Errorf("Users = %+v, want the original single user", got.Users)
		}
		// empty is not missing
		if len(got.Subjects) != 0 {
			t.Errorf("Subjects = %+v, want kept empty", got.Subjects)
		}
	})

	t.Run("replaces a non-object dashboard", func(t *testing.T) {
		doc := Document{Dashboard: json.RawMessage(`"nope"`)}
		got := EnsureShape(doc)
		if string(got.Dashboard) != `{}` {
			t.Errorf("Dashboard = %s, want {}", got.Dashboard)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := EnsureShape(Document{Users: []User{{ID: "u1"}}})
		twice := EnsureShape(once)
		if !reflect.DeepEqual(once, twice) {
			t.Error("EnsureShape(EnsureShape(d)) != EnsureShape(d)")
		}
	})
}

func TestDocumentStore_Read(t *testing.T) {
	t.Run("seeds an empty slot", func(t *testing.T) {
		store, kvs := newTestStore()
		doc := store.Read()
		if !reflect.DeepEqual(doc, Seed()) {
			t.Error("Read() on empty slot != Seed()")
		}
		// the seed must have been persisted too
		if _, err := kvs.Get("spams_v5_store"); err != nil {
			t.Errorf("seed not persisted: %v", err)
		}
	})

	t.Run("seeds on unparsable payload", func(t *testing.T) {
		store, kvs := newTestStore()
		if err := kvs.Set("spams_v5_store", []byte("{garbage")); err != nil {
			t.Fatal(err)
		}
		if doc := store.Read(); !reflect.DeepEqual(doc, Seed()) {
			t.Error("Read() on garbage != Seed()")
		}
	})

	t.Run("seeds on wrong-typed field", func(t *testing.T) {
		store, kvs := newTestStore()
		if err := kvs.Set("spams_v5_store", []byte(`{"users":"not-a-list"}`)); err != nil {
			t.Fatal(err)
		}
		if doc := store.Read(); !reflect.DeepEqual(doc, Seed()) {
			t.Error("Read() on wrong-typed document != Seed()")
		}
	})

	t.Run("resets an empty subject catalog", func(t *testing.T) {
		store, _ := newTestStore()
		doc := store.Read()
		doc.Subjects = []Subject{}
		if !store.Write(doc) {
			t.Fatal("Write() failed")
		}
		got := store.Read()
		if len(got.Subjects) == 0 {
			t.Error("empty subject catalog survived a Read()")
		}
		if !reflect.DeepEqual(got, Seed()) {
			t.Error("Read() after catalog wipe != Seed()")
		}
	})
}

func TestDocumentStore_WriteRoundTrip(t *testing.T) {
	store, _ := newTestStore()

	doc := store.Read()
	doc.Leaves = append(doc.Leaves, Leave{ID: "leave_x", StudentID: "s1", Reason: "fever", Status: LeavePending})
	doc.Students[0].ActivityPoints = 42

	if !store.Write(doc) {
		t.Fatal("Write() = false")
	}
	got := store.Read()
	if !reflect.DeepEqual(got, EnsureShape(doc)) {
		t.Error("Read() after Write(doc) != EnsureShape(doc)")
	}
}

type failingKV struct{ kv.Store }

func (failingKV) Set(string, []byte) error { return errors.New("disk full") }

func TestDocumentStore_WriteFailure(t *testing.T) {
	store := NewStore(failingKV{kv.OpenInmemStore()}, testConf(), nopLogger{})
	if store.Write(Seed()) {
		t.Error("Write() = true on a failing key-value store")
	}
	if store.ResetToSeed() {
		t.Error("ResetToSeed() = true on a failing key-value store")
	}
	// reads still never fail
	if doc := store.Read(); len(doc.Subjects) == 0 {
		t.Error("Read() returned an unusable document")
	}
}

func TestDocumentStore_ResetAndClear(t *testing.T) {
	store, kvs := newTestStore()

	doc := store.Read()
	doc.Users = append(doc.Users, User{ID: "u_extra", Role: RoleStudent})
	if !store.Write(doc) {
		t.Fatal("Write() failed")
	}

	if !store.ResetToSeed() {
		t.Fatal("ResetToSeed() = false")
	}
	if got := store.Read(); !reflect.DeepEqual(got, Seed()) {
		t.Error("Read() after ResetToSeed() != Seed()")
	}

	if got := store.Clear(); !reflect.DeepEqual(got, Seed()) {
		t.Error("Clear() != Seed()")
	}
	if _, err := kvs.Get("spams_v5_store"); err != kv.ErrKeyNotFound {
		t.Errorf("slot still present after Clear(): %v", err)
	}
}
