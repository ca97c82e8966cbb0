package academic_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acadly/spams/core/academic"
	testutil "github.com/acadly/spams/tests"
)

func TestService_Authenticate(t *testing.T) {
	svc := testutil.NewTestService(t)

	tests := []struct {
		name      string
		email     string
		password  string
		wantOK    bool
		wantRole  academic.Role
	}{
		{name: "student login", email: "alice@example.com", password: "pass", wantOK: true, wantRole: academic.RoleStudent},
		{name: "faculty login", email: "bob@example.com", password: "pass", wantOK: true, wantRole: academic.RoleFaculty},
		{name: "proctor login", email: "proctor@example.com", password: "pass", wantOK: true, wantRole: academic.RoleProctor},
		{name: "email is case-insensitive", email: "  ALICE@example.com ", password: "pass", wantOK: true, wantRole: academic.RoleStudent},
		{name: "wrong password", email: "alice@example.com", password: "nope"},
		{name: "unknown email", email: "ghost@example.com", password: "pass"},
		{name: "password is case-sensitive", email: "alice@example.com", password: "PASS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.Authenticate(tt.email, tt.password)
			if res.Success != tt.wantOK {
				t.Fatalf("Authenticate() success = %v, want %v", res.Success, tt.wantOK)
			}
			if !tt.wantOK {
				assert.Equal(t, "Invalid email or password", res.Message)
				assert.Nil(t, res.User)
				assert.Nil(t, res.Dashboard)
				assert.Empty(t, res.Token)
				return
			}
			if assert.NotNil(t, res.User) {
				assert.Equal(t, tt.wantRole, res.User.Role)
			}
			assert.NotNil(t, res.Dashboard)
			assert.NotEmpty(t, res.Token)
		})
	}
}

func TestService_Authenticate_neverMutates(t *testing.T) {
	svc := testutil.NewTestService(t)

	before := svc.ListUsers()
	svc.Authenticate("alice@example.com", "wrong")
	svc.Authenticate("alice@example.com", "pass")
	after := svc.ListUsers()

	if !reflect.DeepEqual(before, after) {
		t.Error("Authenticate() mutated the user collection")
	}
}

func TestService_Authenticate_tokenClaims(t *testing.T) {
	conf := testutil.NewTestConfig()
	svc := testutil.NewTestService(t)

	res := svc.Authenticate("alice@example.com", "pass")
	if !res.Success {
		t.Fatal("Authenticate() failed")
	}

	claims, err := academic.ParseToken(res.Token, conf)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	assert.Equal(t, "s1", claims.Subject)
	assert.Equal(t, academic.RoleStudent, claims.Role)
	assert.True(t, claims.IsStudent)
	assert.False(t, claims.IsFaculty)
	assert.False(t, claims.IsProctor)
}
