package academic

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/acadly/spams/core"
)

var errTokenSigningFailed = errors.New("failed to sign token")

// AuthResult is the authentication contract consumed by the presentation
// layer. On failure only Message is set; the single failure message never
// discloses whether the email exists.
type AuthResult struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	User      *User     `json:"user,omitempty"`
	Dashboard Dashboard `json:"dashboard,omitempty"`
	Token     string    `json:"token,omitempty"`
}

// Authenticate looks the credentials up in the user collection and, on a
// match, returns the full user record together with a freshly generated
// dashboard and a signed session token. It never mutates the document.
// Role hints are a presentation-layer concern and are not checked here.
func (svc *Service) Authenticate(email, password string) AuthResult {
	doc := svc.store.Read()
	email = core.CleanString(email, true /* lower */)

	for _, usr := range doc.Users {
		if usr.Email != email || usr.Password != password {
			continue
		}

		dashboard, err := GenerateDashboard(&doc, usr)
		if err != nil {
			svc.log.Error("generating dashboard on login", err, usr.ID)
			return AuthResult{Success: false, Message: "Invalid email or password"}
		}

		token, err := GenerateToken(GetUserClaims(usr, svc.conf), svc.conf)
		if err != nil {
			// a missing token degrades the session, it does not block login
			svc.log.Error("signing session token", err, usr.ID)
		}

		usr := usr
		return AuthResult{Success: true, User: &usr, Dashboard: dashboard, Token: token}
	}
	return AuthResult{Success: false, Message: "Invalid email or password"}
}

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Role      Role `json:"role,omitempty"`
	IsStudent bool `json:"is_student,omitempty"`
	IsFaculty bool `json:"is_faculty,omitempty"`
	IsProctor bool `json:"is_proctor,omitempty"`
}

func GetUserClaims(usr User, conf *core.Config) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   usr.ID,
			ExpiresAt: now.Add(conf.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Role:      usr.Role,
		IsStudent: usr.IsStudent(),
		IsFaculty: usr.IsFaculty(),
		IsProctor: usr.IsProctor(),
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(claims *Claims, conf *core.Config) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(conf.SecretKey)
	if err != nil {
		return "", errTokenSigningFailed
	}
	return ss, nil
}

// ParseToken validates a signed token string and returns its claims.
func ParseToken(ss string, conf *core.Config) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(ss, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return conf.SecretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
