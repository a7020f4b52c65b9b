package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrNoSecret means a signing secret is unset. Callers are expected to
	// reject this configuration at startup; the check here is a fallback.
	ErrNoSecret = errors.New("signing secret is not configured")
	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired covers well-formed, correctly signed tokens past exp.
	ErrTokenExpired = errors.New("token expired")
)

// Kind selects which secret a token is signed and verified with.
type Kind string

const (
	Access  Kind = "access"
	Refresh Kind = "refresh"
)

// Pair is one access/refresh token issuance.
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// Manager signs and verifies HS256 tokens. Access and refresh tokens carry
// the same claim shape but use independent secrets and lifetimes.
type Manager struct {
	secrets map[Kind][]byte
	ttls    map[Kind]time.Duration
}

func NewManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secrets: map[Kind][]byte{
			Access:  []byte(accessSecret),
			Refresh: []byte(refreshSecret),
		},
		ttls: map[Kind]time.Duration{
			Access:  accessTTL,
			Refresh: refreshTTL,
		},
	}
}

// Issue creates a signed access/refresh pair for a user. A fresh jti keeps
// two pairs issued in the same instant from colliding. No side effects;
// persisting the refresh token is the caller's job.
func (m *Manager) Issue(userID uuid.UUID) (Pair, error) {
	jti := uuid.NewString()

	access, err := m.sign(userID, jti, Access)
	if err != nil {
		return Pair{}, err
	}

	refresh, err := m.sign(userID, jti, Refresh)
	if err != nil {
		return Pair{}, err
	}

	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *Manager) sign(userID uuid.UUID, jti string, kind Kind) (string, error) {
	secret := m.secrets[kind]
	if len(secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"jti": jti,
		"iat": now.Unix(),
		"exp": now.Add(m.ttls[kind]).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Verify checks signature and expiry against the secret for the given kind
// and returns the embedded user id. Pure; set membership of refresh tokens
// is checked by the session layer, not here.
func (m *Manager) Verify(tokenString string, kind Kind) (uuid.UUID, error) {
	secret := m.secrets[kind]
	if len(secret) == 0 {
		return uuid.Nil, ErrNoSecret
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrInvalidToken
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
