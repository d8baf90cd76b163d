package member

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLen is the shortest accepted token secret.
const MinSecretLen = 32

// ErrInvalidToken reports a token that failed verification.
var ErrInvalidToken = errors.New("invalid member token")

// Claims is the signed member token payload. The subject is the member id.
type Claims struct {
	jwt.RegisteredClaims
	Nickname      string           `json:"nickname,omitempty"`
	FirstName     string           `json:"first_name,omitempty"`
	LastName      string           `json:"last_name,omitempty"`
	Title         string           `json:"title,omitempty"`
	Email         string           `json:"email,omitempty"`
	EmailVerified bool             `json:"email_verified,omitempty"`
	Phones        []string         `json:"phones,omitempty"`
	Photo         string           `json:"photo,omitempty"`
	Status        string           `json:"status,omitempty"`
	MemberSince   *jwt.NumericDate `json:"member_since,omitempty"`
	ProfileAt     *jwt.NumericDate `json:"profile_updated_at,omitempty"`
	LastLoginAt   *jwt.NumericDate `json:"last_login_at,omitempty"`
}

// ClaimsFor builds the claims describing m.
func ClaimsFor(m Member) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: m.ID},
		Nickname:         m.Nickname,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Title:            m.Title,
		Email:            m.LoginEmail,
		EmailVerified:    m.LoginEmailVerified,
		Phones:           m.Phones,
		Photo:            m.PhotoURL,
		Status:           m.Status,
		MemberSince:      numericDate(m.CreatedAt),
		ProfileAt:        numericDate(m.UpdatedAt),
		LastLoginAt:      numericDate(m.LastLoginAt),
	}
}

// Member converts verified claims into a member record.
func (c Claims) Member() Member {
	return Member{
		ID:                 strings.TrimSpace(c.Subject),
		Nickname:           strings.TrimSpace(c.Nickname),
		FirstName:          strings.TrimSpace(c.FirstName),
		LastName:           strings.TrimSpace(c.LastName),
		Title:              strings.TrimSpace(c.Title),
		LoginEmail:         strings.TrimSpace(c.Email),
		LoginEmailVerified: c.EmailVerified,
		Phones:             c.Phones,
		PhotoURL:           strings.TrimSpace(c.Photo),
		Status:             strings.TrimSpace(c.Status),
		CreatedAt:          timeOf(c.MemberSince),
		UpdatedAt:          timeOf(c.ProfileAt),
		LastLoginAt:        timeOf(c.LastLoginAt),
	}
}

// Sign issues an HS256 token for claims valid for ttl from now.
func Sign(secret []byte, claims Claims, now time.Time, ttl time.Duration) (string, error) {
	if len(secret) < MinSecretLen {
		return "", fmt.Errorf("member token secret must be at least %d bytes", MinSecretLen)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", fmt.Errorf("member token subject is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("member token ttl must be positive")
	}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verifier checks member tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewVerifier builds a verifier. issuer is enforced when non-empty.
func NewVerifier(secret []byte, issuer string) (*Verifier, error) {
	if len(secret) < MinSecretLen {
		return nil, fmt.Errorf("member token secret must be at least %d bytes", MinSecretLen)
	}
	return &Verifier{secret: secret, issuer: strings.TrimSpace(issuer), now: time.Now}, nil
}

// Verify parses token and returns its claims. Only HS256 is accepted and the
// token must carry an expiry and a subject.
func (v *Verifier) Verify(token string) (Claims, error) {
	if v == nil {
		return Claims{}, ErrInvalidToken
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	var claims Claims
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

func numericDate(t time.Time) *jwt.NumericDate {
	if t.IsZero() {
		return nil
	}
	return jwt.NewNumericDate(t)
}

func timeOf(d *jwt.NumericDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time.UTC()
}
