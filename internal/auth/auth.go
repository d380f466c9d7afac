package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(claims TokenSubject) (token string, err error)
	GenerateRefreshToken(claims TokenSubject) (token string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

// AuthRequirement is the route-level authentication policy. Modeled as an
// explicit three-way type rather than a boolean: public routes never look
// at the token, optional routes accept anonymous callers but still reject
// a bad token, required routes demand a valid one.
type AuthRequirement int

const (
	AuthPublic AuthRequirement = iota
	AuthOptional
	AuthRequired
)

// TokenSubject is everything the token must carry to rebuild a Principal
// on a later request without touching the database.
type TokenSubject struct {
	ID          int64
	Email       string
	AccountType internal.AccountType
	Role        string
	CompanyID   *int64
}

// Claims represents JWT token claims
type Claims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
	Role        string `json:"role,omitempty"`
	CompanyID   *int64 `json:"company_id,omitempty"`
	jwt.RegisteredClaims
}

// Principal rebuilds the request principal from verified claims. It fails
// only on malformed claims, which are treated as an invalid credential.
func (c *Claims) Principal() (*internal.Principal, error) {
	id, err := strconv.ParseInt(c.UserID, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	accountType := internal.AccountType(c.AccountType)
	if !accountType.Valid() {
		return nil, ErrInvalidToken
	}

	return &internal.Principal{
		ID:          id,
		AccountType: accountType,
		Role:        c.Role,
		CompanyID:   c.CompanyID,
	}, nil
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrAccountInactive    = errors.New("account is inactive")
)

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
