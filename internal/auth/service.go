package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IgorMello0/auraia-hub/internal"
	accountDatamodel "github.com/IgorMello0/auraia-hub/internal/core/datamodel/account"
	"github.com/golang-jwt/jwt/v5"
)

type CredentialRepository interface {
	GetProfessionalByEmail(email string) (*accountDatamodel.Professional, error)
	GetEmployeeByEmail(email string) (*accountDatamodel.Employee, error)
}

// Service is the main auth service with dependencies
type Service struct {
	credentials    CredentialRepository
	tokenGenerator TokenGeneratorAPI
	bcryptCost     int
}

// NewService creates a new auth service
func NewService(credentials CredentialRepository, tokenGen TokenGeneratorAPI, bcryptCost int) *Service {
	return &Service{
		credentials:    credentials,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

// NewJWTTokenGenerator creates a new JWT token generator
func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

// Authenticate validates credentials and returns tokens. Professionals and
// employees authenticate against different tables; the resulting token
// carries the account type so later requests never have to guess.
func (s *Service) Authenticate(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	accountType := internal.AccountType(dto.AccountType)
	if dto.AccountType == "" {
		accountType = internal.AccountTypeProfessional
	}

	var subject TokenSubject
	switch accountType {
	case internal.AccountTypeEmployee:
		emp, err := s.credentials.GetEmployeeByEmail(dto.Email)
		if err != nil || emp == nil {
			return AuthTokens{}, ErrInvalidCredentials
		}
		if err := VerifyPassword(emp.PasswordHash, dto.Password); err != nil {
			return AuthTokens{}, ErrInvalidCredentials
		}
		if !emp.IsActive {
			return AuthTokens{}, ErrAccountInactive
		}
		companyID := emp.ProfessionalID
		subject = TokenSubject{
			ID:          emp.ID,
			Email:       emp.Email,
			AccountType: internal.AccountTypeEmployee,
			Role:        emp.Role,
			CompanyID:   &companyID,
		}
	default:
		prof, err := s.credentials.GetProfessionalByEmail(dto.Email)
		if err != nil || prof == nil {
			return AuthTokens{}, ErrInvalidCredentials
		}
		if err := VerifyPassword(prof.PasswordHash, dto.Password); err != nil {
			return AuthTokens{}, ErrInvalidCredentials
		}
		if !prof.IsActive {
			return AuthTokens{}, ErrAccountInactive
		}
		companyID := prof.ID
		subject = TokenSubject{
			ID:          prof.ID,
			Email:       prof.Email,
			AccountType: internal.AccountTypeProfessional,
			CompanyID:   &companyID,
		}
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(subject)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokenGenerator.GenerateRefreshToken(subject)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens validates refresh token and returns new tokens
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokenGenerator.ValidateToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	id, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return AuthTokens{}, ErrInvalidToken
	}

	subject := TokenSubject{
		ID:          id,
		Email:       claims.Email,
		AccountType: internal.AccountType(claims.AccountType),
		Role:        claims.Role,
		CompanyID:   claims.CompanyID,
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(subject)
	if err != nil {
		return AuthTokens{}, err
	}

	newRefreshToken, err := s.tokenGenerator.GenerateRefreshToken(subject)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	return HashPassword(password, s.bcryptCost)
}

func (j *JWTTokenGenerator) newClaims(subject TokenSubject, ttl time.Duration) *Claims {
	now := time.Now()
	return &Claims{
		UserID:      strconv.FormatInt(subject.ID, 10),
		Email:       subject.Email,
		AccountType: string(subject.AccountType),
		Role:        subject.Role,
		CompanyID:   subject.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(subject.ID, 10),
		},
	}
}

// GenerateAccessToken creates a new access token
func (j *JWTTokenGenerator) GenerateAccessToken(subject TokenSubject) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, j.newClaims(subject, j.AccessTokenTTL))
	tokenString, err := token.SignedString(j.AccessTokenSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GenerateRefreshToken creates a new refresh token
func (j *JWTTokenGenerator) GenerateRefreshToken(subject TokenSubject) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, j.newClaims(subject, j.RefreshTokenTTL))
	tokenString, err := token.SignedString(j.RefreshTokenSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		// Refresh tokens outlive the access TTL; pick the secret by the
		// remaining lifetime the same way tokens were issued.
		if claims, ok := token.Claims.(*Claims); ok {
			if claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) > j.AccessTokenTTL {
				return j.RefreshTokenSecret, nil
			}
		}
		return j.AccessTokenSecret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
