package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ecommerce/config"
	domainerrors "ecommerce/internal/domain/errors"
	"ecommerce/internal/domain/service"
	"ecommerce/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// A blank access secret is a configuration error and aborts startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("secretKey.access must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    service.AccessTokenTTL,
		now:    time.Now,
	}, nil
}

// IssueToken signs the claims with HS256. Issue time and expiry are always overwritten.
func (s *jwtService) IssueToken(claims service.Claims) (string, error) {
	issuedAt := s.now()
	claims.IssuedAt = jwt.NewNumericDate(issuedAt)
	claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(s.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// ValidateToken checks signature, algorithm and expiry and returns the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	return claims, nil
}
