package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"budget-tracker/internal/config"
	"budget-tracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrNoToken           = errors.New("no session token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrSigningKeyMissing = errors.New("no signing key configured")
)

// SessionVerifier checks RS256 session tokens issued by the identity provider
type SessionVerifier struct {
	publicKey *rsa.PublicKey
	issuer    string
	leeway    time.Duration
}

// NewSessionVerifier creates a verifier from the identity configuration
func NewSessionVerifier(cfg *config.IdentityConfig) SessionVerifierInterface {
	return &SessionVerifier{
		publicKey: cfg.PublicKey,
		issuer:    cfg.Issuer,
		leeway:    cfg.ClockSkew,
	}
}

// Verify validates the signature and time claims and returns the session claims
func (v *SessionVerifier) Verify(tokenString string) (*models.SessionClaims, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, v.keyFunc, opts...)
	if err != nil {
		return nil, v.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if strings.TrimSpace(claims.ExternalID()) == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

// ExtractToken returns the bearer token from the Authorization header, falling
// back to the provider session cookie. ErrNoToken means the request is anonymous.
func (v *SessionVerifier) ExtractToken(authHeader, cookie string) (string, error) {
	if authHeader != "" {
		const bearerPrefix = "bearer "
		if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
			return "", ErrInvalidAuthHeader
		}

		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if token == "" {
			return "", ErrInvalidAuthHeader
		}
		return token, nil
	}

	if cookie = strings.TrimSpace(cookie); cookie != "" {
		return cookie, nil
	}

	return "", ErrNoToken
}

func (v *SessionVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	if v.publicKey == nil {
		return nil, errors.New("no verification key configured")
	}
	return v.publicKey, nil
}

func (v *SessionVerifier) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}

// SignSessionToken issues a token the verifier accepts. It is used with the
// locally generated development keypair and in tests.
func SignSessionToken(privateKey *rsa.PrivateKey, issuer, externalID, email string, ttl time.Duration) (string, error) {
	if privateKey == nil {
		return "", ErrSigningKeyMissing
	}

	now := time.Now()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   externalID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}
