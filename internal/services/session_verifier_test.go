package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"budget-tracker/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const testIssuer = "https://clerk.budget.test"

type SessionVerifierSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	verifier   SessionVerifierInterface
}

func TestSessionVerifierSuite(t *testing.T) {
	suite.Run(t, new(SessionVerifierSuite))
}

func (s *SessionVerifierSuite) SetupSuite() {
	priv, pub, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	s.privateKey = priv
	s.verifier = NewSessionVerifier(&config.IdentityConfig{
		PublicKey: pub,
		Issuer:    testIssuer,
		ClockSkew: 5 * time.Second,
	})
}

func (s *SessionVerifierSuite) sign(claims jwt.Claims, method jwt.SigningMethod, key interface{}) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	s.Require().NoError(err)
	return token
}

func (s *SessionVerifierSuite) TestVerify_ValidToken() {
	token, err := SignSessionToken(s.privateKey, testIssuer, "user_2abc", "me@example.com", time.Hour)
	s.Require().NoError(err)

	claims, err := s.verifier.Verify(token)
	s.Require().NoError(err)
	s.Equal("user_2abc", claims.ExternalID())
	s.Equal("me@example.com", claims.Email)
}

func (s *SessionVerifierSuite) TestVerify_EmptyToken() {
	_, err := s.verifier.Verify("")
	s.ErrorIs(err, ErrNoToken)
}

func (s *SessionVerifierSuite) TestVerify_Expired() {
	token, err := SignSessionToken(s.privateKey, testIssuer, "user_2abc", "", -time.Minute)
	s.Require().NoError(err)

	_, err = s.verifier.Verify(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *SessionVerifierSuite) TestVerify_WithinClockSkew() {
	token, err := SignSessionToken(s.privateKey, testIssuer, "user_2abc", "", -2*time.Second)
	s.Require().NoError(err)

	_, err = s.verifier.Verify(token)
	s.NoError(err)
}

func (s *SessionVerifierSuite) TestVerify_WrongKey() {
	other, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	token, err := SignSessionToken(other, testIssuer, "user_2abc", "", time.Hour)
	s.Require().NoError(err)

	_, err = s.verifier.Verify(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionVerifierSuite) TestVerify_WrongIssuer() {
	token, err := SignSessionToken(s.privateKey, "https://elsewhere.test", "user_2abc", "", time.Hour)
	s.Require().NoError(err)

	_, err = s.verifier.Verify(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionVerifierSuite) TestVerify_RejectsHMAC() {
	token := s.sign(jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "user_2abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}, jwt.SigningMethodHS256, []byte("shared-secret"))

	_, err := s.verifier.Verify(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionVerifierSuite) TestVerify_MissingExpiry() {
	token := s.sign(jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: "user_2abc",
	}, jwt.SigningMethodRS256, s.privateKey)

	_, err := s.verifier.Verify(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionVerifierSuite) TestVerify_MissingSubject() {
	token, err := SignSessionToken(s.privateKey, testIssuer, "", "", time.Hour)
	s.Require().NoError(err)

	_, err = s.verifier.Verify(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionVerifierSuite) TestVerify_Garbage() {
	_, err := s.verifier.Verify("not.a.jwt")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *SessionVerifierSuite) TestExtractToken() {
	tests := []struct {
		name    string
		header  string
		cookie  string
		want    string
		wantErr error
	}{
		{"bearer header", "Bearer abc.def", "", "abc.def", nil},
		{"lowercase scheme", "bearer abc.def", "", "abc.def", nil},
		{"header wins over cookie", "Bearer from-header", "from-cookie", "from-header", nil},
		{"cookie fallback", "", " from-cookie ", "from-cookie", nil},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", "", ErrInvalidAuthHeader},
		{"empty bearer", "Bearer ", "", "", ErrInvalidAuthHeader},
		{"anonymous", "", "", "", ErrNoToken},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.verifier.ExtractToken(tt.header, tt.cookie)
			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				return
			}
			s.NoError(err)
			s.Equal(tt.want, token)
		})
	}
}

func (s *SessionVerifierSuite) TestSignSessionToken_NoKey() {
	_, err := SignSessionToken(nil, testIssuer, "user", "", time.Hour)
	s.ErrorIs(err, ErrSigningKeyMissing)
}
