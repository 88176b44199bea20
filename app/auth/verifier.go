package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type VerifierConfig struct {
	HMACSecret   string
	PublicKeyPEM string
	Issuer       string
	EmailClaim   string
}

// Verifier validates identity provider JWTs and extracts the caller identity.
type Verifier struct {
	hmacSecret []byte
	publicKey  *rsa.PublicKey
	issuer     string
	emailClaim string
}

func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	v := &Verifier{
		issuer:     strings.TrimSpace(cfg.Issuer),
		emailClaim: strings.TrimSpace(cfg.EmailClaim),
	}
	if v.emailClaim == "" {
		v.emailClaim = "email_address"
	}

	if pemValue := strings.TrimSpace(cfg.PublicKeyPEM); pemValue != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemValue))
		if err != nil {
			return nil, fmt.Errorf("parse jwt public key: %w", err)
		}
		v.publicKey = key
		return v, nil
	}

	if cfg.HMACSecret == "" {
		return nil, errors.New("jwt secret or public key is required")
	}
	v.hmacSecret = []byte(cfg.HMACSecret)
	return v, nil
}

func (v *Verifier) Verify(token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if v.publicKey != nil {
		opts = append(opts, jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}))
	} else {
		opts = append(opts, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, v.keyFunc, opts...)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(subject) == "" {
		return nil, ErrInvalidToken
	}

	identity := &Identity{UserID: strings.TrimSpace(subject)}
	if email, ok := claims[v.emailClaim].(string); ok {
		identity.Email = strings.TrimSpace(email)
	}
	return identity, nil
}

func (v *Verifier) keyFunc(_ *jwt.Token) (interface{}, error) {
	if v.publicKey != nil {
		return v.publicKey, nil
	}
	return v.hmacSecret, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <jwt>" value.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
