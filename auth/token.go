package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"chat-relay/errors"
)

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Verifier validates bearer credentials and extracts the caller identity.
// The signing secret is injected configuration, shared with the external
// collaborator that issues tokens at login time.
type Verifier struct {
	secret        []byte
	tokenDuration time.Duration
}

func NewVerifier(secret []byte, tokenDuration time.Duration) *Verifier {
	return &Verifier{secret: secret, tokenDuration: tokenDuration}
}

// Issue creates a signed JWT asserting the given username.
// Used by the tokengen tool and tests; the relay itself only verifies.
func (v *Verifier) Issue(username string) (string, error) {
	claims := &CustomClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(v.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "chat-relay",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// Verify parses and validates the signature and expiration of a token
// string and returns the username embedded at issuance. An empty token,
// a tampered signature, a non-HMAC signing method or an expired claim
// all fail with errors.ErrInvalidToken wrapping the cause.
func (v *Verifier) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errors.ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", errors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.Username == "" {
		return "", errors.ErrInvalidToken
	}
	return claims.Username, nil
}
