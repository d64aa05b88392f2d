package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"chat-relay/errors"
)

func TestIssueAndVerify(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier([]byte("test_secret_for_tokens"), time.Hour)

	token, err := verifier.Issue("alice")
	req.NoError(err)
	req.NotEmpty(token)

	username, err := verifier.Verify(token)
	req.NoError(err)
	req.Equal("alice", username)
}

func TestVerify_Failures(t *testing.T) {
	verifier := NewVerifier([]byte("test_secret_for_tokens"), time.Hour)

	valid, err := verifier.Issue("alice")
	require.NoError(t, err)

	// Token signed with a different secret.
	other := NewVerifier([]byte("another_secret_entirely"), time.Hour)
	foreign, err := other.Issue("alice")
	require.NoError(t, err)

	// Token already expired at verification time.
	expiredIssuer := NewVerifier([]byte("test_secret_for_tokens"), -time.Minute)
	expired, err := expiredIssuer.Issue("alice")
	require.NoError(t, err)

	// Valid signature but the payload has been altered.
	parts := strings.Split(valid, ".")
	tampered := parts[0] + ".eyJ1c2VybmFtZSI6ImV2ZSJ9." + parts[2]

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"Missing token", "", errors.ErrMissingToken},
		{"Garbage token", "not.a.jwt", errors.ErrInvalidToken},
		{"Wrong secret", foreign, errors.ErrInvalidToken},
		{"Expired token", expired, errors.ErrInvalidToken},
		{"Tampered payload", tampered, errors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := verifier.Verify(tt.token)
			req.ErrorIs(err, tt.wantErr)
		})
	}
}

func TestVerify_RejectsUnsignedAlgorithm(t *testing.T) {
	req := require.New(t)
	verifier := NewVerifier([]byte("test_secret_for_tokens"), time.Hour)

	// alg=none must never pass even with a well-formed claim set.
	claims := &CustomClaims{Username: "alice"}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	req.NoError(err)

	_, err = verifier.Verify(unsigned)
	req.ErrorIs(err, errors.ErrInvalidToken)
}
