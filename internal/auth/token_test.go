package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	signer := NewSigner([]byte("secret"), 0)

	token, err := signer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewSigner([]byte("secret"), 0).Issue("user-123")
	require.NoError(t, err)

	_, err = NewSigner([]byte("other"), 0).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	signer := NewSigner([]byte("secret"), 0)
	token, err := signer.Issue("user-123")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	forged, err := json.Marshal(map[string]any{"user": map[string]string{"id": "someone-else"}})
	require.NoError(t, err)
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)

	_, err = signer.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	signer := NewSigner([]byte("secret"), 0)
	for _, token := range []string{"", "not-a-jwt", "a.b", "a.b.c"} {
		_, err := signer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerifyExpired(t *testing.T) {
	signer := NewSigner([]byte("secret"), time.Nanosecond)
	token, err := signer.Issue("user-123")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = signer.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// The payload must keep the {"user":{"id":...}} shape existing clients decode.
func TestClaimsWireShape(t *testing.T) {
	signer := NewSigner([]byte("secret"), 0)
	token, err := signer.Issue("user-123")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var decoded struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "user-123", decoded.User.ID)
}
