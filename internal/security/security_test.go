package security

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("secret", "user-1", "admin", time.Minute)
	require.NoError(t, err)

	claims, err := ParseAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestAccessToken_WrongSecretRejected(t *testing.T) {
	token, err := GenerateAccessToken("secret", "user-1", "admin", time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "other-secret")
	assert.Error(t, err)
}

func TestAccessToken_ExpiredRejected(t *testing.T) {
	token, err := GenerateAccessToken("secret", "user-1", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "secret")
	assert.Error(t, err)
}

func TestPassword_HashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	ok, err := VerifyPassword("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPassword_EncodingParses(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	// Six dollar-separated fields; salt and hash are separate segments and
	// must not be swallowed as one token when parsing.
	parts := strings.Split(string(hash), "$")
	require.Len(t, parts, 6)
	assert.Equal(t, "argon2id", parts[1])
	assert.Equal(t, "v=19", parts[2])

	ok, err := VerifyPassword("pw", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPassword_GarbageHash(t *testing.T) {
	_, err := VerifyPassword("anything", []byte("not-a-hash"))
	assert.Error(t, err)

	_, err = VerifyPassword("anything", []byte("$argon2id$v=19$t=3,m=65536,p=2$onlysalt"))
	assert.Error(t, err)
}
