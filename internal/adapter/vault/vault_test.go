package vault

import (
	"encoding/base64"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adlens/internal/core/port"
)

const testSecret = "0123456789abcdef-test-secret"

func TestRoundTripCredentialMap(t *testing.T) {
	v, err := New(testSecret)
	require.NoError(t, err)

	creds := map[string]string{
		"refresh_token": "1//0gLongRefreshToken",
		"customer_id":   "123-456-7890",
		"empty":         "",
		"unicode":       "clé secrète ✓",
	}
	for k, want := range creds {
		ct, err := v.Encrypt(want)
		require.NoError(t, err, k)
		assert.NotEqual(t, want, ct)

		got, err := v.Decrypt(ct)
		require.NoError(t, err, k)
		assert.Equal(t, want, got, k)
	}
}

func TestEncryptUsesFreshNonce(t *testing.T) {
	v, err := New(testSecret)
	require.NoError(t, err)

	a, err := v.Encrypt("same value")
	require.NoError(t, err)
	b, err := v.Encrypt("same value")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "identical plaintexts must not produce identical ciphertexts")
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	v, err := New(testSecret)
	require.NoError(t, err)

	ct, err := v.Encrypt("access-token")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(ct)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff

	_, err = v.Decrypt(base64.StdEncoding.EncodeToString(raw))
	assert.ErrorIs(t, err, port.ErrDecryptionFailed)
}

func TestDecryptFailures(t *testing.T) {
	v, err := New(testSecret)
	require.NoError(t, err)
	other, err := New("another-secret-of-enough-length")
	require.NoError(t, err)

	ct, err := other.Encrypt("value")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{name: "wrong key", input: ct},
		{name: "not base64", input: "%%%not-base64%%%"},
		{name: "too short", input: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "empty", input: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Decrypt(tt.input)
			assert.ErrorIs(t, err, port.ErrDecryptionFailed)
		})
	}
}

func TestNewRejectsShortSecret(t *testing.T) {
	_, err := New(strings.Repeat("x", MinSecretLength-1))
	assert.Error(t, err)
}

func TestSameSecretDerivesSameKey(t *testing.T) {
	a, err := New(testSecret)
	require.NoError(t, err)
	b, err := New(testSecret)
	require.NoError(t, err)

	ct, err := a.Encrypt("shared")
	require.NoError(t, err)
	got, err := b.Decrypt(ct)
	require.NoError(t, err)
	assert.Equal(t, "shared", got)
}

func TestConcurrentUse(t *testing.T) {
	v, err := New(testSecret)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ct, err := v.Encrypt("token")
			if !assert.NoError(t, err) {
				return
			}
			got, err := v.Decrypt(ct)
			assert.NoError(t, err)
			assert.Equal(t, "token", got)
		}()
	}
	wg.Wait()
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, ComparePassword(hash, "hunter2"))
	assert.False(t, ComparePassword(hash, "hunter3"))

	again, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes are salted")

	_, err = HashPassword("")
	assert.Error(t, err)
}
