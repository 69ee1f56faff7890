package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	svc, err := New("test-secret")
	require.NoError(t, err)

	cipher, err := svc.EncryptString("980101-1234567")
	require.NoError(t, err)
	assert.NotEqual(t, "980101-1234567", cipher)

	assert.Equal(t, "980101-1234567", svc.DecryptString(cipher))
}

func TestEncrypt_UsesFreshNonce(t *testing.T) {
	svc, err := New("test-secret")
	require.NoError(t, err)

	a, err := svc.EncryptString("same")
	require.NoError(t, err)
	b, err := svc.EncryptString("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDecrypt_FailureYieldsEmpty(t *testing.T) {
	svc, err := New("test-secret")
	require.NoError(t, err)
	other, err := New("another-secret")
	require.NoError(t, err)

	cipher, err := svc.EncryptString("980101-1234567")
	require.NoError(t, err)

	assert.Equal(t, "", other.DecryptString(cipher))
	assert.Equal(t, "", svc.DecryptString("not base64 !!"))
	assert.Equal(t, "", svc.DecryptString("AAAA"))
	assert.Equal(t, "", svc.DecryptString(""))
}

func TestEncrypt_EmptyStaysEmpty(t *testing.T) {
	svc, err := New("test-secret")
	require.NoError(t, err)

	cipher, err := svc.EncryptString("")
	require.NoError(t, err)
	assert.Equal(t, "", cipher)
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestMaskResidentNo(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"980101-1234567", "980101-*******"},
		{"9801011234567", "980101-*******"},
		{"98-01-01 1234567", "980101-*******"},
		{"12345", "***-*******"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MaskResidentNo(c.input), "input %q", c.input)
	}
}
