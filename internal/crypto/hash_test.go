package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
		wantErr  bool
	}{
		{
			name:     "successful hash",
			password: "correct horse",
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
			errMsg:   "password cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)
			assert.NoError(t, VerifyPassword(hash, tt.password))
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "bcrypt hashes must be salted")
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		assert.ErrorIs(t, VerifyPassword(hash, "secret2"), ErrPasswordMismatch)
	})

	t.Run("corrupt hash", func(t *testing.T) {
		err := VerifyPassword("not-a-hash", "secret1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("empty hash", func(t *testing.T) {
		assert.Error(t, VerifyPassword("", "secret1"))
	})
}

func TestGenerateSecret(t *testing.T) {
	s1, err := GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, s1, SecretSize)

	s2, err := GenerateSecret()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}
