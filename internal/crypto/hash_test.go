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
		cost     int
		wantCost int
		wantErr  bool
	}{
		{name: "min cost", password: "secret1", cost: bcrypt.MinCost, wantCost: bcrypt.MinCost},
		{name: "empty password", password: "", cost: bcrypt.MinCost, wantErr: true},
		{name: "cost too high falls back to default", password: "secret1", cost: bcrypt.MaxCost + 1, wantCost: DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, tt.cost)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hash)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		wantErr  error
		name     string
		password string
		hash     string
		anyErr   bool
	}{
		{name: "match", password: "secret1", hash: hash},
		{name: "mismatch", password: "secret2", hash: hash, wantErr: ErrPasswordMismatch},
		{name: "empty hash", password: "secret1", hash: "", anyErr: true},
		{name: "malformed hash", password: "secret1", hash: "not-bcrypt", anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, tt.hash)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
