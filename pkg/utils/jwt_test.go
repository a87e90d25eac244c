package utils

import (
	"testing"

	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	unitID := "unit-ti"
	user := &model.User{
		NoIdentitas: "4001",
		Name:        "Petugas Satu",
		Email:       "petugas1@kampus.ac.id",
		UserLevelID: "level-petugas",
		UserLevel:   &model.UserLevel{Name: string(model.RolePetugas)},
		UnitID:      &unitID,
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "4001", claims.NoIdentitas)
	assert.Equal(t, "Petugas Satu", claims.Name)
	assert.Equal(t, "level-petugas", claims.UserLevelID)
	assert.Equal(t, model.RolePetugas, claims.Role)
	require.NotNil(t, claims.UnitID)
	assert.Equal(t, unitID, *claims.UnitID)
}

// User level yang tidak dikenal turun ke role paling rendah, tidak error.
func TestTokenUnknownRoleFailsClosed(t *testing.T) {
	user := &model.User{
		NoIdentitas: "9001",
		Name:        "Misterius",
		Email:       "misterius@kampus.ac.id",
		UserLevelID: "level-aneh",
		UserLevel:   &model.UserLevel{Name: "SUPER_DUPER_ADMIN"},
	}

	token, err := GenerateToken(user)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("bukan.token.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDecodeTokenLenient(t *testing.T) {
	claims, err := DecodeToken("")
	assert.NoError(t, err)
	assert.Nil(t, claims)

	claims, err = DecodeToken("rusak")
	assert.NoError(t, err)
	assert.Nil(t, claims)
}
