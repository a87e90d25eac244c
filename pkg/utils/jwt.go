package utils

import (
	"errors"
	"time"

	"github.com/GhufranBkri/Sipema-backend/config"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token tidak valid atau kadaluwarsa")

type jwtClaims struct {
	NoIdentitas string  `json:"no_identitas"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	UserLevelID string  `json:"userLevelId"`
	Role        string  `json:"role"`
	UnitID      *string `json:"unitId,omitempty"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "rahasia_negara"))
}

// GenerateToken membuat JWT HS256 berisi identitas user.
func GenerateToken(user *model.User) (string, error) {
	expires := time.Duration(config.GetEnvAsInt("JWT_EXPIRES_HOURS", 24)) * time.Hour

	claims := jwtClaims{
		NoIdentitas: user.NoIdentitas,
		Name:        user.Name,
		Email:       user.Email,
		UserLevelID: user.UserLevelID,
		Role:        string(user.Role()),
		UnitID:      user.UnitID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.NoIdentitas,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expires)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken memverifikasi token dan mengembalikan klaim user.
// Role yang tidak dikenal di-parse fail-closed ke role paling rendah.
func ValidateToken(tokenString string) (*model.UserClaims, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &model.UserClaims{
		NoIdentitas: claims.NoIdentitas,
		Name:        claims.Name,
		Email:       claims.Email,
		UserLevelID: claims.UserLevelID,
		Role:        model.ParseRole(claims.Role),
		UnitID:      claims.UnitID,
	}, nil
}

// DecodeToken adalah varian longgar untuk endpoint yang membedakan pemanggil
// anonim dan terautentikasi tanpa menolak yang anonim: token kosong atau
// tidak valid menghasilkan (nil, nil), bukan error.
func DecodeToken(tokenString string) (*model.UserClaims, error) {
	if tokenString == "" {
		return nil, nil
	}
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return nil, nil
	}
	return claims, nil
}
