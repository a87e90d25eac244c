package model

// UserClaims adalah identitas pemanggil hasil verifikasi token. Diteruskan
// eksplisit sebagai parameter ke service, bukan diambil dari state global.
type UserClaims struct {
	NoIdentitas string  `json:"no_identitas"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	UserLevelID string  `json:"userLevelId"`
	Role        Role    `json:"role"`
	UnitID      *string `json:"unitId,omitempty"`
}
