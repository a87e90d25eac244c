// Package authz menyatukan dua mekanisme gating yang sama-sama masih dipakai:
// allow-list role statis (warisan) dan pengecekan ACL dinamis dari database
// (mekanisme kanonis untuk route baru).
package authz

import (
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
)

// Authorizer memutuskan boleh-tidaknya pemanggil melakukan (feature, action).
// Pemanggil tanpa identitas SELALU ditolak forbidden, tidak pernah lolos diam-diam.
type Authorizer interface {
	Allow(caller *model.UserClaims, feature, action string) error
}

// AclAuthorizer membaca grant (feature, action, userLevel) dari database pada
// setiap pengecekan. Tidak ada cache: revoke izin langsung berlaku.
type AclAuthorizer struct {
	repo repository.AclRepository
}

func NewAclAuthorizer(repo repository.AclRepository) *AclAuthorizer {
	return &AclAuthorizer{repo: repo}
}

func (a *AclAuthorizer) Allow(caller *model.UserClaims, feature, action string) error {
	if caller == nil {
		return service.Forbidden("Akses ditolak: identitas tidak ditemukan")
	}

	// Admin memegang matriks penuh; lewati round-trip database.
	if caller.Role == model.RoleAdmin {
		return nil
	}

	allowed, err := a.repo.IsAuthorized(caller.UserLevelID, feature, action)
	if err != nil {
		return service.Internal()
	}
	if !allowed {
		return service.Forbidden("Akses ditolak: Anda tidak memiliki izin " + action + " pada " + feature)
	}
	return nil
}

// RoleAuthorizer mengecek keanggotaan role pada allow-list statis tanpa akses
// database.
//
// Deprecated: jalur warisan untuk sebagian route lama. Route baru memakai
// AclAuthorizer; jangan menambah daftar role di sini.
type RoleAuthorizer struct {
	allowed map[model.Role]struct{}
}

func NewRoleAuthorizer(roles ...model.Role) *RoleAuthorizer {
	allowed := make(map[model.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return &RoleAuthorizer{allowed: allowed}
}

func (a *RoleAuthorizer) Allow(caller *model.UserClaims, feature, action string) error {
	if caller == nil {
		return service.Forbidden("Akses ditolak: identitas tidak ditemukan")
	}
	if _, ok := a.allowed[caller.Role]; !ok {
		return service.Forbidden("Akses ditolak: role Anda tidak diizinkan")
	}
	return nil
}
