package authz

import (
	"testing"

	"github.com/GhufranBkri/Sipema-backend/config"
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/GhufranBkri/Sipema-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (repository.AclRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	return repository.NewAclRepository(db), db
}

func claims(role model.Role, levelID string) *model.UserClaims {
	return &model.UserClaims{NoIdentitas: "0001", UserLevelID: levelID, Role: role}
}

func TestAclAuthorizerDefaultDeny(t *testing.T) {
	repo, _ := newTestRepo(t)
	authorizer := NewAclAuthorizer(repo)

	err := authorizer.Allow(claims(model.RolePetugas, "level-1"), "PENGADUAN", "read")
	require.Error(t, err)
	svcErr, ok := err.(*service.Error)
	require.True(t, ok)
	assert.Equal(t, service.KindForbidden, svcErr.Kind)
}

func TestAclAuthorizerGrantedAction(t *testing.T) {
	repo, _ := newTestRepo(t)
	authorizer := NewAclAuthorizer(repo)

	require.NoError(t, repo.SetPermissions("level-1", []repository.FeaturePermission{
		{Subject: "PENGADUAN", Actions: []string{"read"}},
	}))

	assert.NoError(t, authorizer.Allow(claims(model.RolePetugas, "level-1"), "PENGADUAN", "read"))
	// Action lain pada feature yang sama tetap ditolak.
	assert.Error(t, authorizer.Allow(claims(model.RolePetugas, "level-1"), "PENGADUAN", "delete"))
	// Level lain tidak mewarisi grant.
	assert.Error(t, authorizer.Allow(claims(model.RolePetugas, "level-2"), "PENGADUAN", "read"))
}

func TestAclAuthorizerAdminBypass(t *testing.T) {
	repo, _ := newTestRepo(t)
	authorizer := NewAclAuthorizer(repo)

	assert.NoError(t, authorizer.Allow(claims(model.RoleAdmin, "level-x"), "APA_SAJA", "delete"))
}

func TestAuthorizersRejectNilCaller(t *testing.T) {
	repo, _ := newTestRepo(t)

	assert.Error(t, NewAclAuthorizer(repo).Allow(nil, "PENGADUAN", "read"))
	assert.Error(t, NewRoleAuthorizer(model.RoleAdmin).Allow(nil, "", ""))
}

func TestRoleAuthorizerMembership(t *testing.T) {
	authorizer := NewRoleAuthorizer(model.RolePetugas, model.RolePetugasSuper)

	assert.NoError(t, authorizer.Allow(claims(model.RolePetugas, ""), "", ""))
	assert.NoError(t, authorizer.Allow(claims(model.RolePetugasSuper, ""), "", ""))
	assert.Error(t, authorizer.Allow(claims(model.RoleMahasiswa, ""), "", ""))
}
