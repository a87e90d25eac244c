package database

import (
	"github.com/GhufranBkri/Sipema-backend/internal/model"
	"github.com/GhufranBkri/Sipema-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll mengisi data awal: user level, matriks izin ACL, kategori, dan akun
// contoh. Idempoten: data yang sudah ada tidak ditimpa.
func SeedAll(db *gorm.DB) {
	seedUserLevels(db)
	seedAcl(db)
	seedKategori(db)
	seedUsers(db)
	logrus.Info("Seeding selesai")
}

func seedUserLevels(db *gorm.DB) {
	levels := []string{
		string(model.RoleAdmin),
		string(model.RolePetugas),
		string(model.RoleKepalaPetugasUnit),
		string(model.RolePimpinanUnit),
		string(model.RolePetugasSuper),
		string(model.RolePetugasWBS),
		string(model.RoleKepalaWBS),
		string(model.RoleDosen),
		string(model.RoleMahasiswa),
		string(model.RoleTenagaKependidikan),
		string(model.RoleUser),
	}
	for _, name := range levels {
		level := model.UserLevel{Name: name}
		db.FirstOrCreate(&level, model.UserLevel{Name: name})
	}
	logrus.Info("User levels seeded")
}

// aclMatrix adalah matriks izin default per user level. Admin memegang matriks
// penuh; level pelapor hanya menyentuh fitur pengaduan miliknya.
var aclMatrix = map[string][]repository.FeaturePermission{
	string(model.RoleAdmin): {
		{Subject: "USER_MANAGEMENT", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "ACL", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "PENGADUAN", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "PENGADUAN_WBS", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "PENGADUAN_MASYARAKAT", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "UNIT", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "KATEGORI", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "KATEGORI_WBS", Actions: []string{"read", "create", "update", "delete"}},
	},
	string(model.RoleTenagaKependidikan): {
		{Subject: "PENGADUAN", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "PENGADUAN_WBS", Actions: []string{"read", "create", "update", "delete"}},
	},
	string(model.RoleMahasiswa): {
		{Subject: "PENGADUAN", Actions: []string{"read", "create", "update", "delete"}},
	},
	string(model.RoleDosen): {
		{Subject: "PENGADUAN", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "PENGADUAN_WBS", Actions: []string{"read", "create", "update", "delete"}},
	},
	string(model.RolePetugasSuper): {
		{Subject: "PENGADUAN", Actions: []string{"read", "update", "delete"}},
		{Subject: "PENGADUAN_WBS", Actions: []string{"read", "create", "update", "delete"}},
		{Subject: "PENGADUAN_MASYARAKAT", Actions: []string{"read", "update", "delete"}},
	},
	string(model.RolePetugasWBS): {
		{Subject: "PENGADUAN_WBS", Actions: []string{"read", "update", "delete"}},
	},
	string(model.RoleKepalaWBS): {
		{Subject: "PENGADUAN_WBS", Actions: []string{"read", "update", "delete"}},
		{Subject: "USER_MANAGEMENT", Actions: []string{"read"}},
	},
	string(model.RolePetugas): {
		{Subject: "PENGADUAN", Actions: []string{"read", "update"}},
	},
	string(model.RoleKepalaPetugasUnit): {
		{Subject: "PENGADUAN", Actions: []string{"read", "update", "delete"}},
	},
}

func seedAcl(db *gorm.DB) {
	aclRepo := repository.NewAclRepository(db)

	for levelName, perms := range aclMatrix {
		var level model.UserLevel
		if err := db.Where("name = ?", levelName).First(&level).Error; err != nil {
			logrus.WithField("level", levelName).Warn("User level tidak ditemukan, grant dilewati")
			continue
		}

		var existing int64
		db.Model(&model.Acl{}).Where("user_level_id = ?", level.ID).Count(&existing)
		if existing > 0 {
			continue
		}

		if err := aclRepo.SetPermissions(level.ID, perms); err != nil {
			logrus.WithError(err).WithField("level", levelName).Error("Gagal seed ACL")
		}
	}
	logrus.Info("ACL matrix seeded")
}

func seedKategori(db *gorm.DB) {
	umum := []string{
		"Akademik",
		"Fasilitas Kampus",
		"Administrasi dan Layanan",
		"Keamanan dan Ketertiban",
		"Etika dan Perilaku",
		"Keuangan dan Beasiswa",
		"Teknologi Informasi dan Sistem",
		"Pengajaran dan Pembelajaran",
		"Kemahasiswaan",
		"Kerjasama dan Hubungan Masyarakat",
		"Lainnya",
	}
	wbs := []string{
		"Korupsi atau Gratifikasi",
		"Penyalahgunaan Wewenang",
		"Pelanggaran Etika",
		"Pencurian atau Penipuan",
		"Pelanggaran Kesehatan dan Keselamatan Kerja (K3)",
		"Perlakuan Tidak Adil atau Diskriminasi",
		"Kerugian Keuangan",
		"Pelanggaran Terhadap Regulasi atau Hukum",
	}

	for _, nama := range umum {
		kategori := model.Kategori{Nama: nama, IsWBS: false}
		db.FirstOrCreate(&kategori, model.Kategori{Nama: nama})
	}
	for _, nama := range wbs {
		kategori := model.Kategori{Nama: nama, IsWBS: true}
		db.FirstOrCreate(&kategori, model.Kategori{Nama: nama})
	}
	logrus.Info("Kategori seeded")
}

type seedAccount struct {
	name         string
	noIdentitas  string
	email        string
	password     string
	programStudi string
	levelName    string
}

func seedUsers(db *gorm.DB) {
	accounts := []seedAccount{
		{"Admin", "1001", "admin@test.com", "admin123", "ADMIN", string(model.RoleAdmin)},
		{"Tenaga Kependidikan", "2001", "tendik@test.com", "tendik123", "Administrasi", string(model.RoleTenagaKependidikan)},
		{"Dosen", "2002", "dosen@test.com", "dosen123", "Informatika", string(model.RoleDosen)},
		{"Mahasiswa", "2003", "mahasiswa@test.com", "Mahasiswa123", "Informatika", string(model.RoleMahasiswa)},
		{"Petugas Super", "3001", "super@test.com", "super123", "SUPER", string(model.RolePetugasSuper)},
		{"Kepala Unit", "5001", "kepala@test.com", "kepala123", "KEPALA", string(model.RoleKepalaPetugasUnit)},
		{"Kepala WBS", "5002", "kepalaWBS@test.com", "kepala123", "KEPALA", string(model.RoleKepalaWBS)},
	}

	for _, acc := range accounts {
		createUserIfMissing(db, acc)
	}

	seedUnitTI(db)
}

func createUserIfMissing(db *gorm.DB, acc seedAccount) {
	var count int64
	db.Model(&model.User{}).Where("no_identitas = ?", acc.noIdentitas).Count(&count)
	if count > 0 {
		return
	}

	var level model.UserLevel
	if err := db.Where("name = ?", acc.levelName).First(&level).Error; err != nil {
		logrus.WithField("level", acc.levelName).Warn("User level tidak ditemukan, akun dilewati")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Gagal hash password seed")
		return
	}

	user := model.User{
		Name:         acc.name,
		NoIdentitas:  acc.noIdentitas,
		Email:        acc.email,
		Password:     string(hashed),
		ProgramStudi: acc.programStudi,
		UserLevelID:  level.ID,
	}
	if err := db.Create(&user).Error; err != nil {
		logrus.WithError(err).WithField("no_identitas", acc.noIdentitas).Error("Gagal membuat akun seed")
	}
}

// seedUnitTI membuat unit contoh lengkap dengan kepala dan satu petugas,
// supaya alur notifikasi dan scoping per unit langsung bisa dicoba.
func seedUnitTI(db *gorm.DB) {
	var count int64
	db.Model(&model.Unit{}).Where("nama_unit = ?", "Unit TI").Count(&count)
	if count > 0 {
		return
	}

	kepalaID := "5001"
	unit := model.Unit{NamaUnit: "Unit TI", JenisUnit: "TEKNIS", KepalaUnitID: &kepalaID}
	if err := db.Create(&unit).Error; err != nil {
		logrus.WithError(err).Error("Gagal membuat Unit TI")
		return
	}

	db.Model(&model.User{}).Where("no_identitas = ?", kepalaID).Update("unit_id", unit.ID)

	createUserIfMissing(db, seedAccount{
		name: "Petugas Unit TI", noIdentitas: "4001", email: "petugas@test.com",
		password: "petugas123", programStudi: "Teknik Informatika",
		levelName: string(model.RolePetugas),
	})
	db.Model(&model.User{}).Where("no_identitas = ?", "4001").Update("unit_id", unit.ID)

	var petugas model.User
	if err := db.Where("no_identitas = ?", "4001").First(&petugas).Error; err == nil {
		if err := db.Model(&unit).Association("Petugas").Append(&petugas); err != nil {
			logrus.WithError(err).Error("Gagal menautkan petugas ke Unit TI")
		}
	}
	logrus.Info("Unit TI seeded")
}
