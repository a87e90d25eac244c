package model

// Role adalah daftar tertutup user level yang dikenal sistem.
// Pengecekan otorisasi selalu lewat tipe ini, bukan perbandingan string lepas.
type Role string

const (
	RoleAdmin              Role = "ADMIN"
	RolePetugas            Role = "PETUGAS"
	RoleKepalaPetugasUnit  Role = "KEPALA_PETUGAS_UNIT"
	RolePimpinanUnit       Role = "PIMPINAN_UNIT"
	RolePetugasSuper       Role = "PETUGAS_SUPER"
	RolePetugasWBS         Role = "PETUGAS_WBS"
	RoleKepalaWBS          Role = "KEPALA_WBS"
	RoleDosen              Role = "DOSEN"
	RoleMahasiswa          Role = "MAHASISWA"
	RoleTenagaKependidikan Role = "TENAGA_KEPENDIDIKAN"
	RoleUser               Role = "USER"
)

// ParseRole memetakan string role dari payload token ke Role yang valid.
// Role yang tidak dikenal JATUH ke RoleUser (hak paling rendah), bukan error:
// payload rusak tidak boleh menghasilkan hak akses lebih tinggi.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RolePetugas, RoleKepalaPetugasUnit, RolePimpinanUnit,
		RolePetugasSuper, RolePetugasWBS, RoleKepalaWBS,
		RoleDosen, RoleMahasiswa, RoleTenagaKependidikan, RoleUser:
		return Role(s)
	default:
		return RoleUser
	}
}

// IsOfficer: role yang boleh mengubah status pengaduan umum.
func (r Role) IsOfficer() bool {
	switch r {
	case RolePetugas, RoleKepalaPetugasUnit, RolePimpinanUnit, RolePetugasSuper, RoleAdmin:
		return true
	}
	return false
}

// IsWBSOfficer: role yang menangani laporan WBS.
func (r Role) IsWBSOfficer() bool {
	return r == RolePetugasWBS || r == RoleKepalaWBS
}

// IsReporter: role pelapor internal (hanya melihat laporan miliknya sendiri).
func (r Role) IsReporter() bool {
	switch r {
	case RoleDosen, RoleMahasiswa, RoleTenagaKependidikan, RoleUser:
		return true
	}
	return false
}
