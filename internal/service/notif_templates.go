package service

import "fmt"

// Template notifikasi terpusat supaya teks seragam di semua pemicu.

func newReportTemplate(namaUnit, judul string) (title, message string) {
	title = fmt.Sprintf("📋 Laporan Baru: %s", namaUnit)
	message = fmt.Sprintf("Pengaduan baru telah masuk di unit Anda dengan judul %s. Mohon segera ditinjau.", judul)
	return
}

func newWBSTemplate(judul string) (title, message string) {
	title = "🔒 Laporan WBS Baru"
	message = fmt.Sprintf("Pengaduan Whistle Blowing System baru telah masuk dengan judul %s. Mohon segera ditinjau.", judul)
	return
}

// inProcessTemplate menimpa teks notifikasi NEW_REPORT lama saat laporan mulai
// diproses, menyebut petugas yang menanganinya.
func inProcessTemplate(judul, petugas string) (title, message string) {
	title = "🔄 Laporan Sedang Diproses"
	message = fmt.Sprintf("Pengaduan dengan judul %s sedang ditangani oleh %s.", judul, petugas)
	return
}

func statusUpdateTemplate(judul, status string) (title, message string) {
	title = "🔄 Status Diperbarui"
	message = fmt.Sprintf("Pengaduan Anda dengan judul %s telah diperbarui ke status: %s", judul, status)
	return
}

func resolvedTemplate(judul, namaUnit string) (title, message string) {
	title = "✅ Pengaduan Selesai"
	message = fmt.Sprintf("Pengaduan dengan judul %s di unit %s telah diselesaikan", judul, namaUnit)
	return
}

func reminderTemplate(reportID, judul string) (title, message string) {
	title = "⚠️ Peringatan: Laporan Tertunda"
	message = fmt.Sprintf("Laporan dengan ID %s dan judul \"%s\" belum diproses. Mohon segera ditindaklanjuti.", reportID, judul)
	return
}
