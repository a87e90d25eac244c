package repository

import "gorm.io/gorm"

// Paginate adalah scope GORM untuk limit/offset. Default 10 baris per halaman.
func Paginate(page, rows int) func(*gorm.DB) *gorm.DB {
	if page < 1 {
		page = 1
	}
	if rows < 1 {
		rows = 10
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * rows).Limit(rows)
	}
}

// TotalPage menghitung jumlah halaman dari total baris.
func TotalPage(total int64, rows int) int {
	if rows < 1 {
		rows = 10
	}
	pages := int(total) / rows
	if int(total)%rows != 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}
