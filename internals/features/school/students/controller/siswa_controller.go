// file: internals/features/school/students/controller/siswa_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/students/dto"
	"absensiku_backend/internals/features/school/students/model"
	helper "absensiku_backend/internals/helpers"
)

type SiswaController struct {
	DB *gorm.DB
}

func NewSiswaController(db *gorm.DB) *SiswaController {
	return &SiswaController{DB: db}
}

// GET /api/a/students?page=&per_page=&kelas=&search=
func (ctl *SiswaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.SiswaModel{})
	if kelas := strings.TrimSpace(c.Query("kelas")); kelas != "" {
		q = q.Where("siswa_kelas = ANY(?)", pq.Array(helper.KelasVariants(kelas)))
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("siswa_nama ILIKE ? OR siswa_nis ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[SISWA] gagal hitung siswa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var rows []model.SiswaModel
	if err := q.Order("siswa_kelas ASC").Order("siswa_nama ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[SISWA] gagal ambil siswa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	return helper.JsonList(c, "Data siswa berhasil diambil", dto.ToSiswaResponses(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
