// file: internals/features/school/attendance/controller/kehadiran_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/attendance/dto"
	"absensiku_backend/internals/features/school/attendance/model"
	"absensiku_backend/internals/features/school/attendance/service"
	siswaModel "absensiku_backend/internals/features/school/students/model"
	helper "absensiku_backend/internals/helpers"
)

type KehadiranController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewKehadiranController(db *gorm.DB) *KehadiranController {
	return &KehadiranController{DB: db, Validate: validator.New()}
}

// GET /api/a/attendance?page=&per_page=&search=&today=
// Daftar absensi untuk dashboard admin: terbaru dulu, pencarian lintas
// nama/NIS/kelas, opsional hanya hari ini.
func (ctl *KehadiranController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 12, 100)

	q := ctl.DB.Model(&model.KehadiranModel{})

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"kehadiran_nama ILIKE ? OR kehadiran_nis ILIKE ? OR kehadiran_kelas ILIKE ?",
			like, like, like,
		)
	}
	if c.QueryBool("today") {
		now := helper.NowJakarta()
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, helper.JakartaLoc())
		q = q.Where("kehadiran_waktu_absen >= ? AND kehadiran_waktu_absen < ?", start, start.AddDate(0, 0, 1))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ATTENDANCE] gagal hitung kehadiran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	var rows []model.KehadiranModel
	if err := q.Order("kehadiran_waktu_absen DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ATTENDANCE] gagal ambil kehadiran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	mapper := service.LoadStatusMapper(ctl.DB)
	out := make([]dto.KehadiranResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToKehadiranResponse(r, mapper.Normalize(r.KehadiranStatus)))
	}

	return helper.JsonList(c, "Data kehadiran berhasil diambil", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/u/attendance
// Siswa mencatat kehadiran sendiri; nama & kelas diambil dari data siswa,
// bukan dari input.
func (ctl *KehadiranController) CheckIn(c *fiber.Ctx) error {
	nis, err := helper.GetNISFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var req dto.CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Status wajib diisi")
	}

	var siswa siswaModel.SiswaModel
	if err := ctl.DB.Where("siswa_nis = ?", nis).First(&siswa).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data siswa tidak ditemukan")
		}
		log.Printf("[ATTENDANCE] gagal cari siswa %s: %v", nis, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat kehadiran")
	}

	row := model.KehadiranModel{
		KehadiranNIS:        siswa.SiswaNIS,
		KehadiranNama:       siswa.SiswaNama,
		KehadiranKelas:      siswa.SiswaKelas,
		KehadiranStatus:     strings.ToLower(strings.TrimSpace(req.Status)),
		KehadiranWaktuAbsen: helper.NowJakarta(),
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ATTENDANCE] gagal simpan kehadiran %s: %v", nis, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat kehadiran")
	}

	mapper := service.LoadStatusMapper(ctl.DB)
	return helper.JsonCreated(c, "Kehadiran berhasil dicatat",
		dto.ToKehadiranResponse(row, mapper.Normalize(row.KehadiranStatus)))
}
