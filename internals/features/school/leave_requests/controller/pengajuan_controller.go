// file: internals/features/school/leave_requests/controller/pengajuan_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/leave_requests/dto"
	"absensiku_backend/internals/features/school/leave_requests/model"
	helper "absensiku_backend/internals/helpers"
)

type PengajuanController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPengajuanController(db *gorm.DB) *PengajuanController {
	return &PengajuanController{DB: db, Validate: validator.New()}
}

// POST /api/u/leave-requests
func (ctl *PengajuanController) Submit(c *fiber.Ctx) error {
	nis, err := helper.GetNISFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var req dto.SubmitPengajuanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"Data tidak lengkap. Pastikan semua field wajib telah diisi.")
	}

	mulai, _ := time.Parse("2006-01-02", req.TanggalMulai)
	selesai, _ := time.Parse("2006-01-02", req.TanggalSelesai)
	if selesai.Before(mulai) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal selesai harus setelah tanggal mulai")
	}

	row := model.PengajuanModel{
		PengajuanNIS:            nis,
		PengajuanTanggalMulai:   mulai,
		PengajuanTanggalSelesai: selesai,
		PengajuanAlasan:         req.Alasan,
		PengajuanKeterangan:     req.Keterangan,
		PengajuanFilePendukung:  req.FilePendukung,
		PengajuanStatus:         model.StatusPending,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[IZIN] gagal simpan pengajuan %s: %v", nis, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan saat mengirim pengajuan")
	}
	return helper.JsonCreated(c, "Pengajuan berhasil dikirim", dto.ToPengajuanResponse(row, "", ""))
}

// GET /api/u/leave-requests
// Riwayat pengajuan milik siswa yang login, terbaru dulu.
func (ctl *PengajuanController) MyHistory(c *fiber.Ctx) error {
	nis, err := helper.GetNISFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var rows []model.PengajuanModel
	if err := ctl.DB.Where("pengajuan_nis = ?", nis).
		Order("pengajuan_tanggal_pengajuan DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[IZIN] gagal ambil riwayat %s: %v", nis, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan saat mengambil data pengajuan")
	}

	out := make([]dto.PengajuanResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToPengajuanResponse(r, "", ""))
	}
	return helper.JsonOK(c, "Riwayat pengajuan berhasil diambil", out)
}
