// file: internals/features/school/leave_requests/controller/approval_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/leave_requests/dto"
	"absensiku_backend/internals/features/school/leave_requests/model"
	"absensiku_backend/internals/features/school/leave_requests/service"
	siswaModel "absensiku_backend/internals/features/school/students/model"
	helper "absensiku_backend/internals/helpers"
)

type ApprovalController struct {
	DB *gorm.DB
}

func NewApprovalController(db *gorm.DB) *ApprovalController {
	return &ApprovalController{DB: db}
}

// GET /api/a/approvals?page=&per_page=&search=
// Pencarian "search" diartikan sebagai nama siswa dulu (resolve ke daftar
// NIS); kalau tidak ketemu baru cari langsung di alasan/keterangan/NIS.
func (ctl *ApprovalController) ListPending(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	q := ctl.DB.Model(&model.PengajuanModel{}).
		Where("pengajuan_status = ?", model.StatusPending)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"

		var nisList []string
		if err := ctl.DB.Model(&siswaModel.SiswaModel{}).
			Where("siswa_nama ILIKE ?", like).
			Pluck("siswa_nis", &nisList).Error; err != nil {
			log.Printf("[APPROVAL] gagal cari siswa %q: %v", search, err)
		}

		if len(nisList) > 0 {
			q = q.Where(
				"pengajuan_nis = ANY(?) OR pengajuan_alasan ILIKE ? OR pengajuan_keterangan ILIKE ?",
				pq.Array(nisList), like, like,
			)
		} else {
			q = q.Where(
				"pengajuan_alasan ILIKE ? OR pengajuan_keterangan ILIKE ? OR pengajuan_nis ILIKE ?",
				like, like, like,
			)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[APPROVAL] gagal hitung pengajuan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengajuan")
	}

	var rows []model.PengajuanModel
	if err := q.Order("pengajuan_tanggal_pengajuan DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[APPROVAL] gagal ambil pengajuan: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengajuan")
	}

	out := make([]dto.PengajuanResponse, 0, len(rows))
	for _, r := range rows {
		nama, kelas := ctl.lookupSiswa(r.PengajuanNIS)
		out = append(out, dto.ToPengajuanResponse(r, nama, kelas))
	}
	return helper.JsonList(c, "Data pengajuan berhasil diambil", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Identitas siswa untuk tampilan; NIS yang bukan siswa (mis. admin) tetap
// ditampilkan, tidak menggagalkan daftar.
func (ctl *ApprovalController) lookupSiswa(nis string) (nama, kelas string) {
	var s siswaModel.SiswaModel
	if err := ctl.DB.Select("siswa_nama", "siswa_kelas").
		Where("siswa_nis = ?", nis).First(&s).Error; err != nil {
		if nis == "admin" {
			return "Administrator", "Non-Siswa"
		}
		return "NIS: " + nis, "Non-Siswa"
	}
	return s.SiswaNama, s.SiswaKelas
}

// POST /api/a/approvals/:id/approve
func (ctl *ApprovalController) Approve(c *fiber.Ctx) error {
	return ctl.setStatus(c, model.StatusApproved)
}

// POST /api/a/approvals/:id/reject
func (ctl *ApprovalController) Reject(c *fiber.Ctx) error {
	return ctl.setStatus(c, model.StatusRejected)
}

// POST /api/a/approvals/:id/reset
func (ctl *ApprovalController) Reset(c *fiber.Ctx) error {
	return ctl.setStatus(c, model.StatusPending)
}

func (ctl *ApprovalController) setStatus(c *fiber.Ctx, status string) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengajuan tidak valid")
	}
	adminNIS, err := helper.GetNISFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var row model.PengajuanModel
	if err := ctl.DB.First(&row, "pengajuan_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan tidak ditemukan")
		}
		log.Printf("[APPROVAL] gagal cari pengajuan %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pengajuan")
	}

	updates := map[string]any{"pengajuan_status": status}
	if status == model.StatusPending {
		updates["pengajuan_tanggal_disetujui"] = nil
		updates["pengajuan_disetujui_oleh"] = nil
	} else {
		updates["pengajuan_tanggal_disetujui"] = helper.NowJakarta()
		updates["pengajuan_disetujui_oleh"] = adminNIS
	}
	if err := ctl.DB.Model(&row).Updates(updates).Error; err != nil {
		log.Printf("[APPROVAL] gagal ubah status %s → %s: %v", id, status, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pengajuan")
	}

	// Sinkronkan proyeksi report. Kalau transfer gagal, approval tetap
	// dianggap berhasil; barisnya bisa ditransfer ulang nanti.
	switch status {
	case model.StatusApproved:
		if err := service.TransferApprovedToReport(ctl.DB, row.PengajuanID); err != nil {
			log.Printf("[APPROVAL] transfer ke report gagal untuk %s: %v", id, err)
		}
	default:
		if err := service.RemoveFromReport(ctl.DB, row.PengajuanID); err != nil {
			log.Printf("[APPROVAL] hapus proyeksi report gagal untuk %s: %v", id, err)
		}
	}

	nama, kelas := ctl.lookupSiswa(row.PengajuanNIS)
	row.PengajuanStatus = status
	return helper.JsonUpdated(c, "Status pengajuan diperbarui", dto.ToPengajuanResponse(row, nama, kelas))
}
