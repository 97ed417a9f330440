// file: internals/features/utils/uploads/controller/upload_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/oss"
)

type UploadController struct {
	OSS *oss.Service
}

// NewUploadController membuat controller upload; kalau kredensial OSS
// tidak diset, endpoint tetap terpasang tapi menolak dengan 503.
func NewUploadController() *UploadController {
	svc, err := oss.NewServiceFromEnv("lampiran")
	if err != nil {
		log.Printf("⚠️ OSS tidak dikonfigurasi: %v — upload lampiran dimatikan", err)
		return &UploadController{}
	}
	return &UploadController{OSS: svc}
}

// POST /api/u/uploads  (multipart field "file")
// Gambar dikonversi ke webp sebelum disimpan; hasilnya URL publik yang
// dipakai sebagai file_pendukung pengajuan izin.
func (ctl *UploadController) Upload(c *fiber.Ctx) error {
	if ctl.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Penyimpanan lampiran tidak tersedia")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File lampiran wajib diunggah di field 'file'")
	}

	nis, err := helper.GetNISFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	url, err := ctl.OSS.UploadAttachment(c.Context(), fh, nis)
	if err != nil {
		log.Printf("[UPLOAD] gagal unggah lampiran %s: %v", nis, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah lampiran")
	}

	return helper.JsonCreated(c, "Lampiran berhasil diunggah", fiber.Map{
		"url":          url,
		"nama_file":    fh.Filename,
		"ukuran":       fh.Size,
		"content_type": fh.Header.Get("Content-Type"),
	})
}
