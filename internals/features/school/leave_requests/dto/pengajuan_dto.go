// file: internals/features/school/leave_requests/dto/pengajuan_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"absensiku_backend/internals/features/school/leave_requests/model"
)

type SubmitPengajuanRequest struct {
	TanggalMulai   string `json:"tanggal_mulai" validate:"required,datetime=2006-01-02"`
	TanggalSelesai string `json:"tanggal_selesai" validate:"required,datetime=2006-01-02"`
	Alasan         string `json:"alasan" validate:"required,oneof=izin sakit"`
	Keterangan     string `json:"keterangan" validate:"max=1000"`
	FilePendukung  string `json:"file_pendukung" validate:"omitempty,url"`
}

// LampiranMeta disimpan apa adanya sebagai JSON di samping URL lampiran.
type LampiranMeta struct {
	NamaFile    string `json:"nama_file,omitempty"`
	Ukuran      int64  `json:"ukuran,omitempty"`
	ContentType string `json:"content_type,omitempty"`
}

type PengajuanResponse struct {
	PengajuanID      string         `json:"pengajuan_id"`
	NIS              string         `json:"nis"`
	Nama             string         `json:"nama,omitempty"`
	Kelas            string         `json:"kelas,omitempty"`
	TanggalMulai     string         `json:"tanggal_mulai"`
	TanggalSelesai   string         `json:"tanggal_selesai"`
	Alasan           string         `json:"alasan"`
	Keterangan       string         `json:"keterangan,omitempty"`
	FilePendukung    string         `json:"file_pendukung,omitempty"`
	LampiranMeta     datatypes.JSON `json:"lampiran_meta,omitempty"`
	Status           string         `json:"status"`
	TanggalPengajuan time.Time      `json:"tanggal_pengajuan"`
	DisetujuiOleh    *string        `json:"disetujui_oleh,omitempty"`
	TanggalDisetujui *time.Time     `json:"tanggal_disetujui,omitempty"`
}

func ToPengajuanResponse(m model.PengajuanModel, nama, kelas string) PengajuanResponse {
	return PengajuanResponse{
		PengajuanID:      m.PengajuanID.String(),
		NIS:              m.PengajuanNIS,
		Nama:             nama,
		Kelas:            kelas,
		TanggalMulai:     m.PengajuanTanggalMulai.Format("2006-01-02"),
		TanggalSelesai:   m.PengajuanTanggalSelesai.Format("2006-01-02"),
		Alasan:           m.PengajuanAlasan,
		Keterangan:       m.PengajuanKeterangan,
		FilePendukung:    m.PengajuanFilePendukung,
		LampiranMeta:     m.PengajuanLampiranMeta,
		Status:           m.PengajuanStatus,
		TanggalPengajuan: m.PengajuanTanggalPengajuan,
		DisetujuiOleh:    m.PengajuanDisetujuiOleh,
		TanggalDisetujui: m.PengajuanTanggalDisetujui,
	}
}
