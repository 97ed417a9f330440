// file: internals/features/school/attendance/dto/kehadiran_dto.go
package dto

import (
	"time"

	"absensiku_backend/internals/features/school/attendance/model"
)

type CheckInRequest struct {
	Status string `json:"status" validate:"required,max=30"`
}

type KehadiranResponse struct {
	KehadiranID string    `json:"kehadiran_id"`
	NIS         string    `json:"nis"`
	Nama        string    `json:"nama"`
	Kelas       string    `json:"kelas"`
	Status      string    `json:"status"`
	Kategori    string    `json:"kategori"` // hasil normalisasi
	WaktuAbsen  time.Time `json:"waktu_absen"`
}

func ToKehadiranResponse(m model.KehadiranModel, kategori string) KehadiranResponse {
	return KehadiranResponse{
		KehadiranID: m.KehadiranID.String(),
		NIS:         m.KehadiranNIS,
		Nama:        m.KehadiranNama,
		Kelas:       m.KehadiranKelas,
		Status:      m.KehadiranStatus,
		Kategori:    kategori,
		WaktuAbsen:  m.KehadiranWaktuAbsen,
	}
}
