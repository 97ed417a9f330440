// file: internals/features/school/schedules/dto/jadwal_dto.go
package dto

import (
	"absensiku_backend/internals/features/school/schedules/model"
	"absensiku_backend/internals/features/school/schedules/service"
)

type JadwalResponse struct {
	JadwalID   string `json:"jadwal_id"`
	Kelas      string `json:"kelas"`
	Hari       string `json:"hari"`
	Mapel      string `json:"mapel"`
	Guru       string `json:"guru"`
	BanyakJam  int    `json:"banyak_jam"`
	Keterangan string `json:"keterangan"`
	TimeLabel  string `json:"time_label"`
}

func ToJadwalResponse(m model.JadwalModel) JadwalResponse {
	tr, _, _ := service.ParseTimeRange(m.JadwalKeterangan)
	return JadwalResponse{
		JadwalID:   m.JadwalID.String(),
		Kelas:      m.JadwalKelas,
		Hari:       m.JadwalHari,
		Mapel:      m.JadwalMapel,
		Guru:       m.JadwalGuru,
		BanyakJam:  m.JadwalBanyakJam,
		Keterangan: m.JadwalKeterangan,
		TimeLabel:  tr.Label,
	}
}

func ToJadwalResponses(rows []model.JadwalModel) []JadwalResponse {
	out := make([]JadwalResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToJadwalResponse(r))
	}
	return out
}

// RealtimeResponse dikonsumsi halaman siswa yang polling tiap 60 detik.
type RealtimeResponse struct {
	Hari     string                 `json:"hari"`
	NowMin   int                    `json:"now_min"`
	Previous *service.ScheduleEntry `json:"previous"`
	Current  *service.ScheduleEntry `json:"current"`
	Next     *service.ScheduleEntry `json:"next"`
}
