// file: internals/features/school/students/dto/siswa_dto.go
package dto

import "absensiku_backend/internals/features/school/students/model"

type SiswaResponse struct {
	SiswaID  string `json:"siswa_id"`
	NIS      string `json:"nis"`
	NISN     string `json:"nisn,omitempty"`
	Nama     string `json:"nama"`
	Kelas    string `json:"kelas"`
	IsActive bool   `json:"is_active"`
}

func ToSiswaResponse(m model.SiswaModel) SiswaResponse {
	return SiswaResponse{
		SiswaID:  m.SiswaID.String(),
		NIS:      m.SiswaNIS,
		NISN:     m.SiswaNISN,
		Nama:     m.SiswaNama,
		Kelas:    m.SiswaKelas,
		IsActive: m.SiswaIsActive,
	}
}

func ToSiswaResponses(rows []model.SiswaModel) []SiswaResponse {
	out := make([]SiswaResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToSiswaResponse(r))
	}
	return out
}
