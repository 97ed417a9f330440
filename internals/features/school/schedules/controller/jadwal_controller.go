// file: internals/features/school/schedules/controller/jadwal_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/school/schedules/dto"
	"absensiku_backend/internals/features/school/schedules/service"
	helper "absensiku_backend/internals/helpers"
)

type JadwalController struct {
	DB *gorm.DB
}

func NewJadwalController(db *gorm.DB) *JadwalController {
	return &JadwalController{DB: db}
}

// Kelas diambil dari query, jatuh ke kelas di token kalau kosong.
func (ctl *JadwalController) resolveKelas(c *fiber.Ctx) string {
	if kelas := c.Query("kelas"); kelas != "" {
		return kelas
	}
	return helper.GetKelasFromLocals(c)
}

// GET /api/u/schedules?kelas=&hari=
func (ctl *JadwalController) GetSchedules(c *fiber.Ctx) error {
	kelas := ctl.resolveKelas(c)
	rows, err := service.FetchJadwal(ctl.DB, kelas, c.Query("hari"))
	if err != nil {
		log.Printf("[JADWAL] gagal ambil jadwal kelas=%s: %v", kelas, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return helper.JsonOK(c, "Jadwal berhasil diambil", dto.ToJadwalResponses(rows))
}

// GET /api/u/schedules/realtime?kelas=
// Dipanggil berulang oleh halaman siswa; di akhir pekan irisan selalu kosong.
func (ctl *JadwalController) GetRealtime(c *fiber.Ctx) error {
	kelas := ctl.resolveKelas(c)

	now := helper.NowJakarta()
	day := int(now.Weekday()) // Minggu=0 .. Sabtu=6
	nowMin := now.Hour()*60 + now.Minute()

	resp := dto.RealtimeResponse{NowMin: nowMin}
	if day < 1 || day > 5 {
		return helper.JsonOK(c, "Di luar hari sekolah", resp)
	}
	resp.Hari = service.HariName(day)

	rows, err := service.FetchJadwal(ctl.DB, kelas, resp.Hari)
	if err != nil {
		log.Printf("[JADWAL] gagal ambil jadwal realtime kelas=%s: %v", kelas, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal hari ini")
	}

	slice := service.SelectRealtimeSlice(service.BuildEntries(rows), nowMin)
	resp.Previous = slice.Previous
	resp.Current = slice.Current
	resp.Next = slice.Next
	return helper.JsonOK(c, "Jadwal realtime berhasil diambil", resp)
}

// GET /api/u/schedules/week?kelas=
func (ctl *JadwalController) GetWeek(c *fiber.Ctx) error {
	kelas := ctl.resolveKelas(c)
	rows, err := service.FetchJadwal(ctl.DB, kelas, "")
	if err != nil {
		log.Printf("[JADWAL] gagal ambil jadwal mingguan kelas=%s: %v", kelas, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal mingguan")
	}
	return helper.JsonOK(c, "Jadwal mingguan berhasil diambil", service.TransformWeek(rows))
}

// GET /api/u/schedules/slots?hari=1..5
// Slot 45 menit hasil generate, dipakai UI saat keterangan jadwal tidak
// bisa diparse.
func (ctl *JadwalController) GetSlots(c *fiber.Ctx) error {
	day := service.NormalizeHari(c.Query("hari"))
	if day == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter hari harus Senin–Jumat atau 1–5")
	}
	return helper.JsonOK(c, "Slot pelajaran berhasil dibuat", fiber.Map{
		"hari":  service.HariName(day),
		"slots": service.GenerateDaySlots(day),
	})
}
