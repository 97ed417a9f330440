// file: internals/features/school/reports/controller/report_controller.go
package controller

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "absensiku_backend/internals/databases"
	"absensiku_backend/internals/features/school/reports/service"
	helper "absensiku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// Ringkasan dihitung ulang paling cepat tiap 30 detik per kelas+rentang;
// dashboard admin polling lebih sering dari itu.
const summaryCacheTTL = 30 * time.Second

type summaryPayload struct {
	Kelas   string          `json:"kelas"`
	Range   string          `json:"range"`
	Start   time.Time       `json:"start"`
	End     time.Time       `json:"end"`
	Summary service.Summary `json:"summary"`
}

// GET /api/a/reports/summary?kelas=&range=
func (ctl *ReportController) GetSummary(c *fiber.Ctx) error {
	kelas := strings.TrimSpace(c.Query("kelas"))
	if kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter kelas wajib diisi")
	}
	rangeLabel := c.Query("range", service.RangeMonth)

	cacheKey := fmt.Sprintf("report:summary:%s:%s",
		helper.NormalizeKelas(kelas), strings.ToLower(strings.TrimSpace(rangeLabel)))
	if cached, ok := cacheGet(c.Context(), cacheKey); ok {
		var payload summaryPayload
		if err := sonic.Unmarshal(cached, &payload); err == nil {
			return helper.JsonOK(c, "Ringkasan kehadiran (cache)", payload)
		}
	}

	start, end := service.GetRangeBounds(rangeLabel, helper.NowJakarta())
	summary, err := service.BuildSummary(ctl.DB, kelas, start, end)
	if err != nil {
		log.Printf("[REPORT] gagal hitung ringkasan kelas=%s: %v", kelas, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ringkasan kehadiran")
	}

	payload := summaryPayload{Kelas: kelas, Range: rangeLabel, Start: start, End: end, Summary: summary}
	if raw, err := sonic.Marshal(payload); err == nil {
		cacheSet(c.Context(), cacheKey, raw)
	}
	return helper.JsonOK(c, "Ringkasan kehadiran berhasil dihitung", payload)
}

type reportCard struct {
	Class  string `json:"class"`
	Values [3]int `json:"values"` // hadir, izin, alpha
}

// GET /api/a/reports/cards?range=&kelas=a,b,c
// Kartu per kelas untuk halaman laporan. Tanpa parameter kelas, ambil
// tiga kelas pertama dari data siswa.
func (ctl *ReportController) GetCards(c *fiber.Ctx) error {
	rangeLabel := c.Query("range", service.RangeMonth)
	start, end := service.GetRangeBounds(rangeLabel, helper.NowJakarta())

	var classes []string
	if raw := strings.TrimSpace(c.Query("kelas")); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				classes = append(classes, k)
			}
		}
	} else {
		var err error
		classes, err = service.ListClasses(ctl.DB, 3)
		if err != nil {
			log.Printf("[REPORT] gagal ambil daftar kelas: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
		}
	}

	cards := make([]reportCard, 0, len(classes))
	for _, kelas := range classes {
		s, err := service.BuildSummary(ctl.DB, kelas, start, end)
		if err != nil {
			log.Printf("[REPORT] gagal hitung kartu kelas=%s: %v", kelas, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung laporan kelas")
		}
		cards = append(cards, reportCard{Class: kelas, Values: [3]int{s.Hadir, s.Izin, s.Alpha}})
	}
	return helper.JsonOK(c, "Kartu laporan berhasil dihitung", fiber.Map{
		"range": rangeLabel,
		"start": start,
		"end":   end,
		"cards": cards,
	})
}

// GET /api/a/reports/leaves?kelas=&from=&to=
func (ctl *ReportController) GetLeaves(c *fiber.Ctx) error {
	kelas := strings.TrimSpace(c.Query("kelas"))
	if kelas == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter kelas wajib diisi")
	}

	now := helper.NowJakarta()
	from, to := service.GetRangeBounds(service.RangeMonth, now)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, helper.JakartaLoc())
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal from harus YYYY-MM-DD")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, helper.JakartaLoc())
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal to harus YYYY-MM-DD")
		}
		to = parsed
	}

	rows, err := service.ListApprovedLeaves(ctl.DB, kelas, from, to)
	if err != nil {
		log.Printf("[REPORT] gagal ambil izin kelas=%s: %v", kelas, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data izin")
	}
	return helper.JsonOK(c, "Data izin berhasil diambil", rows)
}

// GET /api/a/reports/classes
func (ctl *ReportController) GetClasses(c *fiber.Ctx) error {
	classes, err := service.ListClasses(ctl.DB, 100)
	if err != nil {
		log.Printf("[REPORT] gagal ambil daftar kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}
	return helper.JsonOK(c, "Daftar kelas berhasil diambil", classes)
}

func cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if database.Redis == nil {
		return nil, false
	}
	raw, err := database.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

func cacheSet(ctx context.Context, key string, raw []byte) {
	if database.Redis == nil {
		return
	}
	if err := database.Redis.Set(ctx, key, raw, summaryCacheTTL).Err(); err != nil {
		log.Printf("[REPORT] gagal tulis cache %s: %v", key, err)
	}
}
