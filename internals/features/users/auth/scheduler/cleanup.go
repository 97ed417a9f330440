// file: internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"absensiku_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler membersihkan token_blacklist dan refresh_tokens
// yang sudah kadaluarsa. Jalan tiap jam lewat cron.
func StartTokenCleanupScheduler(db *gorm.DB) *cron.Cron {
	ttlDays := 7
	if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			ttlDays = parsed
		}
	}

	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		log.Println("[CLEANUP] Menjalankan pembersihan token kadaluarsa...")
		deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

		res := db.Where("expired_at < ?", deleteBefore).Delete(&model.TokenBlacklist{})
		if res.Error != nil {
			log.Printf("[CLEANUP ERROR] token_blacklist: %v", res.Error)
		} else if res.RowsAffected > 0 {
			log.Printf("[CLEANUP] %d token blacklist dihapus", res.RowsAffected)
		}

		res = db.Where("expired_at < ?", time.Now()).Delete(&model.RefreshToken{})
		if res.Error != nil {
			log.Printf("[CLEANUP ERROR] refresh_tokens: %v", res.Error)
		} else if res.RowsAffected > 0 {
			log.Printf("[CLEANUP] %d refresh token dihapus", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] gagal daftar cron: %v", err)
		return c
	}
	c.Start()
	return c
}
