package logging

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/sunseekerapp/sunseeker-backend/internal/models"
)

// system_logs rows past this age are pruned.
const logRetention = 30 * 24 * time.Hour

// StartCleanup prunes old system_logs once a day until done is closed.
func StartCleanup(db *gorm.DB, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			pruneLogs(db)
		}
	}()
}

func pruneLogs(db *gorm.DB) {
	cutoff := time.Now().Add(-logRetention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	switch {
	case result.Error != nil:
		slog.Error("log retention prune failed", "error", result.Error)
	case result.RowsAffected > 0:
		slog.Info("pruned old system logs", "deleted", result.RowsAffected)
	}
}
