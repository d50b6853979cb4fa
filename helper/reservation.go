package helper

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"lalibela_manager/config"
	"lalibela_manager/constants"
	"lalibela_manager/database"
	"lalibela_manager/model"
)

var reservationJanitor *cron.Cron

// ExpireStaleReservations cancels Pending bookings that were never confirmed
// within the configured window. With auto-confirm on this is a no-op in
// practice, since guest bookings skip Pending.
func ExpireStaleReservations() {
	hours := config.ConfigInt("PENDING_EXPIRY_HOURS", 48)
	cutoff := time.Now().Add(-time.Duration(hours) * time.Hour)

	res := database.DB.Model(&model.Reservation{}).
		Where("status = ? AND created_at < ?", constants.STATUS_PENDING, cutoff).
		Update("status", constants.STATUS_CANCELLED)
	if res.Error != nil {
		log.Printf("[CRON] pending reservation sweep failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[CRON] cancelled %d stale pending reservation(s)", res.RowsAffected)
		FlushReservationCache()
	}
}

func StartReservationJanitor() {
	reservationJanitor = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reservationJanitor.AddFunc("*/30 * * * *", ExpireStaleReservations)
	if err != nil {
		log.Printf("Reservation janitor init failed: %v", err)
		return
	}

	reservationJanitor.Start()
	log.Println("Reservation janitor started (every 30 minutes)")
}

func StopReservationJanitor() {
	if reservationJanitor != nil {
		reservationJanitor.Stop()
	}
}
