package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"lalibela_manager/constants"
	"lalibela_manager/database"
	"lalibela_manager/model"
)

var marketingScheduler gocron.Scheduler

// PublishDueMarketingPosts flips scheduled posts whose publish time has
// passed to live.
func PublishDueMarketingPosts() {
	res := database.DB.Model(&model.MarketingPost{}).
		Where("status = ? AND publish_at IS NOT NULL AND publish_at <= ?",
			constants.MARKETING_SCHEDULED, time.Now()).
		Update("status", constants.MARKETING_LIVE)
	if res.Error != nil {
		log.Printf("[CRON] marketing publish sweep failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[CRON] %d marketing post(s) went live", res.RowsAffected)
	}
}

func StartMarketingScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	marketingScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(PublishDueMarketingPosts),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Marketing publish scheduler started (every minute)")
}

func StopMarketingScheduler() {
	if marketingScheduler != nil {
		_ = marketingScheduler.Shutdown()
	}
}
