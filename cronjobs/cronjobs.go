package cronjobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"go-suraksha/db"
	"go-suraksha/filter"
)

// InitCronJobs starts the background schedule. Currently one job: a
// periodic digest of pending community reports so operators can watch the
// moderation backlog from the logs.
func InitCronJobs(store db.Store) {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Pending report digest: every 30 minutes
	_, err := c.AddFunc("*/30 * * * *", func() {
		log.Println("CronJob: Pending Report Digest Running")
		logPendingReports(store)
	})
	if err != nil {
		log.Println("Error scheduling Pending Report Digest:", err)
	}

	c.Start()
}

func logPendingReports(store db.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reports, err := store.ListCommunityReports(ctx, "pending", "", filter.MaxLimit)
	if err != nil {
		log.Printf("Pending report digest failed: %v", err)
		return
	}

	if len(reports) >= filter.MaxLimit {
		log.Printf("Pending community reports: %d or more", filter.MaxLimit)
		return
	}
	log.Printf("Pending community reports: %d", len(reports))
}
