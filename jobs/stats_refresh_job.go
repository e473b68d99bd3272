// File: /jobs/stats_refresh_job.go
package jobs

import (
	"fmt"
	"time"

	"eventdesk-api/services"

	"gorm.io/gorm"
)

// StatsRefreshJob periodically recomputes the cached dashboard stats so they
// stay close to current even between dashboard loads.
type StatsRefreshJob struct {
	db           *gorm.DB
	statsService *services.StatsService
	ticker       *time.Ticker
	done         chan bool
}

// NewStatsRefreshJob creates a new stats refresh job
func NewStatsRefreshJob(db *gorm.DB, interval time.Duration) *StatsRefreshJob {
	return &StatsRefreshJob{
		db:           db,
		statsService: services.NewStatsService(db),
		ticker:       time.NewTicker(interval),
		done:         make(chan bool),
	}
}

// Start begins the refresh job
func (j *StatsRefreshJob) Start() {
	fmt.Println("Stats refresh job started")

	go func() {
		// Run immediately on start
		j.refresh()

		for {
			select {
			case <-j.ticker.C:
				j.refresh()
			case <-j.done:
				fmt.Println("Stats refresh job stopped")
				return
			}
		}
	}()
}

// Stop stops the refresh job
func (j *StatsRefreshJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *StatsRefreshJob) refresh() {
	if _, err := j.statsService.Refresh(); err != nil {
		fmt.Printf("Error during stats refresh: %v\n", err)
	}
}
