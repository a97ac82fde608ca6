package database

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Monitor pings the pool on a cron schedule and remembers the last result.
type Monitor struct {
	db      *gorm.DB
	cron    *cron.Cron
	healthy atomic.Bool

	// Timeout bounds each ping; a ping that runs out counts as unhealthy.
	Timeout time.Duration
}

func NewMonitor(db *gorm.DB) *Monitor {
	m := &Monitor{
		db:      db,
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		Timeout: DefaultPingTimeout,
	}
	m.healthy.Store(true)
	return m
}

// Start schedules the ping with a cron expression such as "@every 1m".
func (m *Monitor) Start(schedule string) error {
	if _, err := m.cron.AddFunc(schedule, m.Check); err != nil {
		return err
	}
	m.cron.Start()
	log.Info().Str("schedule", schedule).Msg("⏱ DB monitor started")
	return nil
}

// Check pings once and logs transitions between healthy and unhealthy.
func (m *Monitor) Check() {
	ctx, cancel := context.WithTimeout(context.Background(), m.Timeout)
	defer cancel()
	err := Ping(ctx, m.db)
	was := m.healthy.Swap(err == nil)
	switch {
	case err != nil && was:
		log.Error().Err(err).Msg("database unreachable")
	case err == nil && !was:
		log.Info().Msg("database reachable again")
	}
}

func (m *Monitor) Healthy() bool {
	return m.healthy.Load()
}

func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
}
