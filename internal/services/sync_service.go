package services

import (
	"MyStorage/internal/config"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// RefreshFunc re-reads server state. It receives a context that is
// cancelled when the scheduler stops.
type RefreshFunc func(ctx context.Context)

// SyncService calls a refresh function at start, on a fixed cadence and
// whenever the owning view becomes visible again. Runs may overlap.
type SyncService struct {
	configuration *config.Configuration
	logService    LogService
	clock         clock.Clock
	schedule      cron.Schedule
	mutex         sync.Mutex
	running       bool
	visible       bool
	ctx           context.Context
	cancel        context.CancelFunc
	refresh       RefreshFunc
	wake          chan struct{}
	done          chan struct{}
}

func NewSyncService(configuration *config.Configuration, logService LogService, clk clock.Clock) (*SyncService, error) {
	schedule, err := cron.ParseStandard(configuration.Sync.Schedule)
	if err != nil {
		return nil, fmt.Errorf("parse sync schedule %q: %w", configuration.Sync.Schedule, err)
	}
	return &SyncService{
		configuration: configuration,
		logService:    logService,
		clock:         clk,
		schedule:      schedule,
	}, nil
}

func (s *SyncService) Start(ctx context.Context, refresh RefreshFunc) error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		return errors.New("sync is already running")
	}
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.refresh = refresh
	s.running = true
	s.visible = true
	s.wake = make(chan struct{}, 1)
	s.done = make(chan struct{})
	var timer *clock.Timer
	if !s.configuration.Sync.Disabled {
		timer = s.arm()
	}
	runCtx, wake, done := s.ctx, s.wake, s.done
	s.mutex.Unlock()

	s.logService.Log.WithFields(logrus.Fields{
		"job":      "sync",
		"status":   "start",
		"schedule": s.configuration.Sync.Schedule,
		"disabled": s.configuration.Sync.Disabled,
	}).Debug("sync started")

	s.launch("start")
	go s.loop(runCtx, timer, wake, done)
	return nil
}

// Stop cancels the timer and any in-flight runs. Once it returns no new runs start.
func (s *SyncService) Stop() {
	s.mutex.Lock()
	if !s.running {
		s.mutex.Unlock()
		return
	}
	s.running = false
	s.cancel()
	done := s.done
	s.mutex.Unlock()

	<-done
	s.logService.Log.WithFields(logrus.Fields{
		"job":    "sync",
		"status": "stopped",
	}).Debug("sync stopped")
}

// SetVisible records visibility. Becoming visible again triggers a run.
func (s *SyncService) SetVisible(visible bool) {
	s.mutex.Lock()
	returned := s.running && visible && !s.visible
	s.visible = visible
	wake := s.wake
	s.mutex.Unlock()

	if !returned {
		return
	}
	select {
	case wake <- struct{}{}:
	default:
	}
}

func (s *SyncService) ForceSync() error {
	if !s.IsRunning() {
		return errors.New("sync is not running")
	}
	s.launch("forced")
	return nil
}

func (s *SyncService) IsRunning() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.running
}

func (s *SyncService) loop(ctx context.Context, timer *clock.Timer, wake <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		var tick <-chan time.Time
		if timer != nil {
			tick = timer.C
		}
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-tick:
			timer = s.arm()
			s.launch("schedule")
		case <-wake:
			s.launch("visible")
		}
	}
}

func (s *SyncService) arm() *clock.Timer {
	now := s.clock.Now()
	return s.clock.Timer(s.schedule.Next(now).Sub(now))
}

func (s *SyncService) launch(trigger string) {
	s.mutex.Lock()
	if !s.running {
		s.mutex.Unlock()
		return
	}
	go s.refresh(s.ctx)
	s.mutex.Unlock()

	s.logService.Log.WithFields(logrus.Fields{
		"job":     "sync",
		"trigger": trigger,
	}).Debug("sync run")
}
