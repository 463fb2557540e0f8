package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/phinics77/back-tracking/internal/collector"
	"github.com/phinics77/back-tracking/internal/notifier"
	"github.com/phinics77/back-tracking/internal/recorder"
	"github.com/phinics77/back-tracking/internal/render"
)

// Scheduler re-runs the evaluation on a cron schedule, recording and
// optionally pushing each report.
type Scheduler struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Investment float64
	Notifier   *notifier.TelegramNotifier
	Recorder   recorder.Recorder
}

// NewScheduler creates a new Scheduler. Notifier may be nil.
func NewScheduler(col *collector.Collector, investment float64, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Investment: investment,
		Notifier:   tn,
		Recorder:   rec,
	}
}

// Register installs the watch task.
func (s *Scheduler) Register(watchCron string) error {
	_, err := s.Cron.AddFunc(watchCron, s.RunOnce)
	return err
}

// Start begins cron scheduling.
func (s *Scheduler) Start() { s.Cron.Start() }

// Stop stops cron scheduling.
func (s *Scheduler) Stop() { s.Cron.Stop() }

// RunOnce performs one fetch-evaluate-record-notify cycle. Failures are
// logged and swallowed so the schedule keeps running.
func (s *Scheduler) RunOnce() {
	rep, err := s.Collector.Collect(s.Investment, time.Now())
	if err != nil {
		log.Printf("[WARN] watch run failed for %s: %v", s.Collector.Symbol, err)
		return
	}
	log.Printf("[INFO] %s evaluated: price %.2f, %d periods resolved",
		rep.Symbol, rep.CurrentPrice, len(rep.Results))

	if err := s.Recorder.RecordRun(rep); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}
	if s.Notifier != nil {
		if err := s.Notifier.Send(render.FormatReport(rep)); err != nil {
			log.Printf("[WARN] telegram notify: %v", err)
		}
	}
}
