package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher re-derives date-dependent statuses and reports how many changed.
type Refresher interface {
	RefreshAll() int
}

// Scheduler runs the daily status refresh so invoices turn Overdue without
// waiting for a write.
type Scheduler struct {
	cron      *cron.Cron
	spec      string
	refresher Refresher
	onRefresh func(changed int)
	logger    *zap.Logger
}

// NewScheduler validates spec (standard 5-field cron) up front.
// onRefresh may be nil.
func NewScheduler(spec string, r Refresher, onRefresh func(int), logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("refresh schedule %q: %w", spec, err)
	}
	return &Scheduler{
		cron:      cron.New(),
		spec:      spec,
		refresher: r,
		onRefresh: onRefresh,
		logger:    logger,
	}, nil
}

func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("refresh", s.spec))
	if _, err := s.cron.AddFunc(s.spec, s.Refresh); err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// Refresh runs one refresh pass immediately.
func (s *Scheduler) Refresh() {
	n := s.refresher.RefreshAll()
	if s.onRefresh != nil {
		s.onRefresh(n)
	}
	s.logger.Info("status refresh finished", zap.Int("changed", n))
}
