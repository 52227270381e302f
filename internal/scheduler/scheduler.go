package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jsultonov/agrodale/internal/config"
	"github.com/jsultonov/agrodale/internal/service/simulation"
)

// Scheduler drives the periodic soil-moisture simulation ticks.
type Scheduler struct {
	cron      *cron.Cron
	simulator *simulation.Simulator
	cfg       config.SimulationConfig
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.SimulationConfig, simulator *simulation.Simulator, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:      cron.New(),
		simulator: simulator,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the moisture tick and starts the cron loop. The simulator
// keeps its own minimum-interval debounce, so an aggressive schedule is safe.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.TickSchedule))

	_, err := s.cron.AddFunc(s.cfg.TickSchedule, s.simulator.Tick)
	if err != nil {
		s.logger.Error("failed to schedule moisture tick", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}
