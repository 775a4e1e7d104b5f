package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// BillingScheduler runs the recurring-bill sweep on a cron schedule
type BillingScheduler struct {
	payroll *PayrollService
	cron    *cron.Cron
	spec    string
	log     *logrus.Logger
}

// NewBillingScheduler creates a scheduler that processes due bills on the
// given cron spec (typically once every morning)
func NewBillingScheduler(payroll *PayrollService, spec string, log *logrus.Logger) *BillingScheduler {
	return &BillingScheduler{
		payroll: payroll,
		cron:    cron.New(),
		spec:    spec,
		log:     log,
	}
}

// Start registers the sweep job and starts the cron loop
func (s *BillingScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.sweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.WithField("spec", s.spec).Info("billing scheduler started")
	return nil
}

// Stop stops the cron loop and waits for a running sweep to finish
func (s *BillingScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *BillingScheduler) sweep() {
	paid := s.payroll.ProcessDueBills(context.Background(), time.Now())
	if len(paid) > 0 {
		s.log.WithField("count", len(paid)).Info("processed due recurring bills")
	}
}
