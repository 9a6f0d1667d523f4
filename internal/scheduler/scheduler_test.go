package scheduler

import (
	"context"
	"testing"
)

func TestScheduler_StartRegistersDailyJob(t *testing.T) {
	s := New()
	s.SetReportFunction(func(ctx context.Context) error { return nil })
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Stop()
	if !s.IsRunning() {
		t.Fatalf("daily job not registered")
	}
}

func TestScheduler_IdleWithoutReportFunc(t *testing.T) {
	s := New()
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer s.Stop()
	if s.IsRunning() {
		t.Fatalf("scheduler must stay idle without a report function")
	}
}
