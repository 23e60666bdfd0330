package pomodoro_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sprachlog/sprachlog/internal/app/pomodoro"
	"github.com/sprachlog/sprachlog/internal/domain"
)

func TestTimer_Lifecycle(t *testing.T) {
	timer := pomodoro.New(25 * time.Minute)
	if timer.State() != pomodoro.StateIdle {
		t.Fatalf("new timer should be idle, got %s", timer.State())
	}

	if err := timer.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if timer.State() != pomodoro.StateRunning {
		t.Fatalf("expected running, got %s", timer.State())
	}

	if done := timer.Tick(10 * time.Minute); done {
		t.Error("session must not complete at 10 of 25 minutes")
	}
	if timer.Remaining() != 15*time.Minute {
		t.Errorf("expected 15min remaining, got %s", timer.Remaining())
	}

	if done := timer.Tick(15 * time.Minute); !done {
		t.Error("session should complete exactly at zero")
	}
	if timer.State() != pomodoro.StateCompleted {
		t.Errorf("expected completed, got %s", timer.State())
	}
	if timer.FinalizedMinutes() != 25 {
		t.Errorf("expected 25 finalized minutes, got %d", timer.FinalizedMinutes())
	}
}

func TestTimer_PauseResume(t *testing.T) {
	timer := pomodoro.New(25 * time.Minute)
	_ = timer.Start()
	_ = timer.Tick(5 * time.Minute)

	if err := timer.Pause(); err != nil {
		t.Fatalf("pause: %v", err)
	}

	// Ticks while paused are ignored.
	timer.Tick(time.Hour)
	if timer.Remaining() != 20*time.Minute {
		t.Errorf("paused timer drifted to %s", timer.Remaining())
	}

	if err := timer.Resume(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if timer.State() != pomodoro.StateRunning {
		t.Errorf("expected running after resume, got %s", timer.State())
	}
}

func TestTimer_InvalidTransitions(t *testing.T) {
	timer := pomodoro.New(25 * time.Minute)

	if err := timer.Pause(); !errors.Is(err, domain.ErrTimerNotRunning) {
		t.Errorf("pause idle: expected ErrTimerNotRunning, got %v", err)
	}
	if err := timer.Resume(); !errors.Is(err, domain.ErrTimerNotPaused) {
		t.Errorf("resume idle: expected ErrTimerNotPaused, got %v", err)
	}

	_ = timer.Start()
	if err := timer.Start(); !errors.Is(err, domain.ErrTimerAlreadyRunning) {
		t.Errorf("double start: expected ErrTimerAlreadyRunning, got %v", err)
	}

	_ = timer.Pause()
	if err := timer.Start(); !errors.Is(err, domain.ErrTimerAlreadyRunning) {
		t.Errorf("start while paused: expected ErrTimerAlreadyRunning, got %v", err)
	}
}

func TestTimer_AbortFinalizesNothing(t *testing.T) {
	timer := pomodoro.New(25 * time.Minute)
	_ = timer.Start()
	_ = timer.Tick(24 * time.Minute)

	timer.Abort()
	if timer.State() != pomodoro.StateIdle {
		t.Errorf("expected idle after abort, got %s", timer.State())
	}
	if timer.FinalizedMinutes() != 0 {
		t.Errorf("aborted session must finalize 0 minutes, got %d", timer.FinalizedMinutes())
	}
	if timer.Remaining() != 25*time.Minute {
		t.Errorf("abort should reset remaining, got %s", timer.Remaining())
	}
}

func TestTimer_RestartAfterCompletion(t *testing.T) {
	timer := pomodoro.New(time.Minute)
	_ = timer.Start()
	timer.Tick(time.Minute)

	if err := timer.Start(); err != nil {
		t.Fatalf("restart after completion: %v", err)
	}
	if timer.State() != pomodoro.StateRunning || timer.Remaining() != time.Minute {
		t.Errorf("restart did not reset: %s %s", timer.State(), timer.Remaining())
	}
}

func TestTimer_DefaultSession(t *testing.T) {
	timer := pomodoro.New(0)
	if timer.Session() != pomodoro.DefaultSession {
		t.Errorf("expected default session, got %s", timer.Session())
	}
}
