package leaktest

import (
	"testing"
	"time"
)

func TestCheckNoGoroutineLeak_FinishedGoroutine(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go func() {
			time.Sleep(5 * time.Millisecond)
			close(done)
		}()
		<-done
	})
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	stop := make(chan struct{})
	defer close(stop)

	checker := NewGoroutineChecker(t)
	go func() { <-stop }()
	checker.Check(1)
}
