package compositor

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestRunExitsAndSignalsShutdown(t *testing.T) {
	v, _, _ := newTestViewport(Size{W: 800, H: 600})
	v.cfg.TickMillis = 1

	v.Inbound() <- ExitMsg{}

	shutdown := make(chan ShutdownSignal, 1)
	done := make(chan struct{})
	go func() {
		v.Run(shutdown)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Exit")
	}

	select {
	case <-shutdown:
	default:
		t.Error("Run did not signal shutdown after exiting")
	}
}

func TestRunCompositesWhenRecompositeIsSet(t *testing.T) {
	v, _, gpu := newTestViewport(Size{W: 800, H: 600})
	v.cfg.TickMillis = 1
	v.recomposite = true

	shutdown := make(chan ShutdownSignal, 1)
	done := make(chan struct{})
	go func() {
		v.Run(shutdown)
		close(done)
	}()

	// Give the loop a couple of ticks to composite, then stop it.
	time.Sleep(20 * time.Millisecond)
	v.Inbound() <- ExitMsg{}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Exit")
	}

	if gpu.renderCalls == 0 {
		t.Error("RenderScene never called despite recomposite being set")
	}
	if v.recomposite {
		t.Error("recomposite flag left set after a composite pass")
	}
}

func TestRunAdvancesScrollAnimEachTick(t *testing.T) {
	v, _, _ := newTestViewport(Size{W: 800, H: 600})
	v.cfg.TickMillis = 1
	v.pageSize = SizeF{W: 2000, H: 2000}
	v.worldZoom = 1.0

	v.AnimateScrollTo(50, 0, 0.01, ease.Linear)

	shutdown := make(chan ShutdownSignal, 1)
	done := make(chan struct{})
	go func() {
		v.Run(shutdown)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	v.Inbound() <- ExitMsg{}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Exit")
	}

	if v.worldOffset.X == 0 {
		t.Error("scroll animation never advanced world_offset across ticks")
	}
}
