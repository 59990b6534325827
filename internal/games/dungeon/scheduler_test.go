package dungeon

import (
	"testing"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/games/dungeon/sim"
)

func TestSchedulerNeverFiresEarly(t *testing.T) {
	const dt = 1.0 / 60
	s := NewScheduler()
	s.Schedule([]sim.TimerRequest{{Event: sim.EvRapidFire, Delay: 0.4}})

	for tick := 1; tick <= 30; tick++ {
		fired := s.Advance(dt)
		if fired.Has(sim.EvRapidFire) {
			if s.Now() < 0.4-1e-9 {
				t.Fatalf("fired early at %v", s.Now())
			}
			if s.Now()-dt >= 0.4 {
				t.Fatalf("fired more than a tick late at %v", s.Now())
			}
			if s.Pending() != 0 {
				t.Errorf("Pending() = %d after firing", s.Pending())
			}
			return
		}
	}
	t.Fatal("timer never fired")
}

func TestSchedulerZeroDelayFiresNextTick(t *testing.T) {
	s := NewScheduler()
	s.Schedule([]sim.TimerRequest{{Event: sim.EvShootCool, Delay: 0}, {Event: sim.EvHurtCool, Delay: -1}})

	fired := s.Advance(0.01)
	if !fired.Has(sim.EvShootCool) || !fired.Has(sim.EvHurtCool) {
		t.Errorf("fired = %v, expected both timers", fired.Strings())
	}
}

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler()
	s.Schedule([]sim.TimerRequest{
		{Event: sim.EvRoomStart, Delay: 1},
		{Event: sim.EvShootCool, Delay: 0.2},
		{Event: sim.EvHurtCool, Delay: 0.25},
	})

	fired := s.Advance(0.22)
	if !fired.Has(sim.EvShootCool) || len(fired) != 1 {
		t.Errorf("first advance fired %v", fired.Strings())
	}
	fired = s.Advance(0.5)
	if !fired.Has(sim.EvHurtCool) || len(fired) != 1 {
		t.Errorf("second advance fired %v", fired.Strings())
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, expected the room start timer", s.Pending())
	}
}

func TestSchedulerIsRelativeToNow(t *testing.T) {
	s := NewScheduler()
	s.Advance(5)
	s.Schedule([]sim.TimerRequest{{Event: sim.EvRocketTick, Delay: 1}})

	if s.Advance(0.5).Has(sim.EvRocketTick) {
		t.Error("delay should count from the current clock")
	}
	if !s.Advance(0.5).Has(sim.EvRocketTick) {
		t.Error("timer should fire one second after it was scheduled")
	}
}

func TestInputLatchHoldsPresses(t *testing.T) {
	l := newInputLatch(3)
	press := core.NewInputFrame()
	press.Set(core.ActionMoveLeft)
	idle := core.NewInputFrame()

	ticks := 0
	for _, in := range []core.InputFrame{press, idle, idle, idle, idle} {
		held := l.Update(in)
		if len(held) == 1 && held[0] == core.ActionMoveLeft {
			ticks++
		}
	}
	if ticks != 3 {
		t.Errorf("action held for %d ticks, expected 3", ticks)
	}
}

func TestInputLatchReleasesOpposite(t *testing.T) {
	l := newInputLatch(10)
	in := core.NewInputFrame()
	in.Set(core.ActionMoveLeft)
	in.Set(core.ActionShootUp)
	l.Update(in)

	in = core.NewInputFrame()
	in.Set(core.ActionMoveRight)
	held := l.Update(in)

	want := []core.Action{core.ActionMoveRight, core.ActionShootUp}
	if len(held) != len(want) {
		t.Fatalf("held = %v, expected %v", held, want)
	}
	for i := range want {
		if held[i] != want[i] {
			t.Errorf("held[%d] = %s, expected %s", i, held[i], want[i])
		}
	}

	l.Release()
	if held := l.Update(core.NewInputFrame()); len(held) != 0 {
		t.Errorf("Release() left %v held", held)
	}
}

func TestInputLatchIgnoresMetaActions(t *testing.T) {
	l := newInputLatch(2)
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	in.Set(core.ActionQuit)
	if held := l.Update(in); len(held) != 0 {
		t.Errorf("meta actions should not be latched, got %v", held)
	}
}
