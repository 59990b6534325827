package dungeon

import "github.com/vovakirdan/tui-dungeon/internal/core"

// inputLatch turns key presses into held actions. Terminals report key
// repeats but never releases, so an action stays held for hold ticks after
// its last press. Pressing a direction releases its opposite at once.
type inputLatch struct {
	hold      int
	remaining map[core.Action]int
}

func newInputLatch(hold int) *inputLatch {
	if hold < 1 {
		hold = 1
	}
	return &inputLatch{hold: hold, remaining: make(map[core.Action]int)}
}

var opposites = map[core.Action]core.Action{
	core.ActionMoveUp:     core.ActionMoveDown,
	core.ActionMoveDown:   core.ActionMoveUp,
	core.ActionMoveLeft:   core.ActionMoveRight,
	core.ActionMoveRight:  core.ActionMoveLeft,
	core.ActionShootUp:    core.ActionShootDown,
	core.ActionShootDown:  core.ActionShootUp,
	core.ActionShootLeft:  core.ActionShootRight,
	core.ActionShootRight: core.ActionShootLeft,
}

// Update records this tick's presses and returns the held gameplay actions
// in a fixed order.
func (l *inputLatch) Update(in core.InputFrame) []core.Action {
	for a := core.ActionMoveUp; a <= core.ActionShootRight; a++ {
		if in.Has(a) {
			l.remaining[a] = l.hold
			delete(l.remaining, opposites[a])
		}
	}

	var held []core.Action
	for a := core.ActionMoveUp; a <= core.ActionShootRight; a++ {
		if l.remaining[a] > 0 {
			held = append(held, a)
			l.remaining[a]--
		}
		if l.remaining[a] == 0 {
			delete(l.remaining, a)
		}
	}
	return held
}

// Release drops every held action.
func (l *inputLatch) Release() {
	clear(l.remaining)
}
