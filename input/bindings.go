package input

import "stardodge/game"

// Action is something the game understands; keys map onto actions.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionBoost
	ActionRestart
)

// Key is a device key identifier as reported by the client
// ("ArrowLeft", "w", " ", ...).
type Key string

// Bindings maps keys to actions. Registering a key again replaces its
// previous binding.
type Bindings struct {
	m map[Key]Action
}

func NewBindings() *Bindings {
	return &Bindings{m: make(map[Key]Action)}
}

// Defaults covers arrows, WASD, space for boost and r for restart.
func Defaults() *Bindings {
	b := NewBindings()
	b.Bind("ArrowLeft", ActionMoveLeft)
	b.Bind("ArrowRight", ActionMoveRight)
	b.Bind("ArrowUp", ActionMoveUp)
	b.Bind("ArrowDown", ActionMoveDown)
	b.Bind("a", ActionMoveLeft)
	b.Bind("d", ActionMoveRight)
	b.Bind("w", ActionMoveUp)
	b.Bind("s", ActionMoveDown)
	b.Bind(" ", ActionBoost)
	b.Bind("r", ActionRestart)
	return b
}

func (b *Bindings) Bind(k Key, a Action) {
	b.m[k] = a
}

func (b *Bindings) Action(k Key) Action {
	return b.m[k]
}

// Resolve folds the currently pressed keys into one input record.
// Opposing directions cancel out.
func (b *Bindings) Resolve(pressed []Key) game.Input {
	var in game.Input
	for _, k := range pressed {
		switch b.m[k] {
		case ActionMoveLeft:
			in.Ax -= 1
		case ActionMoveRight:
			in.Ax += 1
		case ActionMoveUp:
			in.Ay -= 1
		case ActionMoveDown:
			in.Ay += 1
		case ActionBoost:
			in.Boost = true
		case ActionRestart:
			in.Restart = true
		}
	}
	in.Ax = clamp1(in.Ax)
	in.Ay = clamp1(in.Ay)
	return in
}

func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
