package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"shooter/internal/game"
)

// keyCommand maps a physical key to a game command. Letters go through the
// same table as the terminal host; arrows double as movement.
func keyCommand(k glfw.Key) game.Command {
	if k >= glfw.KeyA && k <= glfw.KeyZ {
		return game.KeyCommand(rune('a' + int(k-glfw.KeyA)))
	}
	switch k {
	case glfw.KeySpace:
		return game.KeyCommand(' ')
	case glfw.KeyLeftBracket:
		return game.KeyCommand('[')
	case glfw.KeyRightBracket:
		return game.KeyCommand(']')
	case glfw.KeySemicolon:
		return game.KeyCommand(';')
	case glfw.KeyLeft:
		return game.CmdLeft
	case glfw.KeyRight:
		return game.CmdRight
	case glfw.KeyUp:
		return game.CmdUp
	case glfw.KeyDown:
		return game.CmdDown
	}
	return game.CmdNone
}

var boundKeys = func() []glfw.Key {
	keys := []glfw.Key{
		glfw.KeySpace, glfw.KeyLeftBracket, glfw.KeyRightBracket, glfw.KeySemicolon,
		glfw.KeyLeft, glfw.KeyRight, glfw.KeyUp, glfw.KeyDown,
	}
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		if keyCommand(k) != game.CmdNone {
			keys = append(keys, k)
		}
	}
	return keys
}()

// Input turns polled key state into press and release edges.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

// edge records the new state of k and reports whether it just went down or up.
func (in *Input) edge(k glfw.Key, down bool) (pressed, released bool) {
	was := in.prevKeys[k]
	in.prevKeys[k] = down
	return down && !was, !down && was
}

// Poll forwards every key edge since the last call to g.
func (in *Input) Poll(window *glfw.Window, g *game.Game) {
	for _, k := range boundKeys {
		pressed, released := in.edge(k, window.GetKey(k) == glfw.Press)
		switch {
		case pressed:
			g.Press(keyCommand(k))
		case released:
			g.Release(keyCommand(k))
		}
	}
}
