package game

import "fmt"

// Command is a host-independent input.
type Command int

const (
	CmdNone Command = iota
	CmdLeft
	CmdRight
	CmdUp
	CmdDown
	CmdFire
	CmdToggleCamera

	// Debug only.
	CmdToggleCollisions
	CmdCycleBiome
	CmdKillPlayer
	CmdReportCounts
	CmdScrollUp
	CmdScrollDown
	CmdReset
)

var commandNames = map[Command]string{
	CmdNone:             "none",
	CmdLeft:             "left",
	CmdRight:            "right",
	CmdUp:               "up",
	CmdDown:             "down",
	CmdFire:             "fire",
	CmdToggleCamera:     "toggle_camera",
	CmdToggleCollisions: "toggle_collisions",
	CmdCycleBiome:       "cycle_biome",
	CmdKillPlayer:       "kill_player",
	CmdReportCounts:     "report_counts",
	CmdScrollUp:         "scroll_up",
	CmdScrollDown:       "scroll_down",
	CmdReset:            "reset",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Held reports whether the command is a held input rather than a one-shot.
func (c Command) Held() bool {
	return c >= CmdLeft && c <= CmdFire
}

var keyCommands = map[rune]Command{
	'a': CmdLeft,
	'd': CmdRight,
	'w': CmdUp,
	's': CmdDown,
	' ': CmdFire,
	'r': CmdToggleCamera,
	'c': CmdToggleCollisions,
	'g': CmdCycleBiome,
	'k': CmdKillPlayer,
	'p': CmdReportCounts,
	']': CmdScrollUp,
	'[': CmdScrollDown,
	';': CmdReset,
}

// KeyCommand maps a typed character to its command. Upper-case letters map as
// their lower-case form so shift and caps lock do not matter.
func KeyCommand(r rune) Command {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return keyCommands[r]
}
