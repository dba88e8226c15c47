package tomledit

import (
	"fmt"

	"github.com/signadot/toml-edit/ir"
	"github.com/signadot/toml-edit/keypath"
)

// Mode selects which mutation a command performs. Mode switches let one
// argument stream carry mixed operations: a switch token changes the mode
// for every command after it, until the next switch.
type Mode int

const (
	// ModeSetOrAdd is the initial mode (token "@").
	ModeSetOrAdd Mode = iota
	// ModeSet overwrites unconditionally (token "=").
	ModeSet
	// ModeAdd appends (token "+").
	ModeAdd
	// ModeRemove deletes keys; it is the only mode that takes no value
	// (token "-").
	ModeRemove
)

func (m Mode) String() string {
	switch m {
	case ModeSetOrAdd:
		return "@"
	case ModeSet:
		return "="
	case ModeAdd:
		return "+"
	case ModeRemove:
		return "-"
	}
	return "<unknown mode>"
}

// ParseMode maps a mode-switch token to its mode.
func ParseMode(tok string) (Mode, bool) {
	switch tok {
	case "@":
		return ModeSetOrAdd, true
	case "=":
		return ModeSet, true
	case "+":
		return ModeAdd, true
	case "-":
		return ModeRemove, true
	}
	return 0, false
}

// TakesValue reports whether commands in this mode consume a value token
// after the key.
func (m Mode) TakesValue() bool {
	return m != ModeRemove
}

// Command is one parsed mutation: a raw key, the mode to apply it in, and
// the raw value for value-taking modes. The key stays unparsed here so a
// malformed key surfaces as a per-command failure at Apply time rather
// than poisoning the whole batch.
type Command struct {
	Mode  Mode
	Key   string
	Value string
}

// MissingValueError reports a stream that ended with a key still waiting
// for its value.
type MissingValueError struct {
	Mode Mode
	Key  string
}

func (e *MissingValueError) Error() string {
	return "no more arguments"
}

// ParseCommands scans a token stream into commands. When the stream ends
// with a key whose value is missing, the commands parsed up to that point
// are returned together with a *MissingValueError: the caller applies
// them, reports, and stops there.
func ParseCommands(args []string) ([]Command, error) {
	var (
		cmds []Command
		mode Mode
	)
	i := 0
	for i < len(args) {
		tok := args[i]
		i++
		if m, ok := ParseMode(tok); ok {
			mode = m
			continue
		}
		cmd := Command{Mode: mode, Key: tok}
		if mode.TakesValue() {
			if i == len(args) {
				return cmds, &MissingValueError{Mode: mode, Key: tok}
			}
			cmd.Value = args[i]
			i++
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Apply runs one command against root.
func Apply(root *ir.Node, cmd Command) error {
	key, err := keypath.Parse(cmd.Key)
	if err != nil {
		return err
	}
	switch cmd.Mode {
	case ModeSet:
		return Set(root, key, cmd.Value)
	case ModeAdd:
		return Add(root, key, cmd.Value)
	case ModeRemove:
		return Delete(root, key)
	default:
		return SetOrAdd(root, key, cmd.Value)
	}
}

// ErrorMessage renders err the way the command stream reports failures,
// one form per mode.
func (m Mode) ErrorMessage(key, value string, err error) string {
	switch m {
	case ModeSet:
		return fmt.Sprintf("Cannot set %s to %s: %s", key, value, err)
	case ModeAdd:
		return fmt.Sprintf("Cannot append %s to %s: %s", value, key, err)
	case ModeRemove:
		return fmt.Sprintf("Cannot remove %s: %s", key, err)
	default:
		return fmt.Sprintf("Cannot set or append value %s for key %s: %s", value, key, err)
	}
}
