package classic

import (
	"io"

	"github.com/vovakirdan/term2048/internal/core"
)

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
)

// DecodeKey reads one key press and maps it to an action.
// Arrow keys arrive as ESC [ A..D (or ESC O A..D in application cursor
// mode). Unknown keys and unknown escape sequences yield ActionNone.
// The only error returned is the reader's.
func DecodeKey(r io.ByteReader) (core.Action, error) {
	b, err := r.ReadByte()
	if err != nil {
		return core.ActionNone, err
	}

	if b != keyEsc {
		return letterAction(b), nil
	}

	intro, err := r.ReadByte()
	if err != nil {
		return core.ActionNone, err
	}
	if intro != '[' && intro != 'O' {
		return core.ActionNone, nil
	}

	final, err := r.ReadByte()
	if err != nil {
		return core.ActionNone, err
	}
	switch final {
	case 'A':
		return core.ActionUp, nil
	case 'B':
		return core.ActionDown, nil
	case 'C':
		return core.ActionRight, nil
	case 'D':
		return core.ActionLeft, nil
	}
	return core.ActionNone, nil
}

func letterAction(b byte) core.Action {
	switch b {
	case 'w', 'W':
		return core.ActionUp
	case 's', 'S':
		return core.ActionDown
	case 'a', 'A':
		return core.ActionLeft
	case 'd', 'D':
		return core.ActionRight
	case 'r', 'R':
		return core.ActionRetry
	case 'q', 'Q', keyCtrlC:
		return core.ActionQuit
	case 'h', 'H', 'i', 'I':
		return core.ActionHelp
	}
	return core.ActionNone
}
