package content

import (
	"fmt"
	"strings"
)

// Kind is the closed set of room variants.
type Kind int

const (
	// KindEmpty holds enemies and loose items.
	KindEmpty Kind = iota
	// KindGambling holds an NPC offering a game.
	KindGambling
	// KindLocked is sealed behind a passcode.
	KindLocked
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindGambling:
		return "gambling"
	case KindLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Enemy is one enemy standing in a room.
type Enemy struct {
	Def *EnemyDef
	HP  int
}

// Name returns the enemy's display name.
func (e Enemy) Name() string {
	return e.Def.Name
}

// NPC offers a gambling game.
type NPC struct {
	Name       string
	Game       string
	SkillLevel int
}

const (
	// PasscodeAttempts is how many guesses a locked room allows.
	PasscodeAttempts = 5
	// PasscodeDigits is the length of every passcode.
	PasscodeDigits = 4
)

// Lock seals a room until its passcode is guessed.
type Lock struct {
	code      string
	Remaining int
	Open      bool
}

// NewLock returns a shut lock on code with the full number of attempts.
func NewLock(code string) *Lock {
	return &Lock{code: code, Remaining: PasscodeAttempts}
}

// CodeLength returns the passcode length.
func (l *Lock) CodeLength() int {
	return len(l.code)
}

// Jammed reports whether the lock is shut with no attempts left.
func (l *Lock) Jammed() bool {
	return !l.Open && l.Remaining <= 0
}

// InPlace counts the positions where guess matches the passcode.
func (l *Lock) InPlace(guess string) int {
	n := 0
	for i := 0; i < len(guess) && i < len(l.code); i++ {
		if guess[i] == l.code[i] {
			n++
		}
	}
	return n
}

// Content is what one room holds. Only the fields of its Kind are set.
type Content struct {
	Kind    Kind
	Items   []string
	Enemies []Enemy
	NPC     *NPC
	Lock    *Lock
}

// Description summarises the room the way the exploration prompt shows it.
func (c *Content) Description() string {
	switch c.Kind {
	case KindGambling:
		if c.NPC == nil || c.NPC.Game == "" {
			return "Gambling Room with an unknown game"
		}
		return "Gambling Room containing a " + c.NPC.Name + " who wants to play " + c.NPC.Game
	case KindLocked:
		if c.Lock == nil || c.Lock.Open {
			return "Unlocked Room"
		}
		return fmt.Sprintf("Locked Room sealed by a %d-digit code", c.Lock.CodeLength())
	default:
		if len(c.Enemies) == 0 {
			return "Empty Room"
		}
		names := make([]string, len(c.Enemies))
		for i, e := range c.Enemies {
			names[i] = e.Name()
		}
		return "Empty Room containing " + strings.Join(names, ", ")
	}
}

// Sealed reports whether the room cannot be entered yet.
func (c *Content) Sealed() bool {
	return c.Kind == KindLocked && c.Lock != nil && !c.Lock.Open
}

// TakeItem removes and returns the i-th item.
func (c *Content) TakeItem(i int) (string, bool) {
	if i < 0 || i >= len(c.Items) {
		return "", false
	}
	item := c.Items[i]
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return item, true
}

// Unlock spends one attempt on guess and opens the lock when it matches.
// An open room, or one with no attempts left, ignores further guesses.
func (c *Content) Unlock(guess string) bool {
	if c.Lock == nil {
		return true
	}
	l := c.Lock
	if l.Open {
		return true
	}
	if l.Remaining <= 0 {
		return false
	}
	l.Remaining--
	if strings.TrimSpace(guess) == l.code {
		l.Open = true
	}
	return l.Open
}
