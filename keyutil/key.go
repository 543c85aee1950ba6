// Package keyutil turns ebiten's polled input into key events for the
// dodge controller.
package keyutil

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tsujio/game-dodge/dodge"
)

var (
	justPressedKeys      = make([]ebiten.Key, 0)
	justScreenTouchedIDs = make([]ebiten.TouchID, 0)
)

type trackedKey struct {
	keys []ebiten.Key
	key  dodge.Key
}

// Both shift keys drive the modifier; it is released only when neither is
// held.
var trackedKeys = []trackedKey{
	{keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}, key: dodge.KeyModifier},
	{keys: []ebiten.Key{ebiten.KeyArrowUp}, key: dodge.KeyUp},
	{keys: []ebiten.Key{ebiten.KeyArrowDown}, key: dodge.KeyDown},
	{keys: []ebiten.Key{ebiten.KeyArrowLeft}, key: dodge.KeyLeft},
	{keys: []ebiten.Key{ebiten.KeyArrowRight}, key: dodge.KeyRight},
}

type Event struct {
	Key  dodge.Key
	Down bool
}

// AppendEvents appends the key presses and releases since the previous
// tick. Mouse clicks and screen touches are reported as presses of
// dodge.KeyOther so that they work as "any key".
func AppendEvents(events []Event) []Event {
	justPressedKeys = inpututil.AppendJustPressedKeys(justPressedKeys[:0])
	for _, k := range justPressedKeys {
		events = append(events, Event{Key: translate(k), Down: true})
	}

	for _, t := range trackedKeys {
		if justReleased(t.keys) {
			events = append(events, Event{Key: t.key, Down: false})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, Event{Key: dodge.KeyOther, Down: true})
	}

	justScreenTouchedIDs = inpututil.AppendJustPressedTouchIDs(justScreenTouchedIDs[:0])
	for range justScreenTouchedIDs {
		events = append(events, Event{Key: dodge.KeyOther, Down: true})
	}

	return events
}

func translate(k ebiten.Key) dodge.Key {
	for _, t := range trackedKeys {
		for _, tk := range t.keys {
			if tk == k {
				return t.key
			}
		}
	}
	return dodge.KeyOther
}

func justReleased(keys []ebiten.Key) bool {
	released := false
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return false
		}
		if inpututil.IsKeyJustReleased(k) {
			released = true
		}
	}
	return released
}
