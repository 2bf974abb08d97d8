//go:build !headless

// keymap.go - host keysym to logical key id table for the ebiten backend.

/*
keymap.go - Host Keymap

Stable mapping from ebiten key constants to the logical key ids defined in
keyboard.go. The table reproduces sdl_to_ti_kbd's host-keysym-to-matrix-cell
assignment exactly (arrow keys, modifier row, digits, letters, punctuation
and function keys each land on the same r*8+c cell the real keyboard wires
them to) rather than an ad-hoc ordering - the matrix cell a key lands on is
what the guest firmware's row/column scan actually observes.

Keys with no natural host equivalent (hand, tan/cos/sin, ln, the caret key,
mode, negate) are intentionally absent - they are unreachable from the
keyboard backend, matching the hardware's own set of dead matrix cells.
*/

package main

import "github.com/hajimehoshi/ebiten/v2"

var hostKeymap = map[ebiten.Key]int{
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowRight: KeyRight,
	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowLeft:  KeyLeft,

	ebiten.KeyShiftLeft:   KeyShift,
	ebiten.KeyShiftRight:  KeyShift,
	ebiten.KeyAltLeft:     KeyDiamond,
	ebiten.KeyAltRight:    KeyDiamond,
	ebiten.KeyControlLeft: Key2nd,
	ebiten.KeyControlRight: Key2nd,

	ebiten.Key3:  Key3,
	ebiten.Key2:  Key2,
	ebiten.Key1:  Key1,
	ebiten.KeyF8: KeyF8,
	ebiten.KeyW:  KeyW,
	ebiten.KeyS:  KeyS,
	ebiten.KeyZ:  KeyZ,

	ebiten.Key6:  Key6,
	ebiten.Key5:  Key5,
	ebiten.Key4:  Key4,
	ebiten.KeyF3: KeyF3,
	ebiten.KeyE:  KeyE,
	ebiten.KeyD:  KeyD,
	ebiten.KeyX:  KeyX,

	ebiten.Key9:         Key9,
	ebiten.Key8:         Key8,
	ebiten.Key7:         Key7,
	ebiten.KeyF7:        KeyF7,
	ebiten.KeyR:         KeyR,
	ebiten.KeyF:         KeyFKey,
	ebiten.KeyC:         KeyC,
	ebiten.KeyBackslash: KeyStore,

	ebiten.KeyComma:        KeyComma,
	ebiten.KeyBracketRight: KeyRParen,
	ebiten.KeyBracketLeft:  KeyLParen,
	ebiten.KeyF2:           KeyF2,
	ebiten.KeyT:            KeyT,
	ebiten.KeyG:            KeyG,
	ebiten.KeyV:            KeyV,
	ebiten.KeySpace:        KeySpace,

	ebiten.KeyF6:          KeyF6,
	ebiten.KeyY:           KeyY,
	ebiten.KeyH:           KeyH,
	ebiten.KeyB:           KeyB,
	ebiten.KeyNumpadDivide: KeyDivide,

	ebiten.KeyP:          KeyP,
	ebiten.KeyNumpadEnter: KeyEnter2,
	ebiten.KeyF1:         KeyF1,
	ebiten.KeyU:          KeyU,
	ebiten.KeyJ:          KeyJ,
	ebiten.KeyN:          KeyN,

	ebiten.KeyNumpadMultiply: KeyMultiply,
	ebiten.KeyInsert:         KeyApps,
	ebiten.KeyDelete:         KeyClear,
	ebiten.KeyF5:             KeyF5,
	ebiten.KeyI:              KeyI,
	ebiten.KeyK:              KeyK,
	ebiten.KeyM:              KeyM,
	ebiten.KeyEqual:          KeyEquals,

	ebiten.KeyEscape:      KeyEsc,
	ebiten.KeyNumpadAdd:   KeyPlus,
	ebiten.KeyO:           KeyO,
	ebiten.KeyL:           KeyL,
	ebiten.KeySlash:       KeyTheta,
	ebiten.KeyBackspace:   KeyBackspace,

	ebiten.KeyPeriod: KeyPeriod,
	ebiten.Key0:      Key0,
	ebiten.KeyF4:     KeyF4,
	ebiten.KeyQ:      KeyQ,
	ebiten.KeyA:      KeyA,
	ebiten.KeyEnter:  KeyEnter,
	ebiten.KeyMinus:  KeyMinus,
	ebiten.KeyNumpadSubtract: KeyMinus,
}
