// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import "fmt"

// NamedKey is a non-printable logical key.
type NamedKey uint16

const (
	KeyUnidentified NamedKey = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyArrowRight
	KeyArrowLeft
	KeyArrowDown
	KeyArrowUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeySpace
	KeyShift
	KeyControl
	KeyAlt
	KeySuper
	KeyContextMenu
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var namedKeyNames = [...]string{
	KeyUnidentified: "Unidentified",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyArrowRight:   "ArrowRight",
	KeyArrowLeft:    "ArrowLeft",
	KeyArrowDown:    "ArrowDown",
	KeyArrowUp:      "ArrowUp",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyCapsLock:     "CapsLock",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "NumLock",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeySpace:        "Space",
	KeyShift:        "Shift",
	KeyControl:      "Control",
	KeyAlt:          "Alt",
	KeySuper:        "Super",
	KeyContextMenu:  "ContextMenu",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
}

// String returns the key name.
func (k NamedKey) String() string {
	if int(k) < len(namedKeyNames) {
		return namedKeyNames[k]
	}
	return fmt.Sprintf("NamedKey(%d)", uint16(k))
}

// Key is a logical key as produced by the active keyboard layout.
// Exactly one of Named and Text is meaningful: a Key with non-empty Text is
// a character key, otherwise it is the named key.
//
// Key is comparable and can be used as a map key.
type Key struct {
	Named NamedKey
	Text  string
}

// Named returns the Key for a named key.
func Named(k NamedKey) Key {
	return Key{Named: k}
}

// Character returns the Key producing the given text.
func Character(text string) Key {
	return Key{Text: text}
}

// IsCharacter reports whether k produces text.
func (k Key) IsCharacter() bool {
	return k.Text != ""
}

// String returns the text of a character key or the name of a named key.
func (k Key) String() string {
	if k.IsCharacter() {
		return fmt.Sprintf("Character(%q)", k.Text)
	}
	return k.Named.String()
}
