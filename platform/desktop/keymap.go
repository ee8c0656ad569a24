// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/yengine/platform"
)

var namedKeys = map[glfw.Key]platform.NamedKey{
	glfw.KeyEscape:       platform.KeyEscape,
	glfw.KeyEnter:        platform.KeyEnter,
	glfw.KeyKPEnter:      platform.KeyEnter,
	glfw.KeyTab:          platform.KeyTab,
	glfw.KeyBackspace:    platform.KeyBackspace,
	glfw.KeyInsert:       platform.KeyInsert,
	glfw.KeyDelete:       platform.KeyDelete,
	glfw.KeyRight:        platform.KeyArrowRight,
	glfw.KeyLeft:         platform.KeyArrowLeft,
	glfw.KeyDown:         platform.KeyArrowDown,
	glfw.KeyUp:           platform.KeyArrowUp,
	glfw.KeyPageUp:       platform.KeyPageUp,
	glfw.KeyPageDown:     platform.KeyPageDown,
	glfw.KeyHome:         platform.KeyHome,
	glfw.KeyEnd:          platform.KeyEnd,
	glfw.KeyCapsLock:     platform.KeyCapsLock,
	glfw.KeyScrollLock:   platform.KeyScrollLock,
	glfw.KeyNumLock:      platform.KeyNumLock,
	glfw.KeyPrintScreen:  platform.KeyPrintScreen,
	glfw.KeyPause:        platform.KeyPause,
	glfw.KeySpace:        platform.KeySpace,
	glfw.KeyLeftShift:    platform.KeyShift,
	glfw.KeyRightShift:   platform.KeyShift,
	glfw.KeyLeftControl:  platform.KeyControl,
	glfw.KeyRightControl: platform.KeyControl,
	glfw.KeyLeftAlt:      platform.KeyAlt,
	glfw.KeyRightAlt:     platform.KeyAlt,
	glfw.KeyLeftSuper:    platform.KeySuper,
	glfw.KeyRightSuper:   platform.KeySuper,
	glfw.KeyMenu:         platform.KeyContextMenu,
	glfw.KeyF1:           platform.KeyF1,
	glfw.KeyF2:           platform.KeyF2,
	glfw.KeyF3:           platform.KeyF3,
	glfw.KeyF4:           platform.KeyF4,
	glfw.KeyF5:           platform.KeyF5,
	glfw.KeyF6:           platform.KeyF6,
	glfw.KeyF7:           platform.KeyF7,
	glfw.KeyF8:           platform.KeyF8,
	glfw.KeyF9:           platform.KeyF9,
	glfw.KeyF10:          platform.KeyF10,
	glfw.KeyF11:          platform.KeyF11,
	glfw.KeyF12:          platform.KeyF12,
}

// logicalKey maps a GLFW key to a logical key. Named keys come from the
// table; printable keys take their text from the active layout through
// keyName, which is glfw.GetKeyName outside tests.
func logicalKey(key glfw.Key, scancode int, keyName func(glfw.Key, int) string) platform.Key {
	if nk, ok := namedKeys[key]; ok {
		return platform.Named(nk)
	}
	if keyName != nil {
		if text := keyName(key, scancode); text != "" {
			return platform.Character(text)
		}
	}
	return platform.Named(platform.KeyUnidentified)
}

func mouseButton(b glfw.MouseButton) platform.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return platform.MouseButtonLeft
	case glfw.MouseButtonRight:
		return platform.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return platform.MouseButtonMiddle
	case glfw.MouseButton4:
		return platform.MouseButtonBack
	case glfw.MouseButton5:
		return platform.MouseButtonForward
	default:
		return platform.MouseButton(b)
	}
}

func elementState(a glfw.Action) platform.ElementState {
	if a == glfw.Release {
		return platform.Released
	}
	return platform.Pressed
}
