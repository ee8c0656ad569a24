// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import "fmt"

// WindowID identifies a window created by an EventLoop.
type WindowID uint64

// Size is a size in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// Empty reports whether either dimension is zero.
// Platforms report empty sizes while a window is minimized.
func (s Size) Empty() bool {
	return s.Width == 0 || s.Height == 0
}

// Position is a point in physical pixels.
type Position struct {
	X float64
	Y float64
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// ElementState is the state of a key or button.
type ElementState uint8

const (
	Released ElementState = iota
	Pressed
)

// String returns the state name.
func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// MouseButton identifies a mouse button. Values past MouseButtonForward
// are additional buttons reported by the platform.
type MouseButton uint16

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonBack:
		return "Back"
	case MouseButtonForward:
		return "Forward"
	default:
		return fmt.Sprintf("Other(%d)", uint16(b))
	}
}

// TouchPhase describes the phase of a scroll gesture.
type TouchPhase uint8

const (
	TouchPhaseStarted TouchPhase = iota
	TouchPhaseMoved
	TouchPhaseEnded
	TouchPhaseCancelled
)

// ScrollUnit tells whether a ScrollDelta is measured in lines or pixels.
type ScrollUnit uint8

const (
	// ScrollLines is used by mouse wheels with discrete notches.
	ScrollLines ScrollUnit = iota
	// ScrollPixels is used by touchpads and smooth-scrolling devices.
	ScrollPixels
)

// ScrollDelta is the amount scrolled by a wheel or touchpad.
type ScrollDelta struct {
	Unit ScrollUnit
	X    float64
	Y    float64
}

// Event is a window event delivered to a Handler.
//
// The set of events is closed; it contains:
//   - [Resized], [Moved], [Focused], [CloseRequested], [RedrawRequested]
//   - [MouseInput], [MouseWheel], [CursorMoved], [CursorEntered], [CursorLeft]
//   - [KeyboardInput]
type Event interface {
	isEvent()
}

// Resized reports the new inner size of a window.
type Resized struct{ Size Size }

// Moved reports the new outer position of a window.
type Moved struct{ X, Y int }

// Focused reports a change of keyboard focus.
type Focused struct{ Focused bool }

// CloseRequested reports that the user asked to close the window.
// Platforms never close a window on their own.
type CloseRequested struct{}

// RedrawRequested is delivered after Window.RequestRedraw.
type RedrawRequested struct{}

// MouseInput reports a mouse button press or release.
type MouseInput struct {
	Button MouseButton
	State  ElementState
}

// MouseWheel reports a scroll.
type MouseWheel struct {
	Delta ScrollDelta
	Phase TouchPhase
}

// CursorMoved reports a cursor position inside the window.
type CursorMoved struct{ Position Position }

// CursorEntered reports that the cursor entered the window.
type CursorEntered struct{}

// CursorLeft reports that the cursor left the window.
type CursorLeft struct{}

// KeyboardInput reports a logical key press or release.
type KeyboardInput struct {
	Key    Key
	State  ElementState
	Repeat bool
}

func (Resized) isEvent()         {}
func (Moved) isEvent()           {}
func (Focused) isEvent()         {}
func (CloseRequested) isEvent()  {}
func (RedrawRequested) isEvent() {}
func (MouseInput) isEvent()      {}
func (MouseWheel) isEvent()      {}
func (CursorMoved) isEvent()     {}
func (CursorEntered) isEvent()   {}
func (CursorLeft) isEvent()      {}
func (KeyboardInput) isEvent()   {}
