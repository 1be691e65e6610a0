// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes delivered with key events.
package key

// Codes is the physical key code of a key event, independent of the
// keyboard layout. Only the keys the engine and its scenes react to
// are named; everything else arrives as CodeUnknown with the raw scancode
// preserved on the event.
type Codes int32

const (
	CodeUnknown Codes = iota
	CodeUpArrow
	CodeDownArrow
	CodeLeftArrow
	CodeRightArrow
	CodeEscape
	CodeReturnEnter
	CodeSpacebar
	CodeDeleteBackspace
	CodeTab
	CodeW
	CodeA
	CodeS
	CodeD
)

var codeNames = map[Codes]string{
	CodeUnknown:         "Unknown",
	CodeUpArrow:         "UpArrow",
	CodeDownArrow:       "DownArrow",
	CodeLeftArrow:       "LeftArrow",
	CodeRightArrow:      "RightArrow",
	CodeEscape:          "Escape",
	CodeReturnEnter:     "ReturnEnter",
	CodeSpacebar:        "Spacebar",
	CodeDeleteBackspace: "DeleteBackspace",
	CodeTab:             "Tab",
	CodeW:               "W",
	CodeA:               "A",
	CodeS:               "S",
	CodeD:               "D",
}

func (c Codes) String() string {
	if nm, ok := codeNames[c]; ok {
		return nm
	}
	return "Unknown"
}

// IsArrow returns true for the four arrow keys.
func (c Codes) IsArrow() bool {
	return c >= CodeUpArrow && c <= CodeRightArrow
}
