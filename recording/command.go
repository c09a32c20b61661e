// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/paint"
)

// CommandType identifies the type of a command.
// There is one command type per paint.Canvas method.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Save current state
	CmdRestore                    // Restore previous state
	CmdReset                      // Blank the bitmap and reset state

	// Transform commands
	CmdTranslate // Post-multiply a translation
	CmdRotate    // Post-multiply a rotation
	CmdScale     // Post-multiply a scale

	// Path commands
	CmdBeginPath // Discard the current path
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Add a line
	CmdClosePath // Close the current subpath
	CmdRect      // Add a closed rectangle subpath
	CmdArc       // Add a clockwise arc

	// Style commands
	CmdSetFillStyle   // Set fill color
	CmdSetStrokeStyle // Set stroke color
	CmdSetLineWidth   // Set stroke line width
	CmdSetLineCap     // Set stroke line cap
	CmdSetLineJoin    // Set stroke line join
	CmdSetGlobalAlpha // Set global alpha

	// Drawing commands
	CmdFill      // Fill the current path
	CmdStroke    // Stroke the current path
	CmdDrawImage // Draw an image
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdReset:          "Reset",
	CmdTranslate:      "Translate",
	CmdRotate:         "Rotate",
	CmdScale:          "Scale",
	CmdBeginPath:      "BeginPath",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdClosePath:      "ClosePath",
	CmdRect:           "Rect",
	CmdArc:            "Arc",
	CmdSetFillStyle:   "SetFillStyle",
	CmdSetStrokeStyle: "SetStrokeStyle",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetLineCap:     "SetLineCap",
	CmdSetLineJoin:    "SetLineJoin",
	CmdSetGlobalAlpha: "SetGlobalAlpha",
	CmdFill:           "Fill",
	CmdStroke:         "Stroke",
	CmdDrawImage:      "DrawImage",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the transform and style state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// ResetCommand blanks the bitmap and restores default state.
type ResetCommand struct{}

// Type implements Command.
func (ResetCommand) Type() CommandType { return CmdReset }

// --------------------------------------------------------------------------
// Transform Commands
// --------------------------------------------------------------------------

// TranslateCommand post-multiplies a translation.
type TranslateCommand struct {
	X, Y float64
}

// Type implements Command.
func (TranslateCommand) Type() CommandType { return CmdTranslate }

// RotateCommand post-multiplies a rotation.
type RotateCommand struct {
	// Angle is in radians, clockwise on screen.
	Angle float64
}

// Type implements Command.
func (RotateCommand) Type() CommandType { return CmdRotate }

// ScaleCommand post-multiplies a scale.
type ScaleCommand struct {
	X, Y float64
}

// Type implements Command.
func (ScaleCommand) Type() CommandType { return CmdScale }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a subpath. X and Y are in user space.
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a line. X and Y are in user space.
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// RectCommand adds a closed rectangle subpath in user space.
type RectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// ArcCommand adds a clockwise arc in user space.
type ArcCommand struct {
	X, Y, Radius         float64
	StartAngle, EndAngle float64
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetFillStyleCommand sets the fill color.
type SetFillStyleCommand struct {
	Color color.Color
}

// Type implements Command.
func (SetFillStyleCommand) Type() CommandType { return CmdSetFillStyle }

// SetStrokeStyleCommand sets the stroke color.
type SetStrokeStyleCommand struct {
	Color color.Color
}

// Type implements Command.
func (SetStrokeStyleCommand) Type() CommandType { return CmdSetStrokeStyle }

// SetLineWidthCommand sets the stroke line width in user space.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetLineCapCommand sets the stroke line cap.
type SetLineCapCommand struct {
	Cap paint.LineCap
}

// Type implements Command.
func (SetLineCapCommand) Type() CommandType { return CmdSetLineCap }

// SetLineJoinCommand sets the stroke line join.
type SetLineJoinCommand struct {
	Join paint.LineJoin
}

// Type implements Command.
func (SetLineJoinCommand) Type() CommandType { return CmdSetLineJoin }

// SetGlobalAlphaCommand sets the global alpha.
type SetGlobalAlphaCommand struct {
	Alpha float64
}

// Type implements Command.
func (SetGlobalAlphaCommand) Type() CommandType { return CmdSetGlobalAlpha }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillCommand fills the current path.
// It carries the state in effect when it was recorded.
type FillCommand struct {
	// Color is the fill color before global alpha.
	Color color.Color
	// Alpha is the global alpha.
	Alpha float64
	// Transform is the current transform.
	Transform gg.Matrix
	// Path is the current path in device space.
	Path Path
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes the current path.
// It carries the state in effect when it was recorded.
type StrokeCommand struct {
	// Color is the stroke color before global alpha.
	Color color.Color
	// Alpha is the global alpha.
	Alpha float64
	// Width is the line width in user space.
	Width float64
	// DeviceWidth is Width scaled by the current transform.
	DeviceWidth float64
	Cap         paint.LineCap
	Join        paint.LineJoin
	// Transform is the current transform.
	Transform gg.Matrix
	// Path is the current path in device space.
	Path Path
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// DrawImageCommand draws an image stretched to a user-space rectangle.
type DrawImageCommand struct {
	// Image references the image in the resource pool.
	Image ImageRef
	// X, Y, W, H is the destination rectangle in user space.
	X, Y, W, H float64
	// Alpha is the global alpha.
	Alpha float64
	// Transform is the current transform.
	Transform gg.Matrix
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// Quad returns the destination corners in device space, clockwise from
// the top-left corner of the image.
func (c DrawImageCommand) Quad() [4]gg.Point {
	m := c.Transform
	return [4]gg.Point{
		m.TransformPoint(gg.Pt(c.X, c.Y)),
		m.TransformPoint(gg.Pt(c.X+c.W, c.Y)),
		m.TransformPoint(gg.Pt(c.X+c.W, c.Y+c.H)),
		m.TransformPoint(gg.Pt(c.X, c.Y+c.H)),
	}
}
