// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/geom"
)

// Name is the registry name of the recording backend.
const Name = "recording"

func init() {
	paint.Register(Name, func(width, height int) (paint.Canvas, error) {
		return NewRecorder(width, height), nil
	})
}

// arcSteps is the number of line segments per quarter-turn arc segment.
const arcSteps = 16

// Recorder is a paint.Canvas that records every call as a typed command.
// It also tracks the transform and the device-space path so that fill,
// stroke and image commands carry the geometry they would produce.
//
// Example:
//
//	rec := recording.NewRecorder(300, 300)
//	s := paint.MustNew(rec)
//	s.Circle(paint.CircleProps{Radius: 10})
//	r := rec.Finish()
//	fmt.Println(r.Types())
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	// Current path in device space.
	path Path

	state      recorderState
	stateStack []recorderState
}

// recorderState stores the state covered by Save/Restore.
type recorderState struct {
	fill      color.Color
	stroke    color.Color
	lineWidth float64
	lineCap   paint.LineCap
	lineJoin  paint.LineJoin
	alpha     float64
	transform gg.Matrix
}

func defaultState() recorderState {
	return recorderState{
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		lineCap:   paint.LineCapButt,
		lineJoin:  paint.LineJoinMiter,
		alpha:     1,
		transform: gg.Identity(),
	}
}

// NewRecorder creates a Recorder for a width x height canvas.
// It starts with black fill and stroke, 1px lines, butt caps, miter joins,
// full alpha and the identity transform.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 64),
		resources:  NewResourcePool(),
		state:      defaultState(),
		stateStack: make([]recorderState, 0, 8),
	}
}

// Finish returns an immutable Recording of the commands so far.
// The Recorder may keep recording; later commands are not visible in the
// returned Recording.
func (r *Recorder) Finish() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  cmds,
		resources: r.resources,
	}
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Transform returns the current transform.
func (r *Recorder) Transform() gg.Matrix { return r.state.transform }

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.stateStack) }

func (r *Recorder) record(c Command) { r.commands = append(r.commands, c) }

// --------------------------------------------------------------------------
// paint.Canvas
// --------------------------------------------------------------------------

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.state)
	r.record(SaveCommand{})
}

// Restore pops the last saved state. Unbalanced calls are recorded but
// change nothing.
func (r *Recorder) Restore() {
	if n := len(r.stateStack); n > 0 {
		r.state = r.stateStack[n-1]
		r.stateStack = r.stateStack[:n-1]
	}
	r.record(RestoreCommand{})
}

func (r *Recorder) Reset() {
	r.state = defaultState()
	r.stateStack = r.stateStack[:0]
	r.path = Path{}
	r.record(ResetCommand{})
}

func (r *Recorder) Translate(x, y float64) {
	r.state.transform = r.state.transform.Multiply(gg.Translate(x, y))
	r.record(TranslateCommand{X: x, Y: y})
}

func (r *Recorder) Rotate(angle float64) {
	r.state.transform = r.state.transform.Multiply(gg.Rotate(angle))
	r.record(RotateCommand{Angle: angle})
}

func (r *Recorder) Scale(x, y float64) {
	r.state.transform = r.state.transform.Multiply(gg.Scale(x, y))
	r.record(ScaleCommand{X: x, Y: y})
}

func (r *Recorder) BeginPath() {
	r.path = Path{}
	r.record(BeginPathCommand{})
}

func (r *Recorder) MoveTo(x, y float64) {
	r.moveTo(r.device(x, y))
	r.record(MoveToCommand{X: x, Y: y})
}

// LineTo behaves like MoveTo when there is no current point.
func (r *Recorder) LineTo(x, y float64) {
	r.lineTo(r.device(x, y))
	r.record(LineToCommand{X: x, Y: y})
}

func (r *Recorder) ClosePath() {
	if sp := r.current(); sp != nil && len(sp.Points) > 0 {
		sp.Closed = true
	}
	r.record(ClosePathCommand{})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.moveTo(r.device(x, y))
	r.lineTo(r.device(x+w, y))
	r.lineTo(r.device(x+w, y+h))
	r.lineTo(r.device(x, y+h))
	r.current().Closed = true
	r.record(RectCommand{X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	segs := geom.Arc(x, y, radius, startAngle, endAngle)
	if len(segs) > 0 {
		m := r.state.transform
		r.lineTo(m.TransformPoint(segs[0].P0))
		var pts []gg.Point
		for _, s := range segs {
			pts = s.Transform(m).Flatten(pts[:0], arcSteps)
			for _, p := range pts {
				r.lineTo(p)
			}
		}
	}
	r.record(ArcCommand{X: x, Y: y, Radius: radius, StartAngle: startAngle, EndAngle: endAngle})
}

func (r *Recorder) SetFillStyle(c color.Color) {
	r.state.fill = c
	r.record(SetFillStyleCommand{Color: c})
}

func (r *Recorder) SetStrokeStyle(c color.Color) {
	r.state.stroke = c
	r.record(SetStrokeStyleCommand{Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		r.state.lineWidth = w
	}
	r.record(SetLineWidthCommand{Width: w})
}

func (r *Recorder) SetLineCap(c paint.LineCap) {
	if c != paint.LineCapUnset {
		r.state.lineCap = c
	}
	r.record(SetLineCapCommand{Cap: c})
}

func (r *Recorder) SetLineJoin(j paint.LineJoin) {
	if j != paint.LineJoinUnset {
		r.state.lineJoin = j
	}
	r.record(SetLineJoinCommand{Join: j})
}

func (r *Recorder) SetGlobalAlpha(a float64) {
	if a >= 0 && a <= 1 {
		r.state.alpha = a
	}
	r.record(SetGlobalAlphaCommand{Alpha: a})
}

// Fill records a FillCommand. It never fails.
func (r *Recorder) Fill() error {
	r.record(FillCommand{
		Color:     r.state.fill,
		Alpha:     r.state.alpha,
		Transform: r.state.transform,
		Path:      r.path.clone(),
	})
	return nil
}

// Stroke records a StrokeCommand. It never fails.
func (r *Recorder) Stroke() error {
	r.record(StrokeCommand{
		Color:       r.state.stroke,
		Alpha:       r.state.alpha,
		Width:       r.state.lineWidth,
		DeviceWidth: r.state.lineWidth * scaleFactor(r.state.transform),
		Cap:         r.state.lineCap,
		Join:        r.state.lineJoin,
		Transform:   r.state.transform,
		Path:        r.path.clone(),
	})
	return nil
}

func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.record(DrawImageCommand{
		Image:     r.resources.AddImage(img),
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		Alpha:     r.state.alpha,
		Transform: r.state.transform,
	})
}

// --------------------------------------------------------------------------
// Path helpers
// --------------------------------------------------------------------------

func (r *Recorder) device(x, y float64) gg.Point {
	return r.state.transform.TransformPoint(gg.Pt(x, y))
}

func (r *Recorder) current() *Subpath {
	if len(r.path.Subpaths) == 0 {
		return nil
	}
	return &r.path.Subpaths[len(r.path.Subpaths)-1]
}

func (r *Recorder) moveTo(p gg.Point) {
	r.path.Subpaths = append(r.path.Subpaths, Subpath{Points: []gg.Point{p}})
}

// lineTo follows the canvas rules: with no current point it starts a
// subpath, and after a close it starts a new one at the closed start.
func (r *Recorder) lineTo(p gg.Point) {
	sp := r.current()
	switch {
	case sp == nil || len(sp.Points) == 0:
		r.moveTo(p)
	case sp.Closed:
		start := sp.Points[0]
		r.path.Subpaths = append(r.path.Subpaths, Subpath{Points: []gg.Point{start, p}})
	default:
		sp.Points = append(sp.Points, p)
	}
}

// scaleFactor is the geometric mean of the transform's axis scales.
func scaleFactor(m gg.Matrix) float64 {
	return math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable list of recorded commands.
// It can be replayed to any paint.Canvas.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recorded canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recorded canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Len returns the number of recorded commands.
func (r *Recording) Len() int { return len(r.commands) }

// Resources returns the image pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Types returns the type of every command in order.
func (r *Recording) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Count returns how many commands have type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Fills returns every FillCommand in order.
func (r *Recording) Fills() []FillCommand {
	return collect[FillCommand](r.commands)
}

// Strokes returns every StrokeCommand in order.
func (r *Recording) Strokes() []StrokeCommand {
	return collect[StrokeCommand](r.commands)
}

// Images returns every DrawImageCommand in order.
func (r *Recording) Images() []DrawImageCommand {
	return collect[DrawImageCommand](r.commands)
}

func collect[T Command](cmds []Command) []T {
	var out []T
	for _, c := range cmds {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Playback replays the recording onto c. Fill and stroke errors do not stop
// the replay; they are returned joined.
func (r *Recording) Playback(c paint.Canvas) error {
	if c == nil {
		return paint.ErrNilCanvas
	}

	var errs []error
	for i, cmd := range r.commands {
		switch v := cmd.(type) {
		case SaveCommand:
			c.Save()
		case RestoreCommand:
			c.Restore()
		case ResetCommand:
			c.Reset()
		case TranslateCommand:
			c.Translate(v.X, v.Y)
		case RotateCommand:
			c.Rotate(v.Angle)
		case ScaleCommand:
			c.Scale(v.X, v.Y)
		case BeginPathCommand:
			c.BeginPath()
		case MoveToCommand:
			c.MoveTo(v.X, v.Y)
		case LineToCommand:
			c.LineTo(v.X, v.Y)
		case ClosePathCommand:
			c.ClosePath()
		case RectCommand:
			c.Rect(v.X, v.Y, v.W, v.H)
		case ArcCommand:
			c.Arc(v.X, v.Y, v.Radius, v.StartAngle, v.EndAngle)
		case SetFillStyleCommand:
			c.SetFillStyle(v.Color)
		case SetStrokeStyleCommand:
			c.SetStrokeStyle(v.Color)
		case SetLineWidthCommand:
			c.SetLineWidth(v.Width)
		case SetLineCapCommand:
			c.SetLineCap(v.Cap)
		case SetLineJoinCommand:
			c.SetLineJoin(v.Join)
		case SetGlobalAlphaCommand:
			c.SetGlobalAlpha(v.Alpha)
		case FillCommand:
			if err := c.Fill(); err != nil {
				errs = append(errs, fmt.Errorf("recording: command %d fill: %w", i, err))
			}
		case StrokeCommand:
			if err := c.Stroke(); err != nil {
				errs = append(errs, fmt.Errorf("recording: command %d stroke: %w", i, err))
			}
		case DrawImageCommand:
			if img := r.resources.Image(v.Image); img != nil {
				c.DrawImage(img, v.X, v.Y, v.W, v.H)
			}
		}
	}
	return errors.Join(errs...)
}

var _ paint.Canvas = (*Recorder)(nil)
