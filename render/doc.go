/*
Package render converts geometric entities into renderable shape
descriptors for a drawing canvas.

The conversion is read-only: lines, circles, arcs, polylines and routes are
not changed. Routes are consumed through their realized segments only. Every
shape carries a github.com/tdewolff/canvas path, which a canvas front end may
draw directly, together with the numbers a retained-mode toolkit needs to
create its own objects (center, radius, angles in degrees).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// ErrUnsupported is returned for values which have no renderable form.
var ErrUnsupported = errors.New("value cannot be rendered")
