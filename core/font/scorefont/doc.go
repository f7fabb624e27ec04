/*
Package scorefont holds the symbol tables of score fonts and answers metric
queries about music glyphs.

A Font maps every symbol (smufl.SymID) to a codepoint, a bounding box, an
advance width, a set of anchors and, for composed symbols, a list of
sub-symbols. Tables are filled once by Font.Load from the font's SMuFL
metadata and from measurements taken by a rendering backend. Afterwards a
font is read-only and may be queried concurrently.

All metrics are stored in font design units at magnitude 1 and are scaled
when queried:

    f := scorefont.New(desc, names, scorefont.WithBackend(b), scorefont.WithMetadata(md))
    if err := f.Load(); err != nil {
        ...
    }
    box := f.BBox(smufl.GClef, dimen.Uniform(0.02))

Symbols a font lacks are reported by UseFallbackFont; clients are expected
to query the fallback font of the font catalog then.

# Status

Loading is not synchronized: a font must be loaded by a single goroutine,
usually during application startup.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package scorefont

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'smufl.font'
func tracer() tracing.Trace {
	return tracing.Select("smufl.font")
}
