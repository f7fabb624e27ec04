/*
Package fontregistry manages the catalog of score fonts.

A catalog is filled once, usually at application startup, by locating the
font files and metadata of every font descriptor and loading the fonts.
Clients then look up fonts by name and turn to the fallback font for
symbols a font cannot display.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'smufl.font'
func tracer() tracing.Trace {
	return tracing.Select("smufl.font")
}
