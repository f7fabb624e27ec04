/*
Package resources resolves score font resources: font files, SMuFL metadata
files and the shared glyph-name table.

Resources are searched for in

▪︎ a font directory given by configuration key `scorefont.fontdir`,

▪︎ the system's font folders (font files only),

▪︎ files packaged with this module (metadata and glyph names only).

As locating fonts may touch the file system in several places, font
resolution works in an async/await fashion by returning a promise.
Functions named

   Resolve…(…)

will return a resource-specific promise type, which the client will call later
to receive the loaded resource. The call to the promise-function will then block
until loading has completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'smufl.resources'.
func tracer() tracing.Trace {
	return tracing.Select("smufl.resources")
}
