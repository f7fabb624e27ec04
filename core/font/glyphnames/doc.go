/*
Package glyphnames holds the registry of canonical SMuFL glyph names.

The registry is built once from the shared glyph-name table (glyphnames.json
of the SMuFL distribution) and is read-only afterwards. Score fonts consult
it to translate glyph names found in their metadata into symbol identifiers,
and to look up the standard codepoints of symbols.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphnames

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'smufl.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("smufl.glyphs")
}
