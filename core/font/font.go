/*
Package font is for score font handling.

We stick to the following nomenclature:

* A "score font" is a font containing music symbols, laid out according to
SMuFL (https://w3c.github.io/smufl/latest/). Examples are "Bravura" and
"Leland". A score font consists of a font file (OpenType) and a metadata file
(JSON), which tells about anchors, alternates and engraving defaults.

* A "symbol" is an abstract music glyph concept, such as "G clef", identified
by a smufl.SymID. Fonts map symbols to codepoints.

* A "text font" is a companion font for music symbols embedded in text
(e.g., "Bravura Text").

Sub-packages handle glyph names (glyphnames), per-font symbol tables and
metrics (scorefont), the catalog of known fonts (fontregistry) and a
rendering backend on top of golang.org/x/image (sfntbackend).

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"path"
	"strings"
)

// Descriptor describes where to find a score font.
type Descriptor struct {
	Name     string // unique name, e.g. "Bravura"
	Family   string // font family, e.g. "Bravura"
	Path     string // folder of font file and metadata, relative to a font directory
	Filename string // font file name, e.g. "Bravura.otf"
}

// MetadataFilename returns the conventional name of a font's SMuFL metadata
// file, e.g. "bravura_metadata.json".
func (d Descriptor) MetadataFilename() string {
	return NormalizeFontname(d.Name) + "_metadata.json"
}

// TextFontName returns the name of the companion text font,
// e.g. "Bravura Text".
func (d Descriptor) TextFontName() string {
	return d.Family + " Text"
}

// NormalizeFontname returns a font name suitable as a lookup key:
// without extension, lowercase and with spaces replaced by '_'.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = path.Base(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}
