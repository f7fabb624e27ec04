/*
Package smufl defines the vocabulary of music glyphs: symbol identifiers,
anchor names and codepoints.

SMuFL (Standard Music Font Layout, https://w3c.github.io/smufl/latest/)
assigns canonical names and private-use codepoints to several thousand
music symbols. This package enumerates the subset the engraving engine
knows about. The enumeration is closed: tables indexed by SymID have
exactly SymIDCount slots.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package smufl
