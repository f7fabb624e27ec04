package resources

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/smufl/core"
	"github.com/npillmayer/smufl/core/font"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
	metadataResourceType
)

// Configuration keys
const (
	ConfFontDir       = "scorefont.fontdir"
	ConfStylisticSet  = "scorefont.stylistic-set"
	ConfFallbackFont  = "scorefont.fallback"
	glyphNamesFile    = "packaged/glyphnames.json"
	packagedMetadata  = "packaged/metadata"
	metadataExtension = ".json"
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	case metadataResourceType:
		s = fmt.Sprintf("font metadata not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	err := core.WrapError(e, core.EMISSING, s)
	return err
}

//go:embed packaged/*
var packaged embed.FS

// --- Glyph names -----------------------------------------------------------

// GlyphNames returns the contents of the SMuFL glyph-name table packaged
// with this module.
func GlyphNames() ([]byte, error) {
	data, err := packaged.ReadFile(glyphNamesFile)
	if err != nil {
		return nil, NotFound("glyphnames.json", unknownResourceType)
	}
	return data, nil
}

// --- Fonts -----------------------------------------------------------------

// FontFiles is the result of resolving a score font: the path of the font
// file and the contents of its metadata file. Either may be missing.
type FontFiles struct {
	FontPath string
	Metadata []byte
}

type filesPlusErr struct {
	files FontFiles
	err   error
}

// FontFilesPromise is returned by ResolveScoreFont.
type FontFilesPromise interface {
	FontFiles() (FontFiles, error)
}

type fontLoader struct {
	await func(ctx context.Context) (FontFiles, error)
}

func (loader fontLoader) FontFiles() (FontFiles, error) {
	return loader.await(context.Background())
}

// ResolveScoreFont locates the font file and the metadata of a score font.
// The returned error reports the first resource which could not be found;
// FontFiles will nevertheless contain everything which has been found.
func ResolveScoreFont(conf schuko.Configuration, desc font.Descriptor) FontFilesPromise {
	ch := make(chan filesPlusErr, 1)
	go func(ch chan<- filesPlusErr) {
		result := filesPlusErr{}
		result.files.FontPath, result.err = FindFontFile(conf, desc)
		var err error
		result.files.Metadata, err = FindMetadata(conf, desc, result.files.FontPath)
		if result.err == nil {
			result.err = err
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (FontFiles, error) {
			select {
			case <-ctx.Done():
				return FontFiles{}, ctx.Err()
			case r := <-ch:
				return r.files, r.err
			}
		},
	}
}

// FindFontFile searches for a font file, first in the configured font
// directory, then among the system fonts.
func FindFontFile(conf schuko.Configuration, desc font.Descriptor) (string, error) {
	if desc.Filename == "" {
		return "", NotFound(desc.Name, fontResourceType)
	}
	for _, dir := range configuredDirs(conf, desc) {
		fpath := filepath.Join(dir, desc.Filename)
		if isFile(fpath) {
			tracer().Debugf("found font %s in font directory: %s", desc.Name, fpath)
			return fpath, nil
		}
	}
	fpath, err := findfont.Find(desc.Filename) // try to find as system font
	if err == nil && fpath != "" {
		tracer().Debugf("%s is a system font: %s", desc.Name, fpath)
		return fpath, nil
	}
	return "", NotFound(desc.Filename, fontResourceType)
}

// FindMetadata searches for the SMuFL metadata of a font: in the configured
// font directory, next to the font file (if fontPath is non-empty), and
// finally among the metadata packaged with this module.
func FindMetadata(conf schuko.Configuration, desc font.Descriptor, fontPath string) ([]byte, error) {
	dirs := configuredDirs(conf, desc)
	if fontPath != "" {
		dirs = append(dirs, filepath.Dir(fontPath))
	}
	for _, dir := range dirs {
		for _, name := range []string{desc.MetadataFilename(), "metadata.json"} {
			mpath := filepath.Join(dir, name)
			if !isFile(mpath) {
				continue
			}
			data, err := os.ReadFile(mpath)
			if err != nil {
				return nil, core.WrapError(err, core.EMISSING, "cannot read font metadata %s", mpath)
			}
			tracer().Debugf("found metadata for %s: %s", desc.Name, mpath)
			return data, nil
		}
	}
	return PackagedMetadata(desc.Name)
}

// PackagedMetadata returns metadata for a font packaged with this module.
func PackagedMetadata(fontname string) ([]byte, error) {
	mname := font.NormalizeFontname(fontname) + metadataExtension
	data, err := fs.ReadFile(packaged, packagedMetadata+"/"+mname)
	if err != nil {
		return nil, NotFound(fontname, metadataResourceType)
	}
	tracer().Debugf("using packaged metadata for %s", fontname)
	return data, nil
}

// PackagedMetadataFonts lists the names (normalized) of fonts with
// packaged metadata.
func PackagedMetadataFonts() []string {
	entries, _ := packaged.ReadDir(packagedMetadata)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, font.NormalizeFontname(e.Name()))
	}
	return names
}

// ---------------------------------------------------------------------------

func configuredDirs(conf schuko.Configuration, desc font.Descriptor) []string {
	if conf == nil {
		return nil
	}
	base := conf.GetString(ConfFontDir)
	if base == "" {
		return nil
	}
	dirs := make([]string, 0, 2)
	if desc.Path != "" {
		dirs = append(dirs, filepath.Join(base, desc.Path))
	}
	return append(dirs, base)
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
