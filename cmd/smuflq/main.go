/*
Command smuflq is an interactive tool for querying score fonts.

Usage:

	smuflq [-font Bravura] [-fontdir DIR] [-set ss01] [-trace Info]

Commands are

	sym NAME [MAG]              metrics of a symbol
	seq NAME NAME ... [MAG]     metrics of a sequence of symbols
	find PREFIX                 glyph names starting with PREFIX
	font [NAME]                 switch to another font, or list fonts
	defaults                    engraving defaults of the current font
	draw NAME FILE.png [MAG]    paint a symbol into a PNG file
	quit

MAG is the number of pixels per font design unit, default 1.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/smufl/core"
	"github.com/npillmayer/smufl/core/dimen"
	"github.com/npillmayer/smufl/core/font/fontregistry"
	"github.com/npillmayer/smufl/core/font/glyphnames"
	"github.com/npillmayer/smufl/core/font/scorefont"
	"github.com/npillmayer/smufl/core/font/smufl"
	"github.com/npillmayer/smufl/core/locate/resources"
	"github.com/npillmayer/smufl/core/parameters"
	"github.com/pterm/pterm"
)

// tracer traces with key 'smufl.font'
func tracer() tracing.Trace {
	return tracing.Select("smufl.font")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", fontregistry.DefaultFallbackFont, "Score font to query")
	fontdir := flag.String("fontdir", "", "Directory of score fonts and metadata")
	set := flag.String("set", "", "Stylistic set, e.g. ss01")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.smufl.font":         *tlevel,
		"trace.smufl.glyphs":       *tlevel,
		"trace.smufl.resources":    *tlevel,
		resources.ConfFontDir:      *fontdir,
		resources.ConfStylisticSet: *set,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the SMuFL score font CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// load fonts
	if err := fontregistry.InitScoreFonts(conf); err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	names, _ := glyphnames.Default()
	intp := &Intp{names: names}
	if err := intp.selectFont(*fontname); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "smufl > ",
		AutoComplete: glyphCompleter{names},
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font  *scorefont.Font
	names *glyphnames.Registry
	repl  *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(strings.Fields(line))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(args []string) (bool, error) {
	tracer().Debugf("command = %v", args)
	switch strings.ToLower(args[0]) {
	case "quit", "exit":
		return true, nil
	case "sym":
		if len(args) < 2 {
			return false, errors.New("usage: sym NAME [MAG]")
		}
		id, err := intp.symbol(args[1])
		if err != nil {
			return false, err
		}
		mag, err := magArg(args, 2)
		if err != nil {
			return false, err
		}
		intp.showSymbol(id, mag)
	case "seq":
		ids, mag, err := intp.sequence(args[1:])
		if err != nil {
			return false, err
		}
		pterm.Printfln("width   = %g", intp.font.SeqWidth(ids, mag))
		pterm.Printfln("bbox    = %v", intp.font.SeqBBox(ids, mag))
	case "find":
		prefix := ""
		if len(args) > 1 {
			prefix = args[1]
		}
		for _, name := range intp.names.NamesWithPrefix(prefix) {
			pterm.Println(name)
		}
	case "font":
		if len(args) < 2 {
			for _, f := range fontregistry.ScoreFonts() {
				pterm.Printfln("%-16s %s", f.Name(), f.Filename())
			}
			return false, nil
		}
		return false, intp.selectFont(strings.Join(args[1:], " "))
	case "defaults":
		intp.showDefaults()
	case "draw":
		if len(args) < 3 {
			return false, errors.New("usage: draw NAME FILE.png [MAG]")
		}
		id, err := intp.symbol(args[1])
		if err != nil {
			return false, err
		}
		mag, err := magArg(args, 3)
		if err != nil {
			return false, err
		}
		return false, intp.draw(id, args[2], mag)
	default:
		help()
	}
	return false, nil
}

func (intp *Intp) selectFont(name string) error {
	f := fontregistry.FontByName(name)
	if f == nil {
		return fmt.Errorf("no score font named %q", name)
	}
	intp.font = f
	pterm.Info.Printfln("using score font %s", f.Name())
	return nil
}

func (intp *Intp) symbol(name string) (smufl.SymID, error) {
	id, ok := intp.names.Resolve(name)
	if !ok {
		return smufl.NoSym, fmt.Errorf("unknown glyph name %q", name)
	}
	return id, nil
}

func (intp *Intp) sequence(args []string) (smufl.SymIDList, dimen.Mag, error) {
	mag := dimen.Uniform(1)
	if n := len(args); n > 0 {
		if k, err := strconv.ParseFloat(args[n-1], 64); err == nil {
			mag = dimen.Uniform(k)
			args = args[:n-1]
		}
	}
	ids, bad := smufl.ParseSymIDList(args)
	if bad >= 0 {
		return nil, mag, fmt.Errorf("unknown glyph name %q", args[bad])
	}
	return ids, mag, nil
}

// fontFor returns the font to take a symbol from.
func (intp *Intp) fontFor(id smufl.SymID) *scorefont.Font {
	if intp.font.UseFallbackFont(id) {
		if fb := fontregistry.FallbackFont(); fb != nil && fb != intp.font {
			pterm.Info.Printfln("%s not in %s, using %s", id, intp.font.Name(), fb.Name())
			return fb
		}
	}
	return intp.font
}

func (intp *Intp) showSymbol(id smufl.SymID, mag dimen.Mag) {
	f := intp.fontFor(id)
	data := pterm.TableData{
		{"property", "value"},
		{"symbol", id.Name()},
		{"code", smufl.FormatCodepoint(f.SymCode(id))},
		{"valid", strconv.FormatBool(f.IsValid(id))},
		{"bbox", f.BBox(id, mag).String()},
		{"advance", strconv.FormatFloat(f.Advance(id, mag), 'g', -1, 64)},
	}
	sym := f.Symbol(id)
	if sym.IsCompound() {
		subs := make([]string, len(sym.SubSymbols))
		for i, s := range sym.SubSymbols {
			subs[i] = s.Name()
		}
		data = append(data, []string{"composed of", strings.Join(subs, " ")})
	}
	anchors := make([]smufl.AnchorID, 0, len(sym.Anchors))
	for a := range sym.Anchors {
		anchors = append(anchors, a)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i] < anchors[j] })
	for _, a := range anchors {
		p, _ := f.Anchor(id, a, mag)
		data = append(data, []string{a.String(), p.String()})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func (intp *Intp) showDefaults() {
	ed := intp.font.EngravingDefaults()
	data := pterm.TableData{{"parameter", "value"}}
	ed.Each(func(key parameters.StyleID, value parameters.Value) {
		data = append(data, []string{key.String(), fmt.Sprintf("%v", value)})
	})
	data = append(data, []string{"textEnclosureThickness",
		strconv.FormatFloat(intp.font.TextEnclosureThickness(), 'g', -1, 64)})
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

const margin = 4

func (intp *Intp) draw(id smufl.SymID, filename string, mag dimen.Mag) error {
	f := intp.fontFor(id)
	box := f.BBox(id, mag)
	if !box.IsValid() {
		return fmt.Errorf("%s has nothing to draw", id)
	}
	w := int(math.Ceil(box.Width())) + 2*margin
	h := int(math.Ceil(box.Height())) + 2*margin
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	origin := dimen.Point{X: margin - box.TopL.X, Y: margin - box.TopL.Y}
	f.Draw(id, img, mag, origin)
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	if err = png.Encode(out, img); err != nil {
		return err
	}
	pterm.Info.Printfln("%s written to %s (%dx%d)", id, filename, w, h)
	return nil
}

func magArg(args []string, i int) (dimen.Mag, error) {
	if len(args) <= i {
		return dimen.Uniform(1), nil
	}
	k, err := strconv.ParseFloat(args[i], 64)
	if err != nil || k <= 0 {
		return dimen.Mag{}, fmt.Errorf("magnification not a positive number: %v", args[i])
	}
	return dimen.Uniform(k), nil
}

// glyphCompleter completes glyph names, looking at the last word of a line.
type glyphCompleter struct {
	names *glyphnames.Registry
}

func (gc glyphCompleter) Do(line []rune, pos int) ([][]rune, int) {
	word := string(line[:pos])
	if i := strings.LastIndexByte(word, ' '); i >= 0 {
		word = word[i+1:]
	} else {
		return nil, 0 // first word is a command
	}
	var candidates [][]rune
	for _, name := range gc.names.NamesWithPrefix(word) {
		candidates = append(candidates, []rune(name[len(word):]))
	}
	return candidates, len([]rune(word))
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	sym NAME [MAG]              metrics of a symbol
	seq NAME NAME ... [MAG]     metrics of a sequence of symbols
	find PREFIX                 glyph names starting with PREFIX
	font [NAME]                 switch to another font, or list fonts
	defaults                    engraving defaults of the current font
	draw NAME FILE.png [MAG]    paint a symbol into a PNG file
	quit
	`)
}
