package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/praetorian-inc/locus"
	"github.com/praetorian-inc/locus/pkg/config"
	"github.com/praetorian-inc/locus/pkg/store"
	"github.com/praetorian-inc/locus/pkg/types"
	"golang.org/x/term"
)

// styles holds color formatters for human output
type styles struct {
	heading   *color.Color
	location  *color.Color
	accession *color.Color
	partial   *color.Color
	metadata  *color.Color
	failure   *color.Color
}

// newStyles creates color formatters for human output
// enabled=false respects --color=never and the NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		heading:   color.New(color.Bold),
		location:  color.New(color.Bold, color.FgHiWhite),
		accession: color.New(color.FgHiBlue),
		partial:   color.New(color.FgYellow),
		metadata:  color.New(color.FgHiGreen),
		failure:   color.New(color.Bold, color.FgRed),
	}

	for _, c := range []*color.Color{s.heading, s.location, s.accession, s.partial, s.metadata, s.failure} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// colorEnabled decides whether human output is colored.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printer renders results in the configured output format.
type printer struct {
	out    io.Writer
	format string
	width  int
	styles *styles
}

func newPrinter(out io.Writer, cfg *config.Config) *printer {
	return &printer{
		out:    out,
		format: cfg.Output.Format,
		width:  cfg.Output.FASTAWidth,
		styles: newStyles(colorEnabled(cfg.Output.Color, out)),
	}
}

func (p *printer) json(v any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parsed is the JSON shape of a parsed location.
type parsed struct {
	Input    string                  `json:"input"`
	Location string                  `json:"location"`
	Length   int64                   `json:"length"`
	Compound *types.CompoundLocation `json:"compound"`
}

func (p *printer) printParsed(input string, c *types.CompoundLocation) error {
	switch p.format {
	case config.FormatJSON:
		return p.json(parsed{Input: input, Location: locus.Render(c), Length: c.Length(), Compound: c})
	case config.FormatRaw:
		_, err := fmt.Fprintln(p.out, locus.Render(c))
		return err
	case config.FormatFASTA:
		return fmt.Errorf("fasta output is not available for parsed locations")
	}

	s := p.styles
	fmt.Fprintf(p.out, "%s %s\n", s.heading.Sprint("Location:"), s.location.Sprint(locus.Render(c)))
	fmt.Fprintf(p.out, "%s %s\n", s.heading.Sprint("Operator:"), c.Operator)
	if c.Complement {
		fmt.Fprintf(p.out, "%s yes\n", s.heading.Sprint("Complement:"))
	}
	if c.LeftPartial || c.RightPartial {
		var ends []string
		if c.LeftPartial {
			ends = append(ends, "5'")
		}
		if c.RightPartial {
			ends = append(ends, "3'")
		}
		fmt.Fprintf(p.out, "%s %s\n", s.heading.Sprint("Partial:"), s.partial.Sprint(strings.Join(ends, " ")))
	}
	fmt.Fprintf(p.out, "%s %d\n", s.heading.Sprint("Length:"), c.Length())
	for i, loc := range c.Locations {
		text := loc.String()
		if loc.IsRemote() {
			text = s.accession.Sprint(text)
		}
		fmt.Fprintf(p.out, "    %s %s %s\n",
			s.heading.Sprintf("%d.", i+1),
			s.metadata.Sprint(loc.Kind),
			text)
	}
	return nil
}

// resolved is the JSON shape of an assembled sequence.
type resolved struct {
	ID string `json:"id,omitempty"`
	*locus.Result
	Sequence string `json:"sequence"`
}

func (p *printer) printResult(id string, res *locus.Result) error {
	switch p.format {
	case config.FormatJSON:
		return p.json(resolved{ID: id, Result: res, Sequence: string(res.Sequence)})
	case config.FormatRaw:
		_, err := fmt.Fprintln(p.out, string(res.Sequence))
		return err
	case config.FormatFASTA:
		return store.WriteFASTA(p.out, id, res.Location, res.Sequence, p.width)
	}

	s := p.styles
	if id != "" {
		fmt.Fprintf(p.out, "%s %s\n", s.heading.Sprint("ID:"), id)
	}
	fmt.Fprintf(p.out, "%s %s\n", s.heading.Sprint("Location:"), s.location.Sprint(res.Location))
	fmt.Fprintf(p.out, "%s %d bp\n", s.heading.Sprint("Length:"), res.Length)
	fmt.Fprintf(p.out, "%s %s\n", s.heading.Sprint("Digest:"), s.metadata.Sprint(res.Digest))
	for start := 0; start < len(res.Sequence); start += p.width {
		end := min(start+p.width, len(res.Sequence))
		fmt.Fprintf(p.out, "    %s\n", res.Sequence[start:end])
	}
	fmt.Fprintln(p.out)
	return nil
}

// printFailure reports a failed location on w.
func (p *printer) printFailure(w io.Writer, input string, err error) {
	fmt.Fprintf(w, "%s %s: %v\n", p.styles.failure.Sprint("error:"), input, err)
}
