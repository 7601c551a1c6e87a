// Command fxinfo prints the control surface of the multi-effect
// engine: every effect type with its wire id, channel modes and
// parameter layout, plus the embedded amp models and cabinet
// responses.
//
// Usage:
//
//	fxinfo [flags] [effect-name ...]
//
// Without arguments it prints info for all registered effect types.
//
// Examples:
//
//	fxinfo delay reverb
//	fxinfo -models
//	fxinfo -irs
//	fxinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-multifx/dsp/effect"
	"github.com/cwbudde/algo-multifx/dsp/engine"
	"github.com/cwbudde/algo-multifx/dsp/gru"
	"github.com/cwbudde/algo-multifx/dsp/ir"
)

func main() {
	list := flag.Bool("list", false, "list available effect names")
	models := flag.Bool("models", false, "list embedded amp models")
	irs := flag.Bool("irs", false, "list embedded cabinet responses")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fxinfo [flags] [effect-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the parameter layout of the multi-effect engine.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	eng := engine.New(48000)
	reg := eng.Registry()

	switch {
	case *list:
		for _, id := range reg.Types() {
			fmt.Println(strings.ToLower(reg.Metadata(id).Name))
		}
		return
	case *models:
		for i, m := range gru.Models() {
			fmt.Printf("%d\t%s\tlevel %.2f\n", i, m.Name, m.LevelAdjust)
		}
		return
	case *irs:
		for i, emb := range ir.Registry() {
			fmt.Printf("%d\t%s\t%d taps\n", i, emb.Name, len(emb.Samples))
		}
		return
	}

	want := map[string]bool{}
	for _, arg := range flag.Args() {
		want[strings.ToLower(arg)] = true
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	matched := 0
	for _, id := range reg.Types() {
		meta := reg.Metadata(id)
		if len(want) > 0 && !want[strings.ToLower(meta.Name)] {
			continue
		}
		matched++
		printEffect(w, meta)
	}
	w.Flush()

	if len(want) > 0 && matched < len(want) {
		fmt.Fprintln(os.Stderr, "fxinfo: unknown effect name; try -list")
		os.Exit(1)
	}
}

func printEffect(w *tabwriter.Writer, meta *effect.Metadata) {
	fmt.Fprintf(w, "%s (%s)\ttype %d\t%s\t%s\n",
		meta.Name, meta.ShortName, meta.Type, modeName(meta.Mode), meta.Description)
	for _, p := range meta.Params {
		rng := ""
		switch p.Kind {
		case effect.ParamEnum:
			rng = strings.Join(p.Options, "/")
		default:
			rng = fmt.Sprintf("%g..%g %s", p.Min, p.Max, p.Unit)
		}
		fmt.Fprintf(w, "  id %d\t%s\t%s\tdefault %g\n", p.ID, p.Name, strings.TrimSpace(rng), p.Default)
	}
	fmt.Fprintln(w)
}

func modeName(m effect.ChannelMode) string {
	switch m {
	case effect.ModeMono:
		return "mono"
	case effect.ModeStereo:
		return "stereo"
	default:
		return "mono/stereo"
	}
}
