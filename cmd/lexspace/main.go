// Package main provides the lexspace CLI: it loads a YAML space description
// and answers rank questions about it without enumerating the space.
//
// Modes:
//   - COUNT  : lexspace -spec space.yaml -count
//   - UNRANK : lexspace -spec space.yaml -unrank 123456789
//   - RANK   : lexspace -spec space.yaml -rank "A,B|k0"
//   - LIST   : lexspace -spec space.yaml [-offset N] [-step K] [-limit L] [-worker i/k]
//
// Any mode's output can be checked against a golden file with -expect; on
// mismatch a unified diff is printed and the exit status is 1.
//
// Exit status: 0 success, 1 runtime failure or -expect mismatch, 2 usage
// error (bad flag, or a flag value such as -step 0 rejected after parsing).
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"

	"github.com/katalvlaran/lexspace/builder"
	"github.com/katalvlaran/lexspace/sampler"
	"github.com/katalvlaran/lexspace/space"
	"github.com/katalvlaran/lexspace/spacefile"
)

// Config holds the parsed command line.
type Config struct {
	specPath  string
	count     bool
	unrank    string
	rank      string
	offset    string
	step      string
	limit     int
	worker    string
	scanLimit int64
	sep       string
	expect    string
}

// errUsage marks command-line mistakes (exit status 2).
var errUsage = errors.New("usage")

func parseFlags(args []string) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("lexspace", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.specPath, "spec", "", "path to the YAML space description (required)")
	fs.BoolVar(&cfg.count, "count", false, "print the number of elements")
	fs.StringVar(&cfg.unrank, "unrank", "", "print the element at this rank")
	fs.StringVar(&cfg.rank, "rank", "", `print the rank of an element: items by ",", dimensions by "|"`)
	fs.StringVar(&cfg.offset, "offset", "0", "first rank of the listing")
	fs.StringVar(&cfg.step, "step", "1", "sampling stride of the listing")
	fs.IntVar(&cfg.limit, "limit", 10, "max elements to list (0 = until exhausted)")
	fs.StringVar(&cfg.worker, "worker", "", "list only worker i's share of k, as i/k")
	fs.Int64Var(&cfg.scanLimit, "scan-limit", 0, "override the file's scan limit (-1 = unbounded)")
	fs.StringVar(&cfg.sep, "sep", "", "separator between printed items")
	fs.StringVar(&cfg.expect, "expect", "", "compare output with this file; print a unified diff on mismatch")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	if cfg.specPath == "" {
		return cfg, fmt.Errorf("%w: -spec is required", errUsage)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	modes := 0
	for _, on := range []bool{cfg.count, cfg.unrank != "", cfg.rank != ""} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return cfg, fmt.Errorf("%w: -count, -unrank and -rank are mutually exclusive", errUsage)
	}
	if cfg.limit < 0 {
		return cfg, fmt.Errorf("%w: -limit must be ≥ 0", errUsage)
	}
	if cfg.scanLimit < -1 {
		return cfg, fmt.Errorf("%w: -scan-limit must be ≥ -1", errUsage)
	}

	return cfg, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lexspace: ")
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout io.Writer) int {
	cfg, err := parseFlags(args)
	if err != nil {
		log.Print(err)
		return 2
	}

	var out bytes.Buffer
	if err = execute(cfg, &out); err != nil {
		log.Print(err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}

	if cfg.expect == "" {
		_, _ = stdout.Write(out.Bytes())
		return 0
	}

	want, err := os.ReadFile(cfg.expect)
	if err != nil {
		log.Print(err)
		return 1
	}
	if d := unified(cfg.expect, "output", want, out.Bytes()); d != "" {
		_, _ = io.WriteString(stdout, d)
		return 1
	}

	return 0
}

func execute(cfg Config, w io.Writer) error {
	f, err := spacefile.LoadFile(cfg.specPath)
	if err != nil {
		return err
	}
	g, err := f.Generator()
	if err != nil {
		return err
	}

	switch {
	case cfg.count:
		_, err = fmt.Fprintln(w, g.Count())
		return err
	case cfg.unrank != "":
		r, err := parseBig("-unrank", cfg.unrank)
		if err != nil {
			return err
		}
		e, err := g.Unrank(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, e.Join(cfg.sep))
		return err
	case cfg.rank != "":
		r, err := g.Rank(parseElement(cfg.rank))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, r)
		return err
	}

	return list(cfg, g, w)
}

// list prints "<rank>\t<element>" lines of the sampled traversal.
func list(cfg Config, g *builder.Generator, w io.Writer) error {
	offset, err := parseBig("-offset", cfg.offset)
	if err != nil {
		return err
	}
	step, err := parseBig("-step", cfg.step)
	if err != nil {
		return err
	}
	if step.Sign() <= 0 {
		return fmt.Errorf("%w: -step must be ≥ 1", errUsage)
	}

	var extra []sampler.Option
	switch {
	case cfg.scanLimit == -1:
		extra = append(extra, sampler.WithUnboundedScan())
	case cfg.scanLimit > 0:
		extra = append(extra, sampler.WithScanLimit(uint64(cfg.scanLimit)))
	}

	if cfg.worker != "" {
		i, k, err := parseWorker(cfg.worker)
		if err != nil {
			return err
		}
		if g.Constrained() {
			log.Print("warning: a constraint makes worker shares restart the valid-element count")
		}
		ranges, err := sampler.AlignedRanges(g.Space(), k, offset, step)
		if errors.Is(err, sampler.ErrSpaceExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
		if i >= len(ranges) {
			return nil
		}
		// the range already starts on a sampled rank
		offset = ranges[i].Start
		extra = append(extra, sampler.WithEnd(ranges[i].End))
	}

	seq, err := g.LexOrderNthBig(offset, step, extra...)
	if err != nil {
		return err
	}
	n := 0
	for e, err := range seq.All() {
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "%v\t%s\n", seq.Rank(), e.Join(cfg.sep)); err != nil {
			return err
		}
		if n++; cfg.limit > 0 && n >= cfg.limit {
			break
		}
	}

	return nil
}

func parseBig(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s %q is not a non-negative integer", errUsage, name, s)
	}
	return v, nil
}

// parseElement splits "a,b|c" into the parts [[a b] [c]]. An empty part
// stands for an empty selection.
func parseElement(s string) space.Element {
	dims := strings.Split(s, "|")
	parts := make([][]string, len(dims))
	for i, d := range dims {
		if d == "" {
			parts[i] = []string{}
			continue
		}
		parts[i] = strings.Split(d, ",")
	}
	return space.NewElement(parts...)
}

// parseWorker parses "i/k" with 0 ≤ i < k.
func parseWorker(s string) (i, k int, err error) {
	a, b, ok := strings.Cut(s, "/")
	if ok {
		i, err = strconv.Atoi(a)
		if err == nil {
			k, err = strconv.Atoi(b)
		}
	}
	if !ok || err != nil || k < 1 || i < 0 || i >= k {
		return 0, 0, fmt.Errorf("%w: -worker %q: want i/k with 0 ≤ i < k", errUsage, s)
	}
	return i, k, nil
}

// unified returns a unified diff of want↦got, or "" when they are equal.
func unified(wantName, gotName string, want, got []byte) string {
	if bytes.Equal(want, got) {
		return ""
	}
	s, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(string(got)),
		FromFile: wantName,
		ToFile:   gotName,
		Context:  3,
	})
	if err != nil || s == "" {
		return fmt.Sprintf("--- %s\n+++ %s\n(outputs differ)\n", wantName, gotName)
	}
	return s
}
