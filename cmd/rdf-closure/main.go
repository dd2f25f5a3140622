// Command rdf-closure computes the RDFS/OWL 2 RL deductive closure of a set
// of RDF files and serialises the result.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	rdfclosure "github.com/go-rdf/closure"
)

type cliFlags struct {
	rdfs     string
	owlrl    string
	extras   string
	axioms   string
	daxioms  string
	trimming string
	maximal  bool
	output   string
	input    string
	file     string
	verbose  bool
}

func main() {
	flags := &cliFlags{}

	cmd := &cobra.Command{
		Use:   "rdf-closure [FILES...]",
		Short: "Compute the RDFS/OWL 2 RL deductive closure of RDF data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, args)
		},
	}

	cmd.Flags().StringVarP(&flags.rdfs, "rdfs", "w", "no", "apply RDFS rules (yes/no)")
	cmd.Flags().StringVarP(&flags.owlrl, "owlrl", "r", "no", "apply OWL 2 RL rules (yes/no)")
	cmd.Flags().StringVarP(&flags.extras, "extras", "e", "no", "apply the OWL RL extension rules (yes/no)")
	cmd.Flags().StringVarP(&flags.axioms, "axioms", "a", "no", "inject static axiomatic triples (yes/no)")
	cmd.Flags().StringVarP(&flags.daxioms, "daxioms", "d", "no", "inject datatype axiomatic triples (yes/no)")
	cmd.Flags().StringVarP(&flags.trimming, "trimming", "t", "no", "remove extension scratch triples after closure (yes/no)")
	cmd.Flags().BoolVarP(&flags.maximal, "maximal", "m", false, "shorthand for rdfs+owlrl+extras+trimming all yes")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "turtle", "output format: turtle, json, xml")
	cmd.Flags().StringVarP(&flags.input, "input", "i", "auto", "input format: auto, turtle, xml, rdfa, json")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "-", "input file, - for stdin")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(flags *cliFlags, fileArgs []string) error {
	logger := newLogger(flags.verbose)
	defer logger.Sync()

	graph := rdfclosure.NewGraph("")

	sources := fileArgs
	if len(sources) == 0 {
		sources = []string{flags.file}
	}
	for _, src := range sources {
		if err := loadSource(graph, src, flags.input); err != nil {
			return fmt.Errorf("loading %s: %w", src, err)
		}
	}

	if err := rdfclosure.ResolveImports(graph, nil, logger); err != nil {
		return fmt.Errorf("resolving owl:imports: %w", err)
	}

	opts := rdfclosure.Options{Logger: logger}
	if flags.maximal {
		opts.RDFS, opts.OWLRL, opts.Extras, opts.Trimming = true, true, true, true
	} else {
		opts.RDFS = isYes(flags.rdfs)
		opts.OWLRL = isYes(flags.owlrl)
		opts.Extras = isYes(flags.extras)
		opts.Trimming = isYes(flags.trimming)
	}
	opts.Axioms = isYes(flags.axioms)
	opts.DatatypeAxioms = isYes(flags.daxioms)

	result, err := rdfclosure.Expand(graph, opts)
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		fmt.Fprintln(os.Stderr, e.String())
	}

	return serialize(graph, flags.output, os.Stdout)
}

func isYes(v string) bool {
	return strings.EqualFold(v, "yes") || strings.EqualFold(v, "true")
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func loadSource(graph *rdfclosure.Graph, src, inputFormat string) error {
	if src == "-" {
		format := inputFormat
		if format == "auto" {
			format = "turtle"
		}
		if format == "xml" || format == "rdfa" {
			return fmt.Errorf("input format %q is not supported by this build", format)
		}
		return rdfclosure.ParseInto(graph, os.Stdin, format, "")
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	format := inputFormat
	if format == "auto" {
		format = guessFormat(src, f)
	}
	if format == "xml" || format == "rdfa" {
		return fmt.Errorf("input format %q is not supported by this build", format)
	}
	return rdfclosure.ParseInto(graph, f, format, "")
}

func guessFormat(name string, f *os.File) string {
	switch rdfclosure.GuessMimeType(name) {
	case "application/ld+json":
		return "jsonld"
	case "text/turtle", "text/n3":
		return "turtle"
	}

	buf := make([]byte, 1)
	if n, _ := f.Read(buf); n == 1 && (buf[0] == '{' || buf[0] == '[') {
		f.Seek(0, io.SeekStart)
		return "jsonld"
	}
	f.Seek(0, io.SeekStart)
	return "turtle"
}

func serialize(graph *rdfclosure.Graph, format string, w io.Writer) error {
	switch format {
	case "json":
		return serializeJSON(graph, w)
	case "xml":
		return serializeXML(graph, w)
	default:
		return serializeTurtle(graph, w)
	}
}

func serializeTurtle(graph *rdfclosure.Graph, w io.Writer) error {
	for _, t := range graph.Snapshot() {
		if _, err := fmt.Fprintf(w, "%s %s %s .\n", t.Subject.String(), t.Predicate.String(), termNT(t.Object)); err != nil {
			return err
		}
	}
	return nil
}

func termNT(t rdfclosure.Term) string {
	return t.String()
}

func serializeJSON(graph *rdfclosure.Graph, w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	triples := graph.Snapshot()
	for i, t := range triples {
		fmt.Fprintf(&buf, "  {\"s\": %q, \"p\": %q, \"o\": %q}", t.Subject.String(), t.Predicate.String(), t.Object.String())
		if i != len(triples)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	_, err := w.Write(buf.Bytes())
	return err
}

func serializeXML(graph *rdfclosure.Graph, w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("<rdf:RDF xmlns:rdf=\"http://www.w3.org/1999/02/22-rdf-syntax-ns#\">\n")
	for _, t := range graph.Snapshot() {
		fmt.Fprintf(&buf, "  <rdf:Description rdf:about=%q><rdf:predicate rdf:resource=%q>%s</rdf:predicate></rdf:Description>\n",
			t.Subject.String(), t.Predicate.String(), t.Object.String())
	}
	buf.WriteString("</rdf:RDF>\n")
	_, err := w.Write(buf.Bytes())
	return err
}
