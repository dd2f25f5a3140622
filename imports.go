package rdfclosure

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gon3 "github.com/deiu/gon3"
	jsonld "github.com/linkeddata/gojsonld"
	"go.uber.org/zap"
)

// NewHTTPClient builds the client used to fetch owl:imports targets,
// following the teacher's NewHttpClient(skipVerify) pattern: skipVerify
// disables TLS certificate verification for test fixtures served over a
// self-signed endpoint.
func NewHTTPClient(skipVerify bool) *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: skipVerify},
		},
	}
}

// ResolveImports repeatedly scans graph for (_, owl:imports, U) triples,
// removes each one, fetches U over client, parses the response into graph,
// and keeps going until no (*, owl:imports, *) triple remains - including
// ones pulled in transitively by an import itself (spec.md §4.10). It must
// run before Expand; Expand never follows owl:imports itself.
func ResolveImports(graph *Graph, client *http.Client, logger *zap.Logger) error {
	if client == nil {
		client = NewHTTPClient(false)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	fetched := make(map[string]bool)

	for {
		pending := graph.Triples(nil, OWLImports, nil)
		if len(pending) == 0 {
			return nil
		}
		t := pending[0]
		graph.RemoveTriple(t)

		res, ok := t.Object.(*Resource)
		if !ok {
			continue
		}
		if fetched[res.URI] {
			continue
		}
		fetched[res.URI] = true

		logger.Debug("owl:imports: fetching", zap.String("uri", res.URI))
		if err := fetchInto(graph, client, res.URI); err != nil {
			logger.Warn("owl:imports: fetch failed", zap.String("uri", res.URI), zap.Error(err))
		}
	}
}

func fetchInto(graph *Graph, client *http.Client, uri string) error {
	req, err := http.NewRequest("GET", uri, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/turtle;q=1,application/ld+json;q=0.8")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: HTTP %d", uri, resp.StatusCode)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = GuessMimeType(uri)
	}
	return ParseInto(graph, resp.Body, parserFor(contentType), uri)
}

// ParseInto parses reader (in the named format, "turtle" or "jsonld") into
// graph, using the gon3 and gojsonld parsers the teacher's dataset.go
// dispatched on (spec.md §4.9 C12, §4.10 C11).
func ParseInto(graph *Graph, reader io.Reader, format, base string) error {
	switch format {
	case "jsonld":
		return parseJSONLDInto(graph, reader)
	default:
		return parseTurtleInto(graph, reader, base)
	}
}

func parseTurtleInto(graph *Graph, reader io.Reader, base string) error {
	parser, err := gon3.NewParser(base).Parse(reader)
	if err != nil {
		return err
	}
	for tr := range parser.IterTriples() {
		graph.Add(foreignTerm(tr.Subject), foreignTerm(tr.Predicate), foreignTerm(tr.Object))
	}
	return nil
}

func parseJSONLDInto(graph *Graph, reader io.Reader) error {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(reader); err != nil {
		return err
	}
	data, err := jsonld.ReadJSON(buf.Bytes())
	if err != nil {
		return err
	}
	opts := &jsonld.Options{ProduceGeneralizedRdf: true}
	ds, err := jsonld.ToRDF(data, opts)
	if err != nil {
		return err
	}
	for tr := range ds.IterTriples() {
		graph.Add(foreignTerm(tr.Subject), foreignTerm(tr.Predicate), foreignTerm(tr.Object))
	}
	return nil
}

// foreignTerm converts a term from gon3 or gojsonld into our own Term,
// reparsing its lexical rendering rather than depending on either library's
// internal field layout: both render IRIs as "<...>", blank nodes as
// "_:...", and literals as a quoted lexical form with an optional "@lang"
// or "^^<datatype>" suffix, matching the N-Triples conventions both
// libraries were built against.
func foreignTerm(t fmt.Stringer) Term {
	return termFromLexical(t.String())
}

func termFromLexical(s string) Term {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">"):
		return NewResource(s[1 : len(s)-1])
	case strings.HasPrefix(s, "_:"):
		return NewBlankNode(s[2:])
	case strings.HasPrefix(s, "\""):
		return parseLexicalLiteral(s)
	default:
		return NewResource(s)
	}
}

func parseLexicalLiteral(s string) *Literal {
	end := strings.LastIndexByte(s, '"')
	if end <= 0 {
		return NewLiteral(strings.Trim(s, "\""))
	}
	value := s[1:end]
	rest := s[end+1:]
	switch {
	case strings.HasPrefix(rest, "@"):
		return NewLiteral(value, rest[1:])
	case strings.HasPrefix(rest, "^^"):
		dt := strings.Trim(rest[2:], "<>")
		return NewTypedLiteral(value, NewResource(dt))
	default:
		return NewLiteral(value)
	}
}
