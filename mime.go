package rdfclosure

import (
	"path/filepath"
	"strings"
)

// mimeParser maps a Content-Type to the parser name responsible for it
// (spec.md §4.9 "-i auto"), following the teacher's mime.go dispatch table.
var mimeParser = map[string]string{
	"text/turtle":         "turtle",
	"text/n3":             "turtle",
	"application/ld+json": "jsonld",
}

// mimeRdfExt maps a file extension to its canonical Content-Type.
var mimeRdfExt = map[string]string{
	".ttl":    "text/turtle",
	".n3":     "text/n3",
	".jsonld": "application/ld+json",
}

// GuessMimeType infers a Content-Type from a file name's extension, used by
// the CLI's "-i auto" and by the owl:imports resolver when a server omits
// Content-Type.
func GuessMimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mt, ok := mimeRdfExt[ext]; ok {
		return mt
	}
	return ""
}

// parserFor resolves a Content-Type (possibly with a ";charset=..." suffix)
// to a parser name, defaulting to "turtle" as the most common RDF
// serialisation on the web.
func parserFor(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(contentType)
	if name, ok := mimeParser[contentType]; ok {
		return name
	}
	return "turtle"
}
