// Package pptx extracts plain text from PPTX files.
//
// PPTX is a ZIP archive with one DrawingML XML file per slide under
// ppt/slides/. Slides are separated by form feeds in the output so the
// page chunking strategy can split on slide boundaries.
package pptx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.TextReader = (*Reader)(nil)

// Reader handles PPTX documents.
type Reader struct{}

// New creates a new PPTX reader.
func New() *Reader {
	return &Reader{}
}

// Extensions returns the file extensions this reader handles.
func (r *Reader) Extensions() []string {
	return []string{"pptx"}
}

// Extract returns the slide text in slide order, slides separated by
// form feeds.
func (r *Reader) Extract(_ context.Context, path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open pptx archive: %w", err)
	}
	defer archive.Close()

	var slideFiles []*zip.File
	for _, file := range archive.File {
		if strings.HasPrefix(file.Name, "ppt/slides/slide") && strings.HasSuffix(file.Name, ".xml") {
			slideFiles = append(slideFiles, file)
		}
	}
	// Archive order is not guaranteed to match slide order, and the
	// names carry no zero padding: slide10 sorts before slide2
	// lexicographically.
	sort.Slice(slideFiles, func(i, j int) bool {
		ni, nj := slideNumber(slideFiles[i].Name), slideNumber(slideFiles[j].Name)
		if ni != nj {
			return ni < nj
		}
		return slideFiles[i].Name < slideFiles[j].Name
	})

	var slides []string
	for _, file := range slideFiles {
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file.Name, err)
		}

		text, err := parseSlideXML(content)
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", file.Name, err)
		}
		if text != "" {
			slides = append(slides, text)
		}
	}

	return strings.Join(slides, "\f"), nil
}

// slideNumber extracts the numeric index from a slide entry name such
// as "ppt/slides/slide12.xml". Names without a parseable index sort
// last, by name.
func slideNumber(name string) int {
	name = strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
	n, err := strconv.Atoi(name)
	if err != nil {
		return math.MaxInt
	}
	return n
}

// parseSlideXML collects the a:t text elements of one slide.
// A token walk avoids modelling the full DrawingML schema.
func parseSlideXML(content []byte) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(string(content)))

	var parts []string
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				parts = append(parts, string(t))
			}
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
