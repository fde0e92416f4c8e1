// Package formatters serialises chunks and their metadata into
// self-describing artifacts.
//
// Three formats are provided over the same metadata mapping: plain text
// with a front-matter header, JSON, and CSV. All three carry the
// identical field set for the same input; the choice is purely a
// serialisation concern.
package formatters
