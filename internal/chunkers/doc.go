// Package chunkers provides the built-in chunking strategies.
//
// Each strategy splits extracted text on its own boundary unit (word,
// sentence, paragraph, page, or semantic group) and never splits a unit
// across chunks. Strategies are selected by name through New.
package chunkers
