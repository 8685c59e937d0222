// Package pagelabel assembles a labelled training corpus for a text
// generation model from webpage-export documents. Titles are decomposed
// into store name and page template, bodies are scanned for locations and
// domain keywords, and structural document trees are flattened to text.
//
// This package contains domain types, interfaces and the pure extraction
// pipeline following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// sqlite/, gemini/, goquery/).
package pagelabel
