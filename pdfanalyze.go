// Package pdfanalyze provides a client for a document ingestion and
// search service. It lists uploaded documents, renders a document's
// sections as a navigable tree, submits natural language queries and
// resolves answer citations back to the sections they came from.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., http/, cache/, sqlite/).
package pdfanalyze
