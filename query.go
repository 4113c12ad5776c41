package pdfanalyze

import "context"

// Citation is a reference produced by a query answer, pointing at a
// source passage via a source key string. SourceKey should equal some
// Section's CitationKey, but the service's data may be inconsistent, so
// equality is not guaranteed.
type Citation struct {
	SourceKey string `json:"sourceKey"`
	Text      string `json:"text"`
}

// QueryResult holds the answer to a natural language query together
// with the citations that back it.
type QueryResult struct {
	QueryText  string     `json:"queryText"`
	AnswerText string     `json:"answerText"`
	Citations  []Citation `json:"citations"`
}

// QueryService answers natural language queries over all ingested
// documents.
type QueryService interface {
	// RunQuery submits the query text and returns the answer with
	// citations.
	RunQuery(ctx context.Context, text string) (*QueryResult, error)
}

// CitationService maps a citation's source key to raw resolution text.
type CitationService interface {
	// ResolveCitationRaw returns the raw response body for a citation
	// lookup: either a JSON-quoted section id or the literal sentinel
	// text "No matching section found". The ambiguity is part of the
	// wire contract; callers normalize it (see the resolve package).
	ResolveCitationRaw(ctx context.Context, sourceKey string) (string, error)
}

// SectionRef identifies the section a citation resolved to. The zero
// value means the citation did not resolve to any section.
//
// The wire contract returns only a section id: the document the section
// belongs to must be supplied by the caller's context (for example, the
// document currently being viewed). Cross-document navigation is not
// possible with the current contract.
type SectionRef struct {
	SectionID string `json:"sectionId"`
}

// Found reports whether the reference points at a section.
func (r SectionRef) Found() bool { return r.SectionID != "" }

// QueryCacheKey returns the cache key for a query.
func QueryCacheKey(text string) string { return "query:" + text }

// CitationCacheKey returns the cache key for a citation resolution.
func CitationCacheKey(sourceKey string) string { return "citation:" + sourceKey }
