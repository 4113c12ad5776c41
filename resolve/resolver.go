// Package resolve maps a citation's source key to the section it came
// from, normalizing the service's ambiguous wire format.
package resolve

import (
	"context"
	"strings"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
	"github.com/MarkRogolino07/pdf-analyze/cache"
)

// NoMatchSentinel is the literal text the service returns when a
// citation does not resolve to any section. It is a normal outcome, not
// an error. A structured found/not-found response would remove the need
// for this; until the service grows one, the sentinel is part of the
// wire contract.
const NoMatchSentinel = "No matching section found"

// Normalize strips exactly one layer of double quoting from raw, if
// present. The service returns either a JSON-quoted section id or the
// bare sentinel text, so a single unquote is the only safe
// transformation.
func Normalize(raw string) string {
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// Resolver resolves citation source keys through the shared cache, so
// repeated lookups for the same citation share one request.
type Resolver struct {
	Cache     *cache.Store
	Citations pdfanalyze.CitationService
}

// NewResolver creates a Resolver.
func NewResolver(store *cache.Store, citations pdfanalyze.CitationService) *Resolver {
	return &Resolver{Cache: store, Citations: citations}
}

// Resolve maps sourceKey to a section reference. An empty source key
// resolves to the zero SectionRef without touching the service. A
// sentinel response also yields the zero SectionRef; transport and
// protocol failures are returned as errors, so callers can distinguish
// "resolved to nothing" from "resolution failed".
//
// The returned reference carries only a section id: the current wire
// contract does not say which document the section belongs to, so the
// caller must supply that context itself.
func (r *Resolver) Resolve(ctx context.Context, sourceKey string) (pdfanalyze.SectionRef, error) {
	if sourceKey == "" {
		return pdfanalyze.SectionRef{}, nil
	}

	raw, err := cache.Query(ctx, r.Cache, pdfanalyze.CitationCacheKey(sourceKey), func(ctx context.Context) (string, error) {
		return r.Citations.ResolveCitationRaw(ctx, sourceKey)
	})
	if err != nil {
		return pdfanalyze.SectionRef{}, err
	}

	id := Normalize(raw)
	if id == NoMatchSentinel {
		return pdfanalyze.SectionRef{}, nil
	}
	return pdfanalyze.SectionRef{SectionID: id}, nil
}
