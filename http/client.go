// Package http provides the HTTP client for the document ingestion and
// search service. The client is a pure mapping from call to outcome: no
// caching, no retries, and no default timeout. Caching belongs to the
// cache package; the absence of timeouts mirrors the service contract
// rather than an oversight, and callers that want one can supply their
// own http.Client.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	pdfanalyze "github.com/MarkRogolino07/pdf-analyze"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// Ensure Client implements the service interfaces at compile time.
var (
	_ pdfanalyze.DocumentService = (*Client)(nil)
	_ pdfanalyze.QueryService    = (*Client)(nil)
	_ pdfanalyze.CitationService = (*Client)(nil)
)

// Client talks to the backing service over HTTP+JSON.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client. Defaults to
// http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// NewClient creates a Client for the service at baseURL. An empty
// baseURL falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// documentJSON mirrors the service's document shape.
type documentJSON struct {
	DocID    string        `json:"docId"`
	Sections []sectionJSON `json:"sections"`
}

type sectionJSON struct {
	ID        string `json:"id"`
	ExtraInfo struct {
		Section          string `json:"Section"`
		MainSection      string `json:"MainSection"`
		SubsectionNumber string `json:"SubsectionNumber"`
	} `json:"extra_info"`
	Text string `json:"text"`
}

func (d *documentJSON) toDomain() *pdfanalyze.Document {
	doc := &pdfanalyze.Document{
		ID: d.DocID,
		// The service does not report ingestion status; synthesize
		// completed for every document it returns.
		Status:   pdfanalyze.StatusCompleted,
		Sections: make([]pdfanalyze.Section, 0, len(d.Sections)),
	}
	for _, s := range d.Sections {
		doc.Sections = append(doc.Sections, pdfanalyze.Section{
			ID:          s.ID,
			GroupLabel:  s.ExtraInfo.MainSection,
			SubLabel:    s.ExtraInfo.SubsectionNumber,
			CitationKey: s.ExtraInfo.Section,
			Text:        s.Text,
		})
	}
	return doc
}

// ListDocuments retrieves all documents known to the service.
func (c *Client) ListDocuments(ctx context.Context) ([]*pdfanalyze.Document, error) {
	body, err := c.get(ctx, "/documents")
	if err != nil {
		return nil, err
	}

	var raw []documentJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, pdfanalyze.Errorf(pdfanalyze.EPROTOCOL, "decoding document list: %s", err)
	}

	docs := make([]*pdfanalyze.Document, 0, len(raw))
	for i := range raw {
		docs = append(docs, raw[i].toDomain())
	}
	return docs, nil
}

// FindDocumentByID retrieves a single document with its sections.
// Returns ENOTFOUND if the document does not exist.
func (c *Client) FindDocumentByID(ctx context.Context, id string) (*pdfanalyze.Document, error) {
	if id == "" {
		return nil, pdfanalyze.Errorf(pdfanalyze.EINVALID, "document ID required")
	}

	body, err := c.get(ctx, "/documents/"+url.PathEscape(id))
	if err != nil {
		if pdfanalyze.ErrorStatus(err) == http.StatusNotFound {
			return nil, pdfanalyze.Errorf(pdfanalyze.ENOTFOUND, "document %q not found", id)
		}
		return nil, err
	}

	var raw documentJSON
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, pdfanalyze.Errorf(pdfanalyze.EPROTOCOL, "decoding document %q: %s", id, err)
	}
	return raw.toDomain(), nil
}

// UploadDocument submits file bytes as a multipart request and returns
// the service's receipt. On failure the raw response text is carried on
// the error: the service may answer with human-readable diagnostics
// rather than structured JSON.
func (c *Client) UploadDocument(ctx context.Context, filename string, data []byte) (*pdfanalyze.UploadReceipt, error) {
	if filename == "" {
		return nil, pdfanalyze.Errorf(pdfanalyze.EINVALID, "filename required")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, pdfanalyze.Errorf(pdfanalyze.EINTERNAL, "building multipart body: %s", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, pdfanalyze.Errorf(pdfanalyze.EINTERNAL, "building multipart body: %s", err)
	}
	if err := mw.Close(); err != nil {
		return nil, pdfanalyze.Errorf(pdfanalyze.EINTERNAL, "building multipart body: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/documents/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var raw struct {
		DocID   string `json:"doc_id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, pdfanalyze.Errorf(pdfanalyze.EPROTOCOL, "decoding upload receipt: %s", err)
	}
	return &pdfanalyze.UploadReceipt{DocID: raw.DocID, Message: raw.Message}, nil
}

// ResolveCitationRaw returns the raw response body for a citation
// lookup, verbatim. The body is either a JSON-quoted section id or the
// bare sentinel text "No matching section found"; normalization is the
// resolve package's job.
func (c *Client) ResolveCitationRaw(ctx context.Context, sourceKey string) (string, error) {
	if sourceKey == "" {
		return "", pdfanalyze.Errorf(pdfanalyze.EINVALID, "citation source key required")
	}

	body, err := c.get(ctx, "/section_by_citation/"+url.PathEscape(sourceKey))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// RunQuery submits a natural language query and returns the answer with
// citations.
func (c *Client) RunQuery(ctx context.Context, text string) (*pdfanalyze.QueryResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, pdfanalyze.Errorf(pdfanalyze.EINVALID, "query text required")
	}

	body, err := c.get(ctx, "/query?"+url.Values{"q": {text}}.Encode())
	if err != nil {
		return nil, err
	}

	var raw struct {
		Query     string `json:"query"`
		Response  string `json:"response"`
		Citations []struct {
			Source string `json:"source"`
			Text   string `json:"text"`
		} `json:"citations"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, pdfanalyze.Errorf(pdfanalyze.EPROTOCOL, "decoding query result: %s", err)
	}

	result := &pdfanalyze.QueryResult{
		QueryText:  raw.Query,
		AnswerText: raw.Response,
		Citations:  make([]pdfanalyze.Citation, 0, len(raw.Citations)),
	}
	for _, c := range raw.Citations {
		result.Citations = append(result.Citations, pdfanalyze.Citation{
			SourceKey: c.Source,
			Text:      c.Text,
		})
	}
	return result, nil
}

// get performs a GET against path and returns the response body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// do executes the request and maps non-success statuses to ETRANSPORT
// errors carrying the status code and raw body.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pdfanalyze.Errorf(pdfanalyze.ETRANSPORT, "request %s: %s", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pdfanalyze.Errorf(pdfanalyze.ETRANSPORT, "reading response from %s: %s", req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &pdfanalyze.Error{
			Code:       pdfanalyze.ETRANSPORT,
			Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
