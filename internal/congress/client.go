package congress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the Congress.gov v3 API root.
	DefaultBaseURL = "https://api.congress.gov/v3"

	userAgent      = "codex/1.0"
	apiKeyParam    = "api_key"
	defaultTimeout = 30 * time.Second
)

var (
	// ErrNoAPIKey is returned when no credential was configured.
	ErrNoAPIKey = errors.New("api key is not configured")
	// ErrReservedParam is returned when a caller tries to supply the
	// api_key query parameter itself.
	ErrReservedParam = errors.New(`query parameter "api_key" is reserved`)
)

// Param is a single query key/value pair.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered query parameter list. Order is preserved on the
// wire, unlike url.Values.
type Params []Param

// Encode renders the parameters as a query string in declaration order.
func (ps Params) Encode() string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// StatusError reports a non-2xx upstream response. URL carries no query
// string so the credential never appears in error output.
type StatusError struct {
	Status int
	URL    string
	Body   string
}

func (e *StatusError) Error() string {
	detail := fmt.Sprintf("HTTP error %d while requesting %q.", e.Status, e.URL)
	var parsed json.RawMessage
	if json.Unmarshal([]byte(e.Body), &parsed) == nil {
		compact, err := json.Marshal(parsed)
		if err == nil {
			return detail + " Response: " + string(compact)
		}
	}
	return detail + " Response body: " + e.Body
}

// Config holds the client's constructor inputs.
type Config struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// APIKey is the Congress.gov credential. May be empty; every call
	// then short-circuits with a configuration error.
	APIKey string
	// Timeout bounds a single request. Defaults to 30s.
	Timeout time.Duration
	// Logger receives diagnostic lines. Defaults to a discarding logger.
	Logger *logrus.Entry
}

// Client issues authenticated GET requests against the Congress.gov API.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *logrus.Entry
}

// New constructs a client from cfg.
func New(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Fetch issues a single GET to base+endpoint with the api_key credential
// prepended to params, and returns the raw response body. Failures come
// back as ErrNoAPIKey, ErrReservedParam, *StatusError or a transport
// error; nothing is ever retried.
func (c *Client) Fetch(ctx context.Context, endpoint string, params Params) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrNoAPIKey
	}
	for _, p := range params {
		if p.Key == apiKeyParam {
			return "", ErrReservedParam
		}
	}

	reqURL := c.baseURL + endpoint
	full := append(Params{{Key: apiKeyParam, Value: c.apiKey}}, params...)

	c.log.WithFields(logrus.Fields{"url": reqURL, "params": params.Encode()}).Debug("making Congress.gov request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL+"?"+full.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error carries the full request URL, credential included.
		// Rebuild the message around the query-less URL.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = fmt.Errorf("%s %q: %w", ue.Op, reqURL, ue.Err)
		}
		c.log.WithError(err).Error("Congress.gov request failed")
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.WithError(err).Error("reading Congress.gov response failed")
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serr := &StatusError{Status: resp.StatusCode, URL: reqURL, Body: string(body)}
		c.log.WithField("status", resp.StatusCode).WithField("url", reqURL).Error("Congress.gov returned an error status")
		return "", serr
	}

	return string(body), nil
}

// Get is the tool-boundary form of Fetch: it always returns text. On
// success that text is the upstream body verbatim; on any failure it is
// the normalized error document.
func (c *Client) Get(ctx context.Context, endpoint string, params Params) string {
	body, err := c.Fetch(ctx, endpoint, params)
	if err != nil {
		return ErrorDocument(err)
	}
	return body
}

// ErrorDocument flattens err into the single-key JSON error payload used
// across the tool boundary.
func ErrorDocument(err error) string {
	var msg string
	var serr *StatusError
	switch {
	case errors.Is(err, ErrNoAPIKey):
		msg = "API key is not configured."
	case errors.Is(err, ErrReservedParam):
		msg = `Query parameter "api_key" is reserved.`
	case errors.As(err, &serr):
		msg = serr.Error()
	default:
		msg = "An unexpected error occurred: " + err.Error()
	}
	doc, _ := json.Marshal(map[string]string{"error": msg})
	return string(doc)
}
