package jejak

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// Path templates of the tracking API, relative to the base endpoint. The
// {customer_id} placeholder is substituted with the percent-encoded
// customer identifier.
const (
	customerPath = "customers/{customer_id}"
	eventsPath   = "customers/{customer_id}/events"
)

const customerIDPlaceholder = "{customer_id}"

// resolvePath substitutes the customer identifier into a path template,
// percent-encoding it so identifiers containing slashes, spaces or other
// reserved characters cannot alter the request path.
func resolvePath(template, customerID string) string {
	return strings.Replace(template, customerIDPlaceholder, url.PathEscape(customerID), 1)
}

// newRequest builds a fully-formed API request: resolved URL, JSON body
// (when non-nil), content type, user agent and basic-auth credentials.
// Pure construction; no I/O.
func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	requestURL := c.baseURL + path

	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, requestURL, reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, requestURL, nil)
	}
	if err != nil {
		return nil, err
	}

	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.SetBasicAuth(c.siteID, c.apiKey)

	return req, nil
}
