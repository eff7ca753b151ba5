package clickscribe

import (
	"net/url"
	"strings"
)

// DefaultEndpoint is the local service that receives captured labels.
const DefaultEndpoint = "http://127.0.0.1:8000"

// TitleParam is the query parameter carrying the label.
const TitleParam = "auto_title"

// TargetURL appends label to endpoint as the auto_title query parameter.
// The label is percent-encoded as UTF-8 with spaces written as %20.
//
// Returns EINVALID if the endpoint is not an absolute http(s) URL or the label
// is empty.
func TargetURL(endpoint, label string) (string, error) {
	if err := ValidateEndpoint(endpoint); err != nil {
		return "", err
	}
	if label == "" {
		return "", Errorf(EINVALID, "label is empty")
	}

	return withTitle(endpoint, label), nil
}

// withTitle appends the auto_title parameter to an already validated endpoint.
func withTitle(endpoint, label string) string {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + TitleParam + "=" + EscapeLabel(label)
}

// ValidateEndpoint returns EINVALID unless endpoint is an absolute http or
// https URL with a host and no fragment.
func ValidateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return Errorf(EINVALID, "invalid endpoint %q: %v", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "endpoint %q must use http or https", endpoint)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "endpoint %q has no host", endpoint)
	}
	if u.Fragment != "" || strings.Contains(endpoint, "#") {
		return Errorf(EINVALID, "endpoint %q must not have a fragment", endpoint)
	}
	return nil
}

// EscapeLabel percent-encodes s for use as a query value.
// QueryEscape already encodes a literal '+' as %2B, so every remaining '+'
// stands for a space.
func EscapeLabel(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
