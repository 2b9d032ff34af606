// Package normalize holds the small conversion helpers shared by the
// SCM drivers when mapping provider payloads onto the domain model.
package normalize

import "time"

// dateLayouts lists the timestamp formats observed across provider
// APIs. RFC3339 covers Gitea, GitHub and Gogs; the bare layout shows up
// in some self-hosted Gogs responses.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Date canonicalizes a provider timestamp to RFC3339. Values that
// match none of the known layouts are passed through unchanged rather
// than dropped, so the caller still sees what the provider sent.
func Date(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(time.RFC3339)
		}
	}
	return s
}

// OptString maps a provider string field to an optional model field:
// nil when the provider omitted the value, a pointer otherwise. The
// model never carries empty-string placeholders.
func OptString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
