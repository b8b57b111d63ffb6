// Package tagquery encodes a tag selection into the `tags` URL query
// parameter and back.
//
// Tags are joined with ",". Inside a tag, "%" and "," are escaped as "%25"
// and "%2C" so that a tag containing a comma survives a round trip. Tags
// without those characters are written literally, e.g. "urgent,assignment".
package tagquery

import (
	"net/url"
	"strings"
)

// Param is the query parameter carrying the selection.
const Param = "tags"

const separator = ","

var (
	escaper   = strings.NewReplacer("%", "%25", ",", "%2C")
	unescaper = strings.NewReplacer("%2C", ",", "%2c", ",", "%25", "%")
)

// Join encodes tags as a single parameter value. It returns "" for an empty
// selection.
func Join(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = escaper.Replace(t)
	}
	return strings.Join(parts, separator)
}

// Split decodes a parameter value. Empty segments and repeated tags are
// dropped, first occurrence wins. An empty value yields nil.
func Split(value string) []string {
	if value == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(value, separator) {
		if part == "" {
			continue
		}
		tag := unescaper.Replace(part)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Decode reads the selection from query. A missing, empty or malformed
// parameter yields an empty selection.
func Decode(query url.Values) []string {
	return Split(query.Get(Param))
}

// Encode writes the selection into query. An empty selection removes the
// parameter entirely instead of leaving `tags=` behind.
func Encode(query url.Values, tags []string) {
	if len(tags) == 0 {
		query.Del(Param)
		return
	}
	query.Set(Param, Join(tags))
}

// ParseRawQuery decodes the selection from a raw query string such as
// "tags=urgent,assignment&policy=and".
func ParseRawQuery(raw string) []string {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return nil
	}
	return Decode(values)
}

// RawQuery returns the canonical query string for tags: "" when empty,
// otherwise "tags=<value>" with the value query-escaped.
func RawQuery(tags []string) string {
	values := url.Values{}
	Encode(values, tags)
	return values.Encode()
}
