package ftc

import (
	"net/url"
	"strconv"
	"strings"
)

// query accumulates URL query parameters in insertion order.
// url.Values sorts keys on Encode, which would reorder parameters and
// make built URLs depend on parameter names rather than the order each
// endpoint documents, so ordering is kept explicit here.
type query struct {
	params []queryParam
}

type queryParam struct {
	key   string
	value string
}

// Set appends a string parameter. Empty values are omitted entirely.
func (q *query) Set(key, value string) {
	if value == "" {
		return
	}
	q.params = append(q.params, queryParam{key: key, value: value})
}

// SetInt appends an integer parameter. Zero is the unset sentinel and
// is omitted entirely.
func (q *query) SetInt(key string, value int) {
	if value == 0 {
		return
	}
	q.params = append(q.params, queryParam{key: key, value: strconv.Itoa(value)})
}

// Empty reports whether no parameters have been set.
func (q *query) Empty() bool {
	return q == nil || len(q.params) == 0
}

// Encode renders the parameters as a query string, preserving the order
// they were set in.
func (q *query) Encode() string {
	if q.Empty() {
		return ""
	}
	var b strings.Builder
	for i, p := range q.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
