package tagquery_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-task-board/pkg/tagquery"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "urgent,assignment", tagquery.Join([]string{"urgent", "assignment"}))
	assert.Equal(t, "decision making", tagquery.Join([]string{"decision making"}))
	assert.Equal(t, "", tagquery.Join(nil))
	assert.Equal(t, "a%2Cb,c", tagquery.Join([]string{"a,b", "c"}))
	assert.Equal(t, "100%25", tagquery.Join([]string{"100%"}))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "empty", value: "", want: nil},
		{name: "single", value: "urgent", want: []string{"urgent"}},
		{name: "order kept", value: "urgent,assignment", want: []string{"urgent", "assignment"}},
		{name: "empty segments dropped", value: ",a,,b,", want: []string{"a", "b"}},
		{name: "only separators", value: ",,,", want: nil},
		{name: "duplicates dropped", value: "a,b,a", want: []string{"a", "b"}},
		{name: "escaped comma", value: "a%2Cb,c", want: []string{"a,b", "c"}},
		{name: "lowercase escape", value: "a%2cb", want: []string{"a,b"}},
		{name: "invalid escape kept", value: "50%off", want: []string{"50%off"}},
		{name: "unknown tags kept", value: "no-such-tag", want: []string{"no-such-tag"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tagquery.Split(tt.value))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	selections := [][]string{
		{"urgent", "assignment"},
		{"decision making", "accept"},
		{"a,b", "c"},
		{"%2C", "100%", "x%25y"},
		{"ünïcode", "with space"},
	}

	for _, sel := range selections {
		q := url.Values{}
		tagquery.Encode(q, sel)
		assert.Equal(t, sel, tagquery.Decode(q), "raw=%s", q.Encode())
		assert.Equal(t, sel, tagquery.ParseRawQuery(tagquery.RawQuery(sel)))
	}
}

func TestEncodeEmptyRemovesParam(t *testing.T) {
	q := url.Values{}
	q.Set("policy", "and")
	tagquery.Encode(q, []string{"urgent", "assignment"})
	assert.Equal(t, "urgent,assignment", q.Get(tagquery.Param))

	tagquery.Encode(q, nil)
	_, present := q[tagquery.Param]
	assert.False(t, present)
	assert.Equal(t, "policy=and", q.Encode())
}

func TestRawQuery(t *testing.T) {
	assert.Equal(t, "", tagquery.RawQuery(nil))
	assert.Equal(t, "tags=urgent%2Cassignment", tagquery.RawQuery([]string{"urgent", "assignment"}))
}

func TestParseRawQuery(t *testing.T) {
	got := tagquery.ParseRawQuery("?tags=urgent,assignment&policy=or")
	require.Len(t, got, 2)
	assert.Equal(t, []string{"urgent", "assignment"}, got)

	assert.Nil(t, tagquery.ParseRawQuery(""))
	assert.Nil(t, tagquery.ParseRawQuery("tags="))
	assert.Nil(t, tagquery.ParseRawQuery("tags=%zz"))
}
