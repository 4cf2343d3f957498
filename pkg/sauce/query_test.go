package sauce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuery(t *testing.T) {
	const path = "/rest/v1/sauce-username/jobs"

	tests := []struct {
		name     string
		opts     any
		expected string
	}{
		{name: "nil options", opts: nil, expected: path},
		{name: "nil pointer", opts: (*JobsOptions)(nil), expected: path},
		{name: "nothing present", opts: JobsOptions{}, expected: path},
		{name: "start travels as from", opts: JobsOptions{Start: String("1976-10-23")}, expected: path + "?from=1976-10-23"},
		{name: "end travels as to", opts: JobsOptions{End: String("1976-10-23")}, expected: path + "?to=1976-10-23"},
		{
			name:     "all job filters",
			opts:     JobsOptions{Full: Bool(true), Limit: Int(1), Skip: Int(0), Name: String("login test"), Start: String("214891200"), End: String("214975439"), Format: String("json")},
			expected: path + "?format=json&from=214891200&full=true&limit=1&name=login+test&skip=0&to=214975439",
		},
		{name: "false is present", opts: JobsOptions{Full: Bool(false)}, expected: path + "?full=false"},
		{name: "usage keeps start", opts: UsageOptions{Start: "1976-10-23", End: "1976-10-24"}, expected: path + "?end=1976-10-24&start=1976-10-23"},
		{name: "flag set", opts: TrendsOptions{AnalyticsFilter: AnalyticsFilter{Pretty: true}}, expected: path + "?pretty="},
		{name: "flag unset", opts: TrendsOptions{AnalyticsFilter: AnalyticsFilter{Pretty: false}}, expected: path},
		{name: "explicit empty job name is sent", opts: JobsOptions{Name: String("")}, expected: path + "?name="},
		{name: "analytics zero skip and size are omitted", opts: TestsOptions{Skip: 0, Size: 0}, expected: path},
		{name: "analytics skip travels as from", opts: TestsOptions{Skip: 20, Size: 10}, expected: path + "?from=20&size=10"},
		{name: "percent encoding", opts: ErrorTrendsOptions{AnalyticsFilter: AnalyticsFilter{Owner: "a&b=c"}}, expected: path + "?owner=a%26b%3Dc"},
		{name: "pointer options", opts: &UsageOptions{End: "2020-01-01"}, expected: path + "?end=2020-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeQuery(path, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEncodeQueryRejectsNonStruct(t *testing.T) {
	_, err := EncodeQuery("/x", 42)
	assert.Error(t, err)
}
