package sauce

import "context"

// Analytics queries test analytics and concurrency insights.
type Analytics struct {
	client *Client
}

// GetTestTrends returns test counts bucketed over time.
func (a *Analytics) GetTestTrends(ctx context.Context, opts TrendsOptions) (Result, error) {
	return a.client.get(ctx, "/rest/v1/analytics/trends/tests", opts)
}

// GetErrorTrends returns the most frequent errors.
func (a *Analytics) GetErrorTrends(ctx context.Context, opts ErrorTrendsOptions) (Result, error) {
	return a.client.get(ctx, "/rest/v1/analytics/trends/errors", opts)
}

// GetBuildTrends returns test results grouped by build.
func (a *Analytics) GetBuildTrends(ctx context.Context, opts ErrorTrendsOptions) (Result, error) {
	return a.client.get(ctx, "/rest/v1/analytics/trends/builds_tests", opts)
}

// GetTests lists tests matching the filter.
func (a *Analytics) GetTests(ctx context.Context, opts TestsOptions) (Result, error) {
	return a.client.get(ctx, "/rest/v1/analytics/tests", opts)
}

// GetConcurrency returns concurrency usage over time.
func (a *Analytics) GetConcurrency(ctx context.Context, opts ConcurrencyOptions) (Result, error) {
	return a.client.get(ctx, "/rest/v1/analytics/insights/concurrency", opts)
}
