package sauce

// User is the account record returned by the users endpoint.
type User struct {
	ID                 string  `json:"id"`
	Username           string  `json:"username"`
	Name               string  `json:"name"`
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	Email              string  `json:"email"`
	AccessKey          string  `json:"access_key"`
	Minutes            float64 `json:"minutes"`
	Subscribed         bool    `json:"subscribed"`
	ParentUsername     string  `json:"parent"`
	ConcurrencyLimit   any     `json:"concurrency_limit"`
	CreationTime       int64   `json:"creation_time"`
	VerifiedEmail      bool    `json:"verified"`
	UserType           string  `json:"user_type"`
	ManualConcurrency  bool    `json:"manual_concurrency"`
	PreventEmailChange bool    `json:"prevent_email"`
}

// NewUser is the body for creating a sub account.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// ActivityCount is one row of the activity report.
type ActivityCount struct {
	All        int `json:"all"`
	InProgress int `json:"in progress"`
	Queued     int `json:"queued"`
}

// Activity reports running and queued jobs per sub account.
type Activity struct {
	Subaccounts map[string]ActivityCount `json:"subaccounts"`
	Totals      ActivityCount            `json:"totals"`
}

// Usage is the historical usage report. Each entry of Usage pairs a date with
// [jobs, seconds].
type Usage struct {
	Username string `json:"username"`
	Usage    []any  `json:"usage"`
}

// UsageOptions filters the usage report. Dates are YYYY-MM-DD.
type UsageOptions struct {
	Start string `url:"start,omitempty"`
	End   string `url:"end,omitempty"`
}

// Status describes whether the service is operational.
type Status struct {
	ServiceOperational bool    `json:"service_operational"`
	StatusMessage      string  `json:"status_message"`
	WaitTime           float64 `json:"wait_time"`
}

// Platform is one OS and browser combination offered by the service.
type Platform struct {
	APIName             string `json:"api_name"`
	AutomationBackend   string `json:"automation_backend"`
	Device              string `json:"device"`
	LatestStableVersion string `json:"latest_stable_version"`
	LongName            string `json:"long_name"`
	LongVersion         string `json:"long_version"`
	OS                  string `json:"os"`
	PreferredVersion    string `json:"preferred_version"`
	ShortVersion        string `json:"short_version"`
	SeleniumName        string `json:"selenium_name"`
}

// JSTestRequest starts JavaScript unit tests. Each platform is an
// [os, browser, version] triple.
type JSTestRequest struct {
	Platforms [][]string `json:"platforms"`
	URL       string     `json:"url"`
	Framework string     `json:"framework"`
}

// Job is a single test run.
type Job struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Build                 string         `json:"build"`
	Owner                 string         `json:"owner"`
	Status                string         `json:"status"`
	Error                 string         `json:"error"`
	Passed                *bool          `json:"passed"`
	Public                any            `json:"public"`
	Tags                  []string       `json:"tags"`
	CustomData            map[string]any `json:"custom-data"`
	Browser               string         `json:"browser"`
	BrowserVersion        string         `json:"browser_version"`
	BrowserShortVersion   string         `json:"browser_short_version"`
	OS                    string         `json:"os"`
	AutomationBackend     string         `json:"automation_backend"`
	VideoURL              string         `json:"video_url"`
	LogURL                string         `json:"log_url"`
	CreationTime          int64          `json:"creation_time"`
	StartTime             int64          `json:"start_time"`
	EndTime               int64          `json:"end_time"`
	ModificationTime      int64          `json:"modification_time"`
	CommandsNotSuccessful int            `json:"commands_not_successful"`
	Breakpointed          any            `json:"breakpointed"`
}

// JobsOptions filters the job listing. Start and End are unix timestamps and
// travel as "from" and "to". Every field is sent when non-nil, even when it
// points at a zero value: String("") yields "name=".
type JobsOptions struct {
	Full   *bool   `url:"full,omitempty"`
	Limit  *int    `url:"limit,omitempty"`
	Skip   *int    `url:"skip,omitempty"`
	Name   *string `url:"name,omitempty"`
	Start  *string `url:"from,omitempty"`
	End    *string `url:"to,omitempty"`
	Format *string `url:"format,omitempty"`
}

// JobUpdate holds the job attributes to change. Nil fields are left untouched.
type JobUpdate struct {
	Build      *string        `json:"build,omitempty"`
	CustomData map[string]any `json:"custom-data,omitempty"`
	Name       *string        `json:"name,omitempty"`
	Passed     *bool          `json:"passed,omitempty"`
	Public     *string        `json:"public,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
}

// StoredFile is one file in temporary storage.
type StoredFile struct {
	Name  string  `json:"name"`
	Size  int64   `json:"size"`
	MTime float64 `json:"mtime"`
	MD5   string  `json:"md5"`
}

// StoredFiles lists temporary storage.
type StoredFiles struct {
	Files []StoredFile `json:"files"`
}

// Tunnel describes a Sauce Connect tunnel.
type Tunnel struct {
	ID               string         `json:"id"`
	Owner            string         `json:"owner"`
	Status           string         `json:"status"`
	Host             string         `json:"host"`
	TunnelIdentifier string         `json:"tunnel_identifier"`
	CreationTime     int64          `json:"creation_time"`
	LaunchTime       int64          `json:"launch_time"`
	ShutdownTime     int64          `json:"shutdown_time"`
	SharedTunnel     bool           `json:"shared_tunnel"`
	DirectDomains    []string       `json:"direct_domains"`
	NoSSLBumpDomains []string       `json:"no_ssl_bump_domains"`
	DomainNames      []string       `json:"domain_names"`
	Metadata         map[string]any `json:"metadata"`
}

// AnalyticsFilter is shared by the analytics endpoints. Unlike the jobs
// listing, start and end keep their names on the wire, and empty values are
// left out.
type AnalyticsFilter struct {
	TimeRange string `url:"time_range,omitempty"`
	Start     string `url:"start,omitempty"`
	End       string `url:"end,omitempty"`
	Scope     string `url:"scope,omitempty"`
	Owner     string `url:"owner,omitempty"`
	Status    string `url:"status,omitempty"`
	Pretty    Flag   `url:"pretty,omitempty"`
}

// TrendsOptions filters test trends.
type TrendsOptions struct {
	AnalyticsFilter
	Interval string `url:"interval,omitempty"`
	OS       string `url:"os,omitempty"`
	Browser  string `url:"browser,omitempty"`
}

// ErrorTrendsOptions filters error and build trends.
type ErrorTrendsOptions struct {
	AnalyticsFilter
	OS      string `url:"os,omitempty"`
	Browser string `url:"browser,omitempty"`
}

// TestsOptions filters the analytics test listing. Skip travels as "from".
// Like every analytics filter, zero values are omitted, so Skip 0 and Size 0
// are never sent.
type TestsOptions struct {
	AnalyticsFilter
	Size         int    `url:"size,omitempty"`
	Error        string `url:"error,omitempty"`
	Build        string `url:"build,omitempty"`
	Skip         int    `url:"from,omitempty"`
	MissingBuild Flag   `url:"missing_build,omitempty"`
}

// ConcurrencyOptions filters concurrency insights.
type ConcurrencyOptions struct {
	AnalyticsFilter
	Interval string `url:"interval,omitempty"`
}
