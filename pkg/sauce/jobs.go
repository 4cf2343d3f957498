package sauce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Jobs manages test runs, their assets and share links.
type Jobs struct {
	client *Client
}

func (j *Jobs) jobPath(jobID string) string {
	return fmt.Sprintf("/rest/v1/%s/jobs/%s", j.client.Username(), url.PathEscape(jobID))
}

// GetJobs lists the user's jobs.
func (j *Jobs) GetJobs(ctx context.Context, opts JobsOptions) ([]Job, error) {
	endpoint := fmt.Sprintf("/rest/v1/%s/jobs", j.client.Username())
	return decodeAs[[]Job](j.client.get(ctx, endpoint, opts))
}

// ListJobIDs returns only the IDs of the user's jobs.
func (j *Jobs) ListJobIDs(ctx context.Context) ([]string, error) {
	jobs, err := j.GetJobs(ctx, JobsOptions{})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	return ids, nil
}

// GetJob returns a single job.
func (j *Jobs) GetJob(ctx context.Context, jobID string) (Job, error) {
	return decodeAs[Job](j.client.get(ctx, j.jobPath(jobID), nil))
}

// UpdateJob changes the attributes set in update.
func (j *Jobs) UpdateJob(ctx context.Context, jobID string, update JobUpdate) (Job, error) {
	return decodeAs[Job](j.client.send(ctx, http.MethodPut, j.jobPath(jobID), update))
}

// DeleteJob removes the job with all of its assets.
func (j *Jobs) DeleteJob(ctx context.Context, jobID string) (Result, error) {
	return j.client.send(ctx, http.MethodDelete, j.jobPath(jobID), nil)
}

// StopJob terminates a running job.
func (j *Jobs) StopJob(ctx context.Context, jobID string) (Job, error) {
	return decodeAs[Job](j.client.send(ctx, http.MethodPut, j.jobPath(jobID)+"/stop", nil))
}

// GetJobAssets lists the assets collected for a job.
func (j *Jobs) GetJobAssets(ctx context.Context, jobID string) (Result, error) {
	return j.client.get(ctx, j.jobPath(jobID)+"/assets", nil)
}

// DeleteJobAssets deletes every asset captured during a job.
func (j *Jobs) DeleteJobAssets(ctx context.Context, jobID string) (Result, error) {
	return j.client.send(ctx, http.MethodDelete, j.jobPath(jobID)+"/assets", nil)
}

// JobAssetURL returns the authenticated download URL of one asset.
func (j *Jobs) JobAssetURL(jobID, filename string) string {
	return j.client.creds.ServerURL() + j.jobPath(jobID) + "/assets/" + url.PathEscape(filename)
}

// SignedAssetURL returns the asset URL with an auth token, so it can be
// opened without credentials. A non-empty dateRange limits the link to that range.
func (j *Jobs) SignedAssetURL(jobID, filename, dateRange string) string {
	return j.JobAssetURL(jobID, filename) + "?auth=" + j.AuthToken(jobID, dateRange)
}

// JobLink returns a shareable link to the job's results page.
func (j *Jobs) JobLink(jobID, dateRange string) string {
	return fmt.Sprintf("%s/jobs/%s?auth=%s", j.client.creds.ServerURL(), url.PathEscape(jobID), j.AuthToken(jobID, dateRange))
}

// AuthToken returns the token granting access to the job's protected assets.
func (j *Jobs) AuthToken(jobID, dateRange string) string {
	return j.client.creds.AuthToken(jobID, dateRange)
}
