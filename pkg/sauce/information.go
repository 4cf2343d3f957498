package sauce

import (
	"context"
	"fmt"
)

// Information exposes public data about the service. These endpoints do not
// need valid credentials.
type Information struct {
	client *Client
}

// GetStatus returns the current service status.
func (i *Information) GetStatus(ctx context.Context) (Status, error) {
	return decodeAs[Status](i.client.get(ctx, "/rest/v1/info/status", nil))
}

// GetPlatforms lists supported platforms for an automation API: "all",
// "webdriver" or "appium". An empty api means "all".
func (i *Information) GetPlatforms(ctx context.Context, api string) ([]Platform, error) {
	if api == "" {
		api = "all"
	}
	endpoint := fmt.Sprintf("/rest/v1/info/platforms/%s", api)
	return decodeAs[[]Platform](i.client.get(ctx, endpoint, nil))
}

// GetAppiumEOLDates maps Appium versions to their end-of-life as unix time.
func (i *Information) GetAppiumEOLDates(ctx context.Context) (Result, error) {
	return i.client.get(ctx, "/rest/v1/info/platforms/appium/eol", nil)
}
