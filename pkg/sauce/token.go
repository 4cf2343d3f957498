package sauce

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
)

// AuthToken computes the token that grants access to one job's assets without
// the access key: the hex HMAC-MD5 of jobID keyed by key, or by
// key + ":" + dateRange when dateRange is set. key is "username:access_key".
//
// The digest is one-way, so the token can be embedded in shared URLs. A date
// range yields a different token that the service only accepts for that range.
func AuthToken(jobID, key, dateRange string) string {
	if dateRange != "" {
		key = key + ":" + dateRange
	}
	mac := hmac.New(md5.New, []byte(key))
	mac.Write([]byte(jobID))
	return hex.EncodeToString(mac.Sum(nil))
}
