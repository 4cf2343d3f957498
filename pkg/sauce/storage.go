package sauce

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/h2non/filetype"
)

// OctetStream is the content type of storage uploads.
const OctetStream = "application/octet-stream"

// Storage manages the account's temporary file storage.
type Storage struct {
	client *Client
}

type uploadOptions struct {
	Overwrite bool `url:"overwrite"`
}

// Upload stores the contents of r as name. With overwrite false the service
// rejects names that already exist.
func (s *Storage) Upload(ctx context.Context, name string, r io.Reader, overwrite bool) (Result, error) {
	if r == nil {
		r = bytes.NewReader(nil)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read upload %s: %w", name, err)
	}

	endpoint, err := EncodeQuery(
		fmt.Sprintf("/rest/v1/storage/%s/%s", s.client.Username(), url.PathEscape(name)),
		uploadOptions{Overwrite: overwrite},
	)
	if err != nil {
		return nil, err
	}

	event := s.client.logger.Debug().Str("name", name).Int("bytes", len(body))
	if kind := DetectKind(body); kind != "" {
		event = event.Str("kind", kind)
	}
	event.Msg("uploading to temporary storage")

	return s.client.Do(ctx, http.MethodPost, endpoint, body, OctetStream)
}

// DetectKind returns the MIME type recognised from the leading bytes of an
// upload, or "" when unknown. It is diagnostic only: uploads are always sent
// as OctetStream.
func DetectKind(head []byte) string {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

// UploadFile uploads the file at path under its base name.
func (s *Storage) UploadFile(ctx context.Context, path string, overwrite bool) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()
	return s.Upload(ctx, filepath.Base(path), f, overwrite)
}

// GetStoredFiles lists the files in temporary storage.
func (s *Storage) GetStoredFiles(ctx context.Context) (StoredFiles, error) {
	endpoint := fmt.Sprintf("/rest/v1/storage/%s", s.client.Username())
	return decodeAs[StoredFiles](s.client.get(ctx, endpoint, nil))
}
