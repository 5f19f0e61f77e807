package api

import (
	"MyStorage/internal/dto"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/dustin/go-humanize"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadImage sends r as the multipart field "file" and returns the stored URL.
// Non-image types and oversized files are rejected without a request.
func (c *Client) UploadImage(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error) {
	if err := c.validateImage(contentType, size); err != nil {
		return "", err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(name)))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", err
	}
	written, err := io.Copy(part, io.LimitReader(r, c.maxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload %s: %w", name, err)
	}
	if written > c.maxUploadBytes {
		return "", c.sizeError(written)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result dto.UploadResultDTO
	if err := c.do(req, "/upload", &result); err != nil {
		return "", err
	}
	return result.URL, nil
}

func (c *Client) validateImage(contentType string, size int64) error {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return NewValidationError("file", fmt.Sprintf("only images are allowed, got %q", contentType))
	}
	if size > c.maxUploadBytes {
		return c.sizeError(size)
	}
	return nil
}

func (c *Client) sizeError(size int64) error {
	return NewValidationError("file", fmt.Sprintf("file is %s, the limit is %s",
		humanize.IBytes(uint64(size)), humanize.IBytes(uint64(c.maxUploadBytes))))
}
