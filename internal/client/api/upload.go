package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
	"github.com/Mikhail-Beresnev/shared-ng/internal/utils"
)

// UploadFile is an image to upload.
type UploadFile struct {
	// Name is the filename reported to the server.
	Name string
	// Reader supplies the file content.
	Reader io.Reader
}

// UploadSuccessCallback receives the server response of a successful upload.
type UploadSuccessCallback func(response *Response)

// UploadErrorCallback receives the failure of an upload.
type UploadErrorCallback func(err error)

//nolint:gochecknoglobals // Stateless replacer.
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// UploadImage posts file as a multipart form to the upload endpoint.
// The outcome goes to onSuccess or onError; without onError failures are logged.
func (s *ServiceImpl) UploadImage(
	ctx context.Context,
	file *UploadFile,
	onSuccess UploadSuccessCallback,
	onError UploadErrorCallback,
) {
	ctx = logger.WithName(ctx, "upload")

	response, err := s.upload(ctx, file)
	if err != nil {
		if onError != nil {
			onError(err)
		} else {
			logger.ErrorKV(ctx, "Failed to upload image", "uri", s.uploadImageURI, "error", err)
		}

		return
	}

	if onSuccess != nil {
		onSuccess(response)
	}
}

func (s *ServiceImpl) upload(ctx context.Context, file *UploadFile) (*Response, error) {
	if file == nil || file.Reader == nil {
		return nil, ErrNilUploadFile
	}

	body, contentType, err := buildMultipartBody(file, s.maxUploadSize)
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Uploading image",
		"file", file.Name,
		"size", humanize.Bytes(uint64(body.Len())), //nolint:gosec // Buffer length is never negative.
		"uri", s.uploadImageURI)

	options := RequestOptions{
		Header: http.Header{contentTypeHeader: []string{contentType}},
	}

	return s.raw.fetch(ctx, http.MethodPost, s.uploadImageURI, options, body)
}

// buildMultipartBody writes file under the "file" field.
// A maxSize of zero or less disables the size check.
func buildMultipartBody(file *UploadFile, maxSize int64) (*bytes.Buffer, string, error) {
	var (
		body   bytes.Buffer
		writer = multipart.NewWriter(&body)
		name   = filepath.Base(file.Name)
	)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		uploadFileField, quoteEscaper.Replace(name)))
	header.Set(contentTypeHeader, utils.ContentTypeByFilename(name))

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create multipart part: %w", err)
	}

	reader := file.Reader
	if maxSize > 0 {
		reader = io.LimitReader(file.Reader, maxSize+1)
	}

	written, err := io.Copy(part, reader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload file: %w", err)
	}

	if maxSize > 0 && written > maxSize {
		return nil, "", fmt.Errorf("%w: '%s' exceeds %s", ErrUploadTooLarge, name,
			humanize.Bytes(uint64(maxSize))) //nolint:gosec // Checked positive above.
	}

	if err = writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return &body, writer.FormDataContentType(), nil
}
