package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/Mikhail-Beresnev/shared-ng/internal/client/api"
	"github.com/Mikhail-Beresnev/shared-ng/internal/config"
	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
)

// ExecuteUploadCommand uploads an image file and prints the server response.
func ExecuteUploadCommand(ctx context.Context, cfg *config.Config, filename string) {
	service, registry := newService(ctx, cfg)

	err := runUpload(ctx, service, filename, os.Stdout)

	finish(ctx, cfg, registry)

	if err != nil {
		logger.Fatalf(ctx, "Upload failed: %v", err)
	}
}

func runUpload(ctx context.Context, service api.Service, filename string, w io.Writer) error {
	file, err := os.Open(filepath.Clean(filename))
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	var reader io.Reader = file

	// Progress bar only when info output is visible.
	if logger.Level() <= zap.InfoLevel {
		bar := progressbar.DefaultBytes(info.Size(), "Uploading")
		defer bar.Close() //nolint:errcheck // Rendering failures do not affect the upload.

		reader = io.TeeReader(file, bar)
	}

	var uploadErr error

	service.UploadImage(ctx,
		&api.UploadFile{
			Name:   info.Name(),
			Reader: reader,
		},
		func(response *api.Response) {
			printResponse(w, response)
		},
		func(err error) {
			printFailure(w, err)

			uploadErr = err
		})

	return uploadErr
}
