package cli

import (
	"context"
	"os"
	"path/filepath"
)

// Upload reads a local file and pushes it through the file service's
// presigned-URL flow.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: upload <path>")
		return nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		printlnFn("Could not read file:", err.Error())
		return err
	}

	stored, err := a.files.Upload(ctx, filepath.Base(args[0]), data)
	if err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}

	printlnFn("Uploaded as", stored.Key)
	return nil
}
