package handlers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strings"
)

const maxImportFileSize = 10 * 1024 * 1024 // 10MB

var allowedImportExtensions = []string{".csv", ".xls", ".xlsx"}

// validateImportFile checks an uploaded customer file before it is relayed.
// The remote API parses the contents; only size and extension are checked here.
func validateImportFile(header *multipart.FileHeader) error {
	if header.Size > maxImportFileSize {
		return fmt.Errorf("file size exceeds maximum allowed size of %d bytes", maxImportFileSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !slices.Contains(allowedImportExtensions, ext) {
		return fmt.Errorf("file type not allowed. Allowed types: %s", strings.Join(allowedImportExtensions, ", "))
	}
	return nil
}
