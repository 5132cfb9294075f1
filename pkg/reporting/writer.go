/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: Writes rendered reports to an output directory. Files are named after the
generation timestamp and the algorithm so successive runs never overwrite each other.
*/

package reporting

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// WriteReport renders report into dir and returns the path of the written file
// Files are always written without terminal colors.
// Filename: 2024-06-11_01-30-00_lem2.json
func WriteReport(dir string, report *Report, format Format) (string, error) {
	renderer, err := NewRenderer(format, false)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, report); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	timestamp := report.GeneratedAt.Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.%s", timestamp, report.Algorithm, renderer.format.Extension())
	filePath := filepath.Join(dir, filename)

	if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return filePath, nil
}
