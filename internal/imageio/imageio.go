// Package imageio converts image files on disk into the self-contained
// data-URL handles stored inside a profile.
package imageio

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// maxImageBytes caps the file size at 2 MB so a single profile entry stays
// manageable on disk.
const maxImageBytes = 2 << 20

// EncodeFile reads an image file and returns a data URL embedding its
// content. The media type comes from the file extension, falling back to
// sniffing the content for extensionless files. Only image types are
// accepted.
func EncodeFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if info.Size() > maxImageBytes {
		return "", fmt.Errorf("image too large: %s is %d bytes (max %d)", path, info.Size(), maxImageBytes)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mt == "" {
		mt = http.DetectContentType(raw)
	}
	if !strings.HasPrefix(mt, "image/") {
		return "", fmt.Errorf("not an image file: %s", path)
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// IsDataURL reports whether a stored image handle is an embedded data URL
// rather than a plain path or empty.
func IsDataURL(handle string) bool {
	return strings.HasPrefix(handle, "data:")
}
