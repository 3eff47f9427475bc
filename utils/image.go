package utils

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotAnImage = errors.New("uploaded data is not a valid image")

// SaveBase64Image decodes a (possibly data-URL prefixed) base64 image,
// validates its content type, and writes it into folder under a unique
// name. Returns the path relative to the uploads root for storage.
func SaveBase64Image(b64, folder string) (string, error) {
	if i := strings.IndexByte(b64, ','); i >= 0 {
		b64 = b64[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", err
	}
	if len(data) < 100 {
		return "", ErrNotAnImage
	}

	contentType := http.DetectContentType(data)
	var ext string
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	default:
		return "", ErrNotAnImage
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	path := filepath.Join(folder, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
