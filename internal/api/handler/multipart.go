package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// maxImageBytes caps uploaded picture size before it reaches the blob store.
const maxImageBytes = 10 << 20

// readImagePart reads the named multipart file part and returns its bytes and
// declared media type.
func readImagePart(c echo.Context, name string) ([]byte, string, error) {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("missing %q file part", name))
	}
	if fh.Size > maxImageBytes {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "image too large")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "unreadable file part")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "unreadable file part")
	}
	if len(data) > maxImageBytes {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "image too large")
	}

	mediaType := fh.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return data, mediaType, nil
}
