package errors

import (
	"net"
	"strconv"
	"strings"
	"unicode"
)

// MaxDimension bounds raster width and height. A mesh raster costs
// width*height*nodes weight evaluations, so requests beyond this are rejected
// rather than clamped.
const MaxDimension = 4096

// ValidateSize checks that a raster size is positive and within MaxDimension.
func ValidateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidSize, "size must be positive, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidSize, "size %dx%d exceeds maximum %d", width, height, MaxDimension)
	}
	return nil
}

// ValidateFilePath validates a user-supplied design or config file path.
//
// Validation rules:
//   - Path cannot be empty or blank
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateAddr validates a host:port network address such as ":8080" or
// "localhost:6379".
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "address cannot be empty")
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid address %q", addr)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return New(ErrCodeInvalidInput, "invalid port in address %q", addr)
	}
	return nil
}
