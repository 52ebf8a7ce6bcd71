// Package upload stores uploaded files and serves them back. Files land in a
// local directory or, when configured, in a MinIO/S3 bucket.
package upload

import (
	"context"
	"io"
	"net/http"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Storage saves an upload under a fresh unique name and serves stored
// files by that name. ServeHTTP expects the request path to be "/<name>".
type Storage interface {
	Put(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
	http.Handler
}

var unsafeChars = regexp.MustCompile(`[^\p{L}\p{N}._-]+`)

// ObjectName returns "<uuid>-<clean base name>". The uuid keeps concurrent
// uploads of the same file apart.
func ObjectName(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "-"), "-.")
	if base == "" {
		return uuid.NewString()
	}
	return uuid.NewString() + "-" + base
}

// cleanKey maps a request path onto a stored name, rejecting anything that
// is not a single path element.
func cleanKey(p string) (string, bool) {
	key := strings.TrimPrefix(p, "/")
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", false
	}
	return key, true
}
