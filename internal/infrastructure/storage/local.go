// Package storage manages uploaded product images on the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/inventory-console/inventory-api/internal/core/ports"
)

// fieldTag prefixes every generated asset name.
const fieldTag = "image"

// managedName matches names produced by Store: tag, millis, random suffix, extension.
var managedName = regexp.MustCompile(`^[a-z]+-\d+-\d+(\.[A-Za-z0-9]+)?$`)

// LocalAssets stores images in a directory and references them by URL path.
type LocalAssets struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

// NewLocalAssets creates the upload directory if needed. urlPrefix is the
// public path the directory is served under, e.g. "/uploads/".
func NewLocalAssets(dir, urlPrefix string) (*LocalAssets, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &LocalAssets{dir: dir, urlPrefix: urlPrefix, now: time.Now}, nil
}

// Store writes the upload under a name made of the field tag, the current
// time and a random suffix, keeping the original extension.
func (a *LocalAssets) Store(_ context.Context, upload ports.Upload) (string, error) {
	name := a.newName(upload.Filename)

	f, err := os.OpenFile(filepath.Join(a.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create asset: %w", err)
	}
	if _, err := io.Copy(f, upload.Content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write asset: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close asset: %w", err)
	}
	return a.urlPrefix + name, nil
}

// TryDelete removes the file behind ref. References outside the managed
// prefix or name pattern, and files that no longer exist, are ignored.
func (a *LocalAssets) TryDelete(_ context.Context, ref string) error {
	name, ok := a.managedFile(ref)
	if !ok {
		return nil
	}
	err := os.Remove(filepath.Join(a.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove asset: %w", err)
	}
	return nil
}

func (a *LocalAssets) newName(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	if !managedName.MatchString(fieldTag + "-0-0" + ext) {
		ext = ""
	}
	return fmt.Sprintf("%s-%d-%d%s", fieldTag, a.now().UnixMilli(), rand.Int64N(1e9), ext)
}

func (a *LocalAssets) managedFile(ref string) (string, bool) {
	name, ok := strings.CutPrefix(ref, a.urlPrefix)
	if !ok || name == "" || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	return name, managedName.MatchString(name)
}
