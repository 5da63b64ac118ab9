package avatar

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
)

// GravatarURL derives the default avatar for a fresh registration.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?d=identicon", md5.Sum([]byte(normalized)))
}

// Uploader stores an uploaded avatar image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// DirUploader writes avatars to a local directory served at baseURL.
type DirUploader struct {
	dir     string
	baseURL string
}

func NewDirUploader(dir, baseURL string) *DirUploader {
	return &DirUploader{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (u *DirUploader) Upload(_ context.Context, name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", customErrors.WrapInternal(err, "create avatar dir")
	}

	fileName := sanitize(name) + ".png"
	f, err := os.Create(filepath.Join(u.dir, fileName))
	if err != nil {
		return "", customErrors.WrapInternal(err, "create avatar file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", customErrors.WrapInternal(err, "write avatar file")
	}
	return u.baseURL + "/" + fileName, nil
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, name)
}
