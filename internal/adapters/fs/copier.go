package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/classmirror/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Copier = (*Copier)(nil)

// Copier implements ports.Copier with plain stream copies.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Copy streams src to dst, creating dst's parent directories, and
// returns the number of bytes written. An existing dst is truncated;
// the output root is write-only, nothing is read back.
func (c *Copier) Copy(src, dst string) (int64, error) {
	in, err := os.Open(src) //nolint:gosec // Paths come from enumeration under user-given roots
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	if err := c.EnsureDir(filepath.Dir(dst)); err != nil {
		return 0, err
	}

	out, err := os.Create(dst) //nolint:gosec // Destination is under the user-given output root
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to create output file"), "path", dst)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		copyErr := zerr.With(zerr.Wrap(err, "failed to copy file"), "from", src)
		return n, zerr.With(copyErr, "to", dst)
	}
	if err := out.Close(); err != nil {
		return n, zerr.With(zerr.Wrap(err, "failed to finalize output file"), "path", dst)
	}
	return n, nil
}

// EnsureDir creates dir and any missing parents.
func (c *Copier) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "dir", dir)
	}
	return nil
}
