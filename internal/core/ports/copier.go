package ports

// Copier performs the byte-level file operations of a run.
//
//go:generate go run go.uber.org/mock/mockgen -source=copier.go -destination=mocks/mock_copier.go -package=mocks
type Copier interface {
	// Copy streams the file at src to dst, creating dst's parent
	// directories as needed, and returns the number of bytes written.
	Copy(src, dst string) (int64, error)

	// EnsureDir creates dir (and parents) if absent.
	EnsureDir(dir string) error
}
