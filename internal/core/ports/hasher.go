package ports

// Hasher computes content hashes for copy verification.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile computes the hash of the file's content.
	HashFile(path string) (uint64, error)
}
