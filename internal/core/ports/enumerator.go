// Package ports defines the core interfaces for the application.
package ports

import (
	"iter"

	"go.trai.ch/classmirror/internal/core/domain"
)

// Enumerator lists the regular files of a directory tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=enumerator.go -destination=mocks/mock_enumerator.go -package=mocks
type Enumerator interface {
	// Walk yields every regular file under root in stable path order,
	// classified as source or auxiliary by the layout's source
	// extension. The sequence is restartable; each range re-walks the
	// tree. A non-nil error in a pair is fatal and ends the sequence.
	Walk(root string, layout domain.Layout, ignores []string) iter.Seq2[domain.Entry, error]
}
