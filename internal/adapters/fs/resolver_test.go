package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/classmirror/internal/adapters/fs"
	"go.trai.ch/classmirror/internal/core/domain"
)

func TestMatchCandidates_PrimaryAndNested(t *testing.T) {
	names := []string{
		"Other.class",
		"Test$1.class",
		"Test$Inner.class",
		"Test.class",
		"Testy.class",
	}

	got := fs.MatchCandidates(names, "Test", domain.DefaultLayout())
	// Primary first, nested in input order.
	assert.Equal(t, []string{"Test.class", "Test$1.class", "Test$Inner.class"}, got)
}

func TestMatchCandidates_NestedOnly(t *testing.T) {
	got := fs.MatchCandidates([]string{"Test$Inner.class"}, "Test", domain.DefaultLayout())
	assert.Equal(t, []string{"Test$Inner.class"}, got)
}

func TestMatchCandidates_EmptySuffixExcluded(t *testing.T) {
	// "Test$.class" has an empty nested suffix and is not a match.
	got := fs.MatchCandidates([]string{"Test$.class"}, "Test", domain.DefaultLayout())
	assert.Empty(t, got)
}

func TestMatchCandidates_MultiplyNested(t *testing.T) {
	got := fs.MatchCandidates([]string{"Test$Inner$Deep.class"}, "Test", domain.DefaultLayout())
	assert.Equal(t, []string{"Test$Inner$Deep.class"}, got)
}

func TestMatchCandidates_CaseSensitive(t *testing.T) {
	got := fs.MatchCandidates([]string{"test.class", "TEST$1.class"}, "Test", domain.DefaultLayout())
	assert.Empty(t, got)
}

func TestMatchCandidates_WrongExtension(t *testing.T) {
	got := fs.MatchCandidates([]string{"Test.clazz", "Test$1.txt"}, "Test", domain.DefaultLayout())
	assert.Empty(t, got)
}

func writeClass(t *testing.T, path string, major uint16, payload ...byte) {
	t.Helper()
	b := []byte{0xCA, 0xFE, 0xBA, 0xBE, 0x00, 0x00, byte(major >> 8), byte(major)}
	b = append(b, payload...)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, b, 0o600))
}

func TestResolver_Resolve(t *testing.T) {
	classRoot := t.TempDir()
	writeClass(t, filepath.Join(classRoot, "com", "example", "Test.class"), 52, 0xAA)
	writeClass(t, filepath.Join(classRoot, "com", "example", "Test$Inner.class"), 52)
	writeClass(t, filepath.Join(classRoot, "com", "example", "Unrelated.class"), 52)

	resolver := fs.NewResolver()
	src := domain.SourceFile{RelPath: "com/example/Test.java"}

	set, err := resolver.Resolve(classRoot, domain.DefaultLayout(), src)
	require.NoError(t, err)
	require.Len(t, set.Candidates, 2)

	primary := set.Candidates[0]
	assert.Equal(t, "com/example/Test.class", primary.RelPath)
	assert.Equal(t, int64(9), primary.Size)
	assert.Len(t, primary.Header, 8)
	assert.Equal(t, byte(0xCA), primary.Header[0])

	assert.Equal(t, "com/example/Test$Inner.class", set.Candidates[1].RelPath)
}

func TestResolver_Resolve_NestedOnly(t *testing.T) {
	classRoot := t.TempDir()
	writeClass(t, filepath.Join(classRoot, "com", "example", "Test$1.class"), 52)

	resolver := fs.NewResolver()
	src := domain.SourceFile{RelPath: "com/example/Test.java"}

	set, err := resolver.Resolve(classRoot, domain.DefaultLayout(), src)
	require.NoError(t, err)
	require.Len(t, set.Candidates, 1)
	assert.Equal(t, "com/example/Test$1.class", set.Candidates[0].RelPath)
}

func TestResolver_Resolve_Unresolved(t *testing.T) {
	classRoot := t.TempDir()
	writeClass(t, filepath.Join(classRoot, "com", "example", "Other.class"), 52)

	resolver := fs.NewResolver()
	src := domain.SourceFile{RelPath: "com/example/Test.java"}

	_, err := resolver.Resolve(classRoot, domain.DefaultLayout(), src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnresolved))
}

func TestResolver_Resolve_MissingDirectory(t *testing.T) {
	resolver := fs.NewResolver()
	src := domain.SourceFile{RelPath: "org/missing/Main.java"}

	_, err := resolver.Resolve(t.TempDir(), domain.DefaultLayout(), src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnresolved))
}

func TestResolver_Resolve_ShortArtifact(t *testing.T) {
	// A file shorter than the header is still resolved; classifying it
	// is the detector's business.
	classRoot := t.TempDir()
	path := filepath.Join(classRoot, "Tiny.class")
	require.NoError(t, os.WriteFile(path, []byte{0xCA, 0xFE}, 0o600))

	resolver := fs.NewResolver()
	set, err := resolver.Resolve(classRoot, domain.DefaultLayout(), domain.SourceFile{RelPath: "Tiny.java"})
	require.NoError(t, err)
	require.Len(t, set.Candidates, 1)
	assert.Len(t, set.Candidates[0].Header, 2)
}
