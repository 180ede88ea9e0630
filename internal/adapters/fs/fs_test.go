package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/classmirror/internal/adapters/fs"
	"go.trai.ch/classmirror/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_Walk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "config"), "git config")
	writeFile(t, filepath.Join(root, "com", "example", "Test.java"), "class Test {}")
	writeFile(t, filepath.Join(root, "com", "example", "app.properties"), "key=value")
	writeFile(t, filepath.Join(root, "README.md"), "# Readme")

	walker := fs.NewWalker()

	entries := make(map[string]domain.FileKind)
	var order []string
	for entry, err := range walker.Walk(root, domain.DefaultLayout(), nil) {
		require.NoError(t, err)
		entries[entry.RelPath] = entry.Kind
		order = append(order, entry.RelPath)
	}

	assert.NotContains(t, entries, ".git/config")
	assert.Equal(t, domain.KindSource, entries["com/example/Test.java"])
	assert.Equal(t, domain.KindAuxiliary, entries["com/example/app.properties"])
	assert.Equal(t, domain.KindAuxiliary, entries["README.md"])

	// WalkDir is lexical, so the order is stable across runs. ASCII
	// uppercase sorts before lowercase, hence Test.java first.
	assert.Equal(t, []string{"README.md", "com/example/Test.java", "com/example/app.properties"}, order)
}

func TestWalker_Walk_Ignores(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "target", "Gen.java"), "生成")
	writeFile(t, filepath.Join(root, "Keep.java"), "class Keep {}")
	writeFile(t, filepath.Join(root, "notes.tmp"), "scratch")

	walker := fs.NewWalker()

	var got []string
	for entry, err := range walker.Walk(root, domain.DefaultLayout(), []string{"target", "*.tmp"}) {
		require.NoError(t, err)
		got = append(got, entry.RelPath)
	}

	assert.Equal(t, []string{"Keep.java"}, got)
}

func TestWalker_Walk_Restartable(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.java"), "a")
	writeFile(t, filepath.Join(root, "B.java"), "b")

	walker := fs.NewWalker()
	seq := walker.Walk(root, domain.DefaultLayout(), nil)

	count := func() int {
		n := 0
		for _, err := range seq {
			require.NoError(t, err)
			n++
		}
		return n
	}

	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())
}

func TestWalker_Walk_BrokenSymlinkDoesNotStopSiblings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Keep.java"), "class Keep {}")
	writeFile(t, filepath.Join(root, "app.properties"), "key=value")
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	walker := fs.NewWalker()

	var got []string
	for entry, err := range walker.Walk(root, domain.DefaultLayout(), nil) {
		require.NoError(t, err)
		got = append(got, entry.RelPath)
	}

	// The broken link is neither enumerated nor fatal to its siblings.
	assert.Equal(t, []string{"Keep.java", "app.properties"}, got)
}

func TestWalker_Walk_MissingRoot(t *testing.T) {
	walker := fs.NewWalker()

	var gotErr error
	for _, err := range walker.Walk(filepath.Join(t.TempDir(), "absent"), domain.DefaultLayout(), nil) {
		gotErr = err
	}
	assert.Error(t, gotErr)
}

func TestCopier_Copy(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()
	src := filepath.Join(srcDir, "app.properties")
	writeFile(t, src, "key=value")

	copier := fs.NewCopier()
	dst := filepath.Join(dstDir, "nested", "deep", "app.properties")

	n, err := copier.Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "key=value", string(data))
}

func TestCopier_Copy_MissingSource(t *testing.T) {
	copier := fs.NewCopier()
	_, err := copier.Copy(filepath.Join(t.TempDir(), "absent"), filepath.Join(t.TempDir(), "out"))
	assert.Error(t, err)
}

func TestHasher_HashFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	writeFile(t, a, "hello world")
	writeFile(t, b, "hello world")

	hasher := fs.NewHasher()

	ha, err := hasher.HashFile(a)
	require.NoError(t, err)
	hb, err := hasher.HashFile(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
	assert.NotZero(t, ha)

	writeFile(t, b, "hello world!")
	hb2, err := hasher.HashFile(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb2)
}
