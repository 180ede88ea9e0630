package manifest_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/classmirror/internal/adapters/manifest"
	"go.trai.ch/classmirror/internal/core/domain"
)

func TestStore_Write(t *testing.T) {
	outputRoot := t.TempDir()
	store := manifest.NewStore()

	summary := domain.NewRunSummary()
	summary.SourceFiles = 1
	summary.Artifacts = 1
	summary.CountVersion("JDK 8")

	m := domain.Manifest{
		Tool: "classmirror",
		Artifacts: []domain.ManifestEntry{{
			SourcePath:   "com/example/Test.java",
			ArtifactPath: "com/example/Test.class",
			Size:         128,
			Hash:         "00000000deadbeef",
			Version:      "JDK 8",
		}},
		Summary: summary,
	}

	require.NoError(t, store.Write(outputRoot, m))

	data, err := os.ReadFile(filepath.Join(outputRoot, manifest.Filename))
	require.NoError(t, err)

	var got domain.Manifest
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, m, got)
}

func TestStore_Write_MissingRoot(t *testing.T) {
	store := manifest.NewStore()
	err := store.Write(filepath.Join(t.TempDir(), "absent"), domain.Manifest{})
	assert.Error(t, err)
}
