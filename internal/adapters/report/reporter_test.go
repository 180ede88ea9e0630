package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/classmirror/internal/adapters/report"
	"go.trai.ch/classmirror/internal/core/domain"
)

func TestReporter_PerFileEntries(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewWithWriter(&buf)

	r.AuxiliaryCopied("com/example/app.properties", 42)
	r.ArtifactCopied("com/example/Test.java", "com/example/Test.class", 512, "JDK 8")

	out := buf.String()
	assert.Contains(t, out, "auxiliary file: com/example/app.properties, size: 42 bytes")
	assert.Contains(t, out, "source: com/example/Test.java, class: com/example/Test.class, size: 512 bytes, version: JDK 8")
}

func TestReporter_Summary_MultiVersion(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewWithWriter(&buf)

	s := domain.NewRunSummary()
	s.SourceFiles = 2
	s.Artifacts = 3
	s.AuxiliaryFiles = 1
	s.CountVersion("JDK 8")
	s.CountVersion("JDK 8")
	s.CountVersion("JDK 11")

	r.Summary(s)

	out := buf.String()
	assert.Contains(t, out, "source files: 2")
	assert.Contains(t, out, "class files: 3")
	assert.Contains(t, out, "auxiliary files: 1")
	assert.Contains(t, out, "total copied: 4")
	assert.Contains(t, out, "JDK 11: 1 files")
	assert.Contains(t, out, "JDK 8: 2 files")

	// Labels are rendered in sorted order for stable output.
	assert.Less(t, strings.Index(out, "JDK 11:"), strings.Index(out, "JDK 8:"))
}

func TestReporter_Summary_SoleVersion(t *testing.T) {
	var buf bytes.Buffer
	r := report.NewWithWriter(&buf)

	s := domain.NewRunSummary()
	s.Artifacts = 2
	s.CountVersion("JDK 17")
	s.CountVersion("JDK 17")

	r.Summary(s)

	out := buf.String()
	assert.Contains(t, out, "all class files: JDK 17")
	assert.NotContains(t, out, "per JDK version")
}
