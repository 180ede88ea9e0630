package domain

// RunSummary aggregates the counters for one run. It is built by the
// engine while copying and returned by value once the run completes;
// nothing mutates it afterwards.
type RunSummary struct {
	SourceFiles    int `json:"source_files"`
	Artifacts      int `json:"artifacts"`
	AuxiliaryFiles int `json:"auxiliary_files"`

	// Versions maps a rendered version label to the number of copied
	// artifacts classified under it.
	Versions map[string]int `json:"versions"`
}

// NewRunSummary returns an empty summary ready for accumulation.
func NewRunSummary() RunSummary {
	return RunSummary{Versions: make(map[string]int)}
}

// CountVersion records one artifact under the given version label.
func (s *RunSummary) CountVersion(label string) {
	s.Versions[label]++
}

// TotalCopied is the number of files written to the output root.
func (s RunSummary) TotalCopied() int {
	return s.Artifacts + s.AuxiliaryFiles
}

// MultiVersion reports whether more than one distinct version label was
// seen among the copied artifacts.
func (s RunSummary) MultiVersion() bool {
	return len(s.Versions) > 1
}

// SoleVersion returns the single version label when the histogram is
// uniform, and "" otherwise.
func (s RunSummary) SoleVersion() string {
	if len(s.Versions) != 1 {
		return ""
	}
	for label := range s.Versions {
		return label
	}
	return ""
}
