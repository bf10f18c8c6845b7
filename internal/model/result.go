package model

// TagResult summarises a prebuild pass.
type TagResult struct {
	Files []Path // live paths that were staged and rewritten
	Sites int    // call sites rewritten across all files
}

// RestoreResult summarises an afterbuild pass.
type RestoreResult struct {
	Removed  []Path // instrumented live files deleted
	Restored []Path // staged files renamed back to their live name
}

// BuildResult holds the outcome of a full tag, compile, restore cycle.
type BuildResult struct {
	Tag     TagResult
	Restore RestoreResult
	Output  string // combined compiler output
}

// ReplaceResult summarises a find/replace run.
type ReplaceResult struct {
	Files        []Path
	Replacements int
}
