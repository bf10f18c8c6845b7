package model

// Prefixes are the recognised logging call openings in priority order. Only
// the first one found on a line is rewritten.
var Prefixes = []string{
	`Error("`,
	`Debug("`,
	`Info("`,
	`Warning("`,
}

// CallSite is a logging call found on one line of a source file.
type CallSite struct {
	File   Path
	Line   int    // 1-based
	Offset int    // byte offset of Prefix within the line
	Prefix string // matched prefix
}

// FileSites groups the call sites of one file.
type FileSites struct {
	File  SourceFile
	Sites []CallSite
}
