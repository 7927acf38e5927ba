package domain

// Existence names the source of truth a path was found in. The values are
// ordered by lookup cost: the working tree is a plain stat, the index and
// the last commit require the version-control engine.
type Existence int

const (
	ExistsNowhere Existence = iota
	ExistsWorkingTree
	ExistsIndex
	ExistsLastCommit
)

func (e Existence) String() string {
	switch e {
	case ExistsWorkingTree:
		return "working tree"
	case ExistsIndex:
		return "index"
	case ExistsLastCommit:
		return "last commit"
	default:
		return "nowhere"
	}
}

// PathResolution records where a single requested path was found.
type PathResolution struct {
	Path     string
	ExistsIn Existence
}

// StagingResult is the outcome of the staging phase. A commit attempt
// never proceeds when HasChanges is false.
type StagingResult struct {
	HasChanges bool
}

// CommitAttempt captures one execution of the underlying commit
// operation. Output is the combined stdout/stderr stream, split into
// lines; LockPath is only set when ExitCode is non-zero and the output
// referenced a lock file.
type CommitAttempt struct {
	ExitCode int
	Output   []string
	LockPath string
}
