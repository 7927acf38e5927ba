package orchestrator

const (
	// LockFileSuffix is the suffix of the marker files the git client
	// creates to serialize mutating operations.
	LockFileSuffix = ".lock"
	// InstanceLockName is the advisory lock file guarding against two
	// concurrent runs of this tool in one repository.
	InstanceLockName = "commitscope.lock"
)
