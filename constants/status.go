package constants

// JobStatus is the canonical status for rows in analysis_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // created, waiting for a worker
	JobStatusRunning   JobStatus = "RUNNING"   // pipeline in progress
	JobStatusCompleted JobStatus = "COMPLETED" // terminal success, result attached
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure, error_message set
)

// JobStatuses holds the allowed values for the status field in AnalysisJob.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// Terminal reports whether no further transitions are permitted from s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// NonTerminalStatuses are the statuses a job may still be mutated in.
var NonTerminalStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
}
