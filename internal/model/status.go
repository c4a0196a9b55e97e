package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is built but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the backend is being prepared
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means the transfer is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// RunState is a step of the interactive entry flow.
type RunState string

const (
	RunStateStart           RunState = "Start"
	RunStateConfigLoaded    RunState = "ConfigLoaded"
	RunStatePathResolved    RunState = "PathResolved"
	RunStateURLEntered      RunState = "URLEntered"
	RunStateMetadataFetched RunState = "MetadataFetched"
	RunStateFormatChosen    RunState = "FormatChosen"
	RunStateDownloaded      RunState = "Downloaded"
	RunStateReported        RunState = "Reported"
	RunStateFailed          RunState = "Failed"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsTerminal reports whether the run ends in this state.
func (rs RunState) IsTerminal() bool {
	return rs == RunStateReported || rs == RunStateFailed
}
