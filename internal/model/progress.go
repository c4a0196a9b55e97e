package model

// ProgressEvent is a status-tagged update emitted by a backend during a
// transfer. It is either Downloading or Finished.
type ProgressEvent interface {
	progressEvent()
}

// Downloading carries the human readable transfer state.
type Downloading struct {
	Filename string
	Percent  string // e.g. "42.0%"
	Total    string // e.g. "12 MB"
	Speed    string // e.g. "1.2 MB/s"
}

// Finished is emitted once the bytes are on disk.
type Finished struct {
	Filename string
}

func (Downloading) progressEvent() {}
func (Finished) progressEvent()    {}

// ProgressFunc receives progress events.
type ProgressFunc func(ProgressEvent)
