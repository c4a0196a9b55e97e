package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/merfiDEV/YT-Downloader/internal/model"
	"github.com/merfiDEV/YT-Downloader/internal/platform"
)

// DefaultOutputTemplate is the yt-dlp style filename template
const DefaultOutputTemplate = "%(title)s.%(ext)s"

// TaskIDPrefix prefixes generated task IDs
const TaskIDPrefix = "task-"

// ErrTaskNotPending is returned when a task is handed to Download twice
var ErrTaskNotPending = errors.New("task is not pending")

// Service handles download operations
type Service struct {
	backend  Backend
	template string
	logger   Logger
	onUpdate model.ProgressFunc // callback for console updates
	now      func() time.Time
}

// NewService creates a new download service
func NewService(backend Backend, template string) *Service {
	if template == "" {
		template = DefaultOutputTemplate
	}
	if !platform.HasTemplateField(template, platform.TemplateExt) {
		template += ".%(ext)s"
	}
	return &Service{
		backend:  backend,
		template: template,
		logger:   nopLogger{},
		now:      time.Now,
	}
}

// SetLogger sets the logger handed to the backend
func (s *Service) SetLogger(logger Logger) {
	if logger == nil {
		logger = nopLogger{}
	}
	s.logger = logger
}

// SetUpdateCallback sets the callback function for progress events
func (s *Service) SetUpdateCallback(callback model.ProgressFunc) {
	s.onUpdate = callback
}

// NewTask builds a pending task whose output is rooted at saveDir
func (s *Service) NewTask(url string, info *model.VideoInfo, opt model.Option, saveDir string) *model.DownloadTask {
	var title, videoID string
	if info != nil {
		title, videoID = info.Title, info.ID
	}

	fields := map[string]string{platform.TemplateTitle: platform.SafeName(title)}
	if videoID != "" {
		fields[platform.TemplateID] = videoID
	}

	return &model.DownloadTask{
		ID:          generateTaskID(),
		URL:         url,
		Title:       title,
		FormatID:    opt.FormatID,
		FormatLabel: opt.Label,
		Ext:         opt.Format.Ext,
		SaveDir:     saveDir,
		Output:      filepath.Join(saveDir, platform.ExpandTemplate(s.template, fields)),
		Status:      model.TaskStatusPending,
	}
}

// Download runs the task on the backend. Backend errors are returned
// wrapped; nothing is retried.
func (s *Service) Download(ctx context.Context, task *model.DownloadTask) (time.Duration, error) {
	if task.Status.IsActive() || task.Status.IsFinished() {
		return 0, fmt.Errorf("task %s: %w (%s)", task.ID, ErrTaskNotPending, task.Status)
	}

	task.Status = model.TaskStatusStarting
	log.Printf("Task %s: %s format %s via %s -> %s", task.ID, task.URL, task.FormatID, s.backend.Name(), task.Output)

	req := Request{
		URL:      task.URL,
		FormatID: task.FormatID,
		Ext:      task.Ext,
		Output:   task.Output,
		Logger:   s.logger,
		Progress: func(ev model.ProgressEvent) {
			s.updateTaskProgress(task, ev)
		},
	}

	task.StartedAt = s.now()
	path, err := s.backend.Fetch(ctx, req)
	task.FinishedAt = s.now()

	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		log.Printf("Task %s failed after %s: %v", task.ID, task.Duration(), err)
		return 0, fmt.Errorf("download failed: %w", err)
	}

	task.Status = model.TaskStatusCompleted
	if path != "" {
		task.OutputPath = path
	}
	log.Printf("Task %s completed in %s: %s", task.ID, task.Duration(), task.OutputPath)

	return task.Duration(), nil
}

// updateTaskProgress tracks the task state and forwards the event
func (s *Service) updateTaskProgress(task *model.DownloadTask, ev model.ProgressEvent) {
	switch e := ev.(type) {
	case model.Downloading:
		task.Status = model.TaskStatusDownloading
	case model.Finished:
		if e.Filename != "" {
			task.OutputPath = e.Filename
		}
	}

	if s.onUpdate != nil {
		s.onUpdate(ev)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return TaskIDPrefix + uuid.NewString()
}

type nopLogger struct{}

func (nopLogger) Debug(string)   {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}
