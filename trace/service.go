package trace

import "sync"

// ServiceName identifies the trace file in the service hub
const ServiceName = "trace"

// FileService opens a trace file on Start and closes it on Stop
type FileService struct {
	path string

	mu sync.Mutex
	w  *Writer
}

// NewFileService creates a service tracing to path
func NewFileService(path string) *FileService {
	return &FileService{path: path}
}

func (s *FileService) Name() string           { return ServiceName }
func (s *FileService) Dependencies() []string { return nil }

func (s *FileService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w != nil {
		return nil
	}
	w, err := Create(s.path)
	if err != nil {
		return err
	}
	s.w = w
	return nil
}

func (s *FileService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		return nil
	}
	err := s.w.Close()
	s.w = nil
	return err
}

// Writer returns the open writer, nil before Start or after Stop
func (s *FileService) Writer() *Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w
}
