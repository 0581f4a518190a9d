package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"mixin-generator/internal/model"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultExtension is the file extension FileSink uses when none is configured.
const DefaultExtension = ".java"

// Sink receives generated artifacts.
type Sink interface {
	// Create opens the artifact with the given qualified name. origin is the
	// declaration the artifact was generated for.
	Create(name string, origin model.TypeID) (io.WriteCloser, error)
}

// Emit writes content to a new artifact and closes it on every path.
func Emit(sink Sink, name string, origin model.TypeID, content []byte) (err error) {
	w, err := sink.Create(name, origin)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}

	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", name, cerr))
		}
	}()

	if _, err := w.Write(content); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return nil
}

// FileSink writes artifacts below Dir, one directory per package segment.
type FileSink struct {
	Dir       string
	Extension string
}

// NewFileSink creates a FileSink writing ".java" files below dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir, Extension: DefaultExtension}
}

// Path returns the file path an artifact name maps to.
func (s *FileSink) Path(name string) string {
	ext := s.Extension
	if ext == "" {
		ext = DefaultExtension
	}

	parts := strings.Split(name, ".")

	return filepath.Join(s.Dir, filepath.Join(parts...)+ext)
}

// Create creates the artifact file, creating parent directories as needed.
func (s *FileSink) Create(name string, _ model.TypeID) (io.WriteCloser, error) {
	path := s.Path(name)

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return f, nil
}

// MemorySink keeps artifacts in memory. It is safe for concurrent use.
type MemorySink struct {
	// Fail, if set, is consulted on Create; a non-nil error fails the artifact.
	Fail func(name string) error

	mu      sync.Mutex
	files   map[string]string
	origins map[string]model.TypeID
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		files:   make(map[string]string),
		origins: make(map[string]model.TypeID),
	}
}

// Create opens an in-memory artifact; its content is stored on Close.
func (s *MemorySink) Create(name string, origin model.TypeID) (io.WriteCloser, error) {
	if s.Fail != nil {
		if err := s.Fail(name); err != nil {
			return nil, err
		}
	}

	return &memoryFile{sink: s, name: name, origin: origin}, nil
}

// Names returns the stored artifact names in sorted order.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Content returns the content of an artifact.
func (s *MemorySink) Content(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.files[name]

	return content, ok
}

// Origin returns the declaration an artifact was generated for.
func (s *MemorySink) Origin(name string) (model.TypeID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	origin, ok := s.origins[name]

	return origin, ok
}

type memoryFile struct {
	bytes.Buffer

	sink   *MemorySink
	name   string
	origin model.TypeID
}

func (f *memoryFile) Close() error {
	f.sink.mu.Lock()
	defer f.sink.mu.Unlock()

	f.sink.files[f.name] = f.String()
	f.sink.origins[f.name] = f.origin

	return nil
}
