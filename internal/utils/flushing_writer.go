package utils

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter forwards every write and immediately flushes writers that buffer, so prompts appear before input is read.
type FlushingWriter struct {
	mutex  sync.Mutex
	target io.Writer
}

// NewFlushingWriter wraps the writer. Already wrapped writers are returned unchanged and nil stays nil.
func NewFlushingWriter(target io.Writer) io.Writer {
	switch target.(type) {
	case nil:
		return nil
	case *FlushingWriter:
		return target
	}
	return &FlushingWriter{target: target}
}

// Write implements io.Writer.
func (writer *FlushingWriter) Write(data []byte) (int, error) {
	if writer == nil || writer.target == nil {
		return 0, nil
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	written, writeError := writer.target.Write(data)
	if writeError != nil {
		return written, writeError
	}

	if bufferedTarget, buffered := writer.target.(flusher); buffered {
		return written, bufferedTarget.Flush()
	}
	return written, nil
}
