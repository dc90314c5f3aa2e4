package progrock

import (
	"bytes"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/prepdeps/internal/core/ports"
)

var _ progrock.Writer = (*LogForwarder)(nil)

// LogForwarder is a progrock.Writer that prints vertex output through the
// logger. Stdout lines are logged at info level and stderr lines as
// warnings. Partial lines are held until the newline arrives, the vertex
// completes or the forwarder is closed.
type LogForwarder struct {
	logger ports.Logger

	mu      sync.Mutex
	pending map[streamKey][]byte
}

type streamKey struct {
	vertex string
	stream progrock.LogStream
}

// NewLogForwarder creates a LogForwarder writing to logger.
func NewLogForwarder(logger ports.Logger) *LogForwarder {
	return &LogForwarder{
		logger:  logger,
		pending: make(map[streamKey][]byte),
	}
}

// WriteStatus implements progrock.Writer.
func (f *LogForwarder) WriteStatus(status *progrock.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, l := range status.Logs {
		key := streamKey{vertex: l.Vertex, stream: l.Stream}
		buf := append(f.pending[key], l.Data...)

		for {
			i := bytes.IndexByte(buf, '\n')
			if i < 0 {
				break
			}
			f.emit(key.stream, buf[:i])
			buf = buf[i+1:]
		}

		if len(buf) == 0 {
			delete(f.pending, key)
		} else {
			f.pending[key] = buf
		}
	}

	for _, v := range status.Vertexes {
		if v.Completed != nil {
			f.flushVertex(v.Id)
		}
	}

	return nil
}

// Close flushes any output that did not end in a newline.
func (f *LogForwarder) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key, buf := range f.pending {
		f.emit(key.stream, buf)
		delete(f.pending, key)
	}
	return nil
}

func (f *LogForwarder) flushVertex(id string) {
	for _, stream := range []progrock.LogStream{progrock.LogStream_STDOUT, progrock.LogStream_STDERR} {
		key := streamKey{vertex: id, stream: stream}
		if buf, ok := f.pending[key]; ok {
			f.emit(stream, buf)
			delete(f.pending, key)
		}
	}
}

func (f *LogForwarder) emit(stream progrock.LogStream, line []byte) {
	msg := string(line)
	// Progress meters redraw with carriage returns; keep the final frame.
	if i := strings.LastIndexByte(strings.TrimRight(msg, "\r"), '\r'); i >= 0 {
		msg = msg[i+1:]
	}
	msg = strings.TrimRight(msg, "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}

	if stream == progrock.LogStream_STDERR {
		f.logger.Warn(msg)
		return
	}
	f.logger.Info(msg)
}
