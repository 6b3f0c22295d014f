package streams

import (
	"bufio"
	"context"
	"errors"
	"io"
)

const readBufferSize = 64 * 1024

// Line is one raw line read from the input, or the read error that ended the stream.
type Line struct {
	Text string
	Err  error
}

// LineSource turns a blocking reader into a channel of lines so that the caller can
// select on it together with ctx cancellation.
//
// The returned channel is unbuffered: a line is handed over only when the consumer
// is ready for it. The channel is closed at end of input, after a read error (sent
// as a Line with Err set), or when ctx is cancelled. A goroutine blocked inside
// r.Read cannot be interrupted; it exits on its next send attempt.
//
//go:generate mockgen -source=line_source.go -destination=./mocks/line_source_mock.go -package=mocks
type LineSource interface {
	Lines(ctx context.Context, r io.Reader) <-chan Line
}

type readerLineSource struct{}

func NewReaderLineSource() LineSource {
	return &readerLineSource{}
}

func (s *readerLineSource) Lines(ctx context.Context, r io.Reader) <-chan Line {
	ch := make(chan Line)

	go func() {
		defer close(ch)

		reader := bufio.NewReaderSize(r, readBufferSize)
		for {
			text, err := reader.ReadString('\n')
			if text != "" {
				if !s.send(ctx, ch, Line{Text: text}) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					metricReadErrorsTotal.Inc()
					s.send(ctx, ch, Line{Err: err})
				}
				return
			}
		}
	}()

	return ch
}

func (s *readerLineSource) send(ctx context.Context, ch chan<- Line, line Line) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- line:
		if line.Err == nil {
			metricLinesReadTotal.Inc()
		}
		return true
	}
}
