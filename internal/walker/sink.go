package walker

import (
	"fmt"
	"io"
)

// Sink receives rendered frames. Terminal writes, test buffers, and any
// other text consumer are equivalent behind this interface.
type Sink interface {
	Display(text string)
}

type writerSink struct {
	w io.Writer
}

// NewWriterSink wraps an io.Writer as a sink. Each frame is followed by a
// blank line so consecutive frames stay readable.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Display(text string) {
	fmt.Fprintln(s.w, text)
	fmt.Fprintln(s.w)
}
