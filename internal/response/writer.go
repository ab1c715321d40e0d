package response

import (
	"fmt"
	"io"

	"github.com/nhdewitt/tiny-httpd/internal/headers"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type writerState int

const (
	StateWritingStatusLine writerState = iota
	StateWritingHeaders
	StateWritingBody
	StateDone
)

var errOutOfOrder = fmt.Errorf("writer state out-of-order")

// Writer writes a response in order: status line, headers, body.
type Writer struct {
	writer io.Writer
	state  writerState
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  StateWritingStatusLine,
	}
}

func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != StateWritingStatusLine {
		return errOutOfOrder
	}

	line := fmt.Sprintf("HTTP/1.1 %d %s\r\n", int(statusCode), statusCode.ReasonPhrase())
	if _, err := io.WriteString(w.writer, line); err != nil {
		return fmt.Errorf("error writing status line: %w", err)
	}

	w.state = StateWritingHeaders
	return nil
}

func (w *Writer) WriteHeaders(h headers.Headers) error {
	if w.state != StateWritingHeaders {
		return errOutOfOrder
	}

	caser := cases.Title(language.English)
	for _, k := range h.Keys() {
		line := caser.String(k) + ": " + h[k]
		if _, err := io.WriteString(w.writer, line+"\r\n"); err != nil {
			return fmt.Errorf("error writing header: %w", err)
		}
	}
	if _, err := io.WriteString(w.writer, "\r\n"); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	w.state = StateWritingBody
	return nil
}

func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != StateWritingBody {
		return 0, errOutOfOrder
	}

	w.state = StateDone
	return w.writer.Write(p)
}
