package response

import (
	"fmt"
	"io"
	"time"

	"github.com/nhdewitt/tiny-httpd/internal/headers"
)

// Response is a status with an optional body. A nil Body means no body at
// all; Header entries override the defaults written by Send.
type Response struct {
	Status StatusCode
	Body   []byte
	Header headers.Headers
}

func New(status StatusCode, body []byte) *Response {
	return &Response{
		Status: status,
		Body:   body,
		Header: headers.NewHeaders(),
	}
}

func NewString(status StatusCode, body string) *Response {
	return New(status, []byte(body))
}

func GetDefaultHeaders(contentLen int) headers.Headers {
	h := headers.NewHeaders()
	h.Set("Content-Length", fmt.Sprintf("%d", contentLen))
	h.Set("Connection", "close")
	h.Set("Content-Type", "text/plain")
	h.Set("Date", time.Now().UTC().Format(time.RFC1123))

	return h
}

// Send serializes the response to w.
func (r *Response) Send(w io.Writer) error {
	h := GetDefaultHeaders(len(r.Body))
	for k, v := range r.Header {
		h.SetNew(k, v)
	}

	rw := NewWriter(w)
	if err := rw.WriteStatusLine(r.Status); err != nil {
		return err
	}
	if err := rw.WriteHeaders(h); err != nil {
		return err
	}
	if r.Body == nil {
		return nil
	}

	n, err := rw.WriteBody(r.Body)
	if err != nil {
		return fmt.Errorf("error writing body: %w", err)
	}
	if n != len(r.Body) {
		return fmt.Errorf("error writing body: short write %d of %d", n, len(r.Body))
	}
	return nil
}
