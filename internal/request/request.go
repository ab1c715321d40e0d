package request

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// BufferSize is how much of a connection is read before parsing.
	// Anything past it never reaches the parser.
	BufferSize = 1024

	supportedProtocol = "HTTP/1.1"
	delimiters        = " \r"
)

// Request holds the request line of an HTTP/1.1 request. Headers and body
// are never inspected.
type Request struct {
	method Method
	path   string
	query  *QueryString
}

func (r *Request) Method() Method {
	return r.method
}

// Path is the request target up to, not including, the first '?'.
func (r *Request) Path() string {
	return r.path
}

// Query is nil when the target had no '?'.
func (r *Request) Query() *QueryString {
	return r.query
}

func (r *Request) String() string {
	if r.query == nil {
		return fmt.Sprintf("%s %s", r.method, r.path)
	}
	return fmt.Sprintf("%s %s (%d query keys)", r.method, r.path, r.query.Len())
}

// RequestFromReader does a single read of at most BufferSize bytes and
// parses what arrived. Read failures are returned wrapped; everything else
// is a ParseError.
func RequestFromReader(reader io.Reader) (*Request, error) {
	return RequestFromReaderSize(reader, BufferSize)
}

// RequestFromReaderSize is RequestFromReader with a read buffer of size
// bytes. Bytes past size are left unread.
func RequestFromReaderSize(reader io.Reader, size int) (*Request, error) {
	if size <= 0 {
		size = BufferSize
	}
	buf := make([]byte, size)

	n, err := reader.Read(buf)
	if n == 0 && err != nil {
		return nil, fmt.Errorf("error reading request: %w", err)
	}

	return Parse(buf[:n])
}

// Parse reads the request line at the start of buf. The returned Request
// owns its strings, so buf may be reused afterwards.
func Parse(buf []byte) (*Request, error) {
	if !utf8.Valid(buf) {
		return nil, ErrInvalidEncoding
	}
	text := string(buf)

	method, rest, ok := nextWord(text)
	if !ok {
		return nil, ErrInvalidRequest
	}
	target, rest, ok := nextWord(rest)
	if !ok {
		return nil, ErrInvalidRequest
	}
	protocol, _, ok := nextWord(rest)
	if !ok {
		return nil, ErrInvalidRequest
	}

	if protocol != supportedProtocol {
		return nil, ErrInvalidProtocol
	}

	m, err := ParseMethod(method)
	if err != nil {
		return nil, err
	}

	r := &Request{method: m, path: target}
	if path, query, found := strings.Cut(target, "?"); found {
		r.path = path
		r.query = ParseQueryString(query)
	}

	return r, nil
}

// nextWord splits s at the first space or carriage return. The delimiter
// itself is dropped; a '\n' following '\r' stays at the front of rest.
func nextWord(s string) (word, rest string, ok bool) {
	i := strings.IndexAny(s, delimiters)
	if i == -1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}
