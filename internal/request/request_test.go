package request

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chunkReader struct {
	data            string
	numBytesPerRead int
	pos             int
}

// chunkReader hands out data at most numBytesPerRead bytes at a time, the
// way a socket may deliver a request in pieces.
func (cr *chunkReader) Read(p []byte) (n int, err error) {
	if cr.pos >= len(cr.data) {
		return 0, io.EOF
	}
	endIndex := cr.pos + cr.numBytesPerRead
	if endIndex > len(cr.data) {
		endIndex = len(cr.data)
	}
	n = copy(p, cr.data[cr.pos:endIndex])
	cr.pos += n

	return n, nil
}

type failingReader struct{ err error }

func (fr failingReader) Read([]byte) (int, error) { return 0, fr.err }

func TestRequestLineParse(t *testing.T) {
	cases := []struct {
		data       string
		wantMethod Method
		wantPath   string
	}{
		{"GET / HTTP/1.1\r\nHost: x\r\n\r\n", MethodGet, "/"},
		{"GET /coffee HTTP/1.1\r\nHost: x\r\n\r\n", MethodGet, "/coffee"},
		{"POST /submit HTTP/1.1\r\n\r\n", MethodPost, "/submit"},
		{"DELETE /items/3 HTTP/1.1\r\n", MethodDelete, "/items/3"},
		{"OPTIONS * HTTP/1.1\r\n", MethodOptions, "*"},
	}
	for _, c := range cases {
		r, err := Parse([]byte(c.data))
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, c.wantMethod, r.Method())
		assert.Equal(t, c.wantPath, r.Path())
		assert.Nil(t, r.Query())
		assert.Equal(t, string(c.wantMethod)+" "+c.wantPath, r.String())
	}
}

func TestRequestLineWithQuery(t *testing.T) {
	r, err := Parse([]byte("GET /search?name=abc&sort=1 HTTP/1.1\r\nHost: x\r\n\r\n"))
	require.NoError(t, err)

	assert.Equal(t, MethodGet, r.Method())
	assert.Equal(t, "/search", r.Path())
	require.NotNil(t, r.Query())
	assert.Equal(t, 2, r.Query().Len())
	assert.Equal(t, "GET /search (2 query keys)", r.String())

	v, ok := r.Query().Get("name")
	require.True(t, ok)
	assert.Equal(t, Single("abc"), v)
	v, ok = r.Query().Get("sort")
	require.True(t, ok)
	assert.Equal(t, Single("1"), v)
}

func TestPathSplitsAtFirstQuestionMark(t *testing.T) {
	r, err := Parse([]byte("GET /a?b=c?d HTTP/1.1\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "/a", r.Path())
	assert.Equal(t, "c?d", r.Query().First("b"))

	r, err = Parse([]byte("GET /empty? HTTP/1.1\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "/empty", r.Path())
	require.NotNil(t, r.Query())
	v, ok := r.Query().Get("")
	require.True(t, ok)
	assert.Equal(t, Single(""), v)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want ParseError
	}{
		{"old protocol", []byte("GET / HTTP/1.0\r\n\r\n"), ErrInvalidProtocol},
		{"future protocol", []byte("GET /coffee HTTP/3.0\r\nHost: x\r\n\r\n"), ErrInvalidProtocol},
		{"method order", []byte("/coffee GET HTTP/1.1\r\nHost: x\r\n\r\n"), ErrInvalidMethod},
		{"unknown method", []byte("FETCH / HTTP/1.1\r\n\r\n"), ErrInvalidMethod},
		{"lowercase method", []byte("get / HTTP/1.1\r\n\r\n"), ErrInvalidMethod},
		{"no delimiters", []byte("garbage"), ErrInvalidRequest},
		{"empty", []byte{}, ErrInvalidRequest},
		{"missing target", []byte("GET"), ErrInvalidRequest},
		{"no line terminator", []byte("GET /coffee HTTP/1.1"), ErrInvalidRequest},
		{"newline is not a delimiter", []byte("GET /coffee HTTP/1.1\n"), ErrInvalidRequest},
		{"invalid utf-8", []byte("GET /\xff\xfe HTTP/1.1\r\n"), ErrInvalidEncoding},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := Parse(c.data)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, errors.Is(err, c.want), "got %v, want %v", err, c.want)
		})
	}
}

func TestProtocolCheckedBeforeMethod(t *testing.T) {
	_, err := Parse([]byte("FETCH / HTTP/1.0\r\n"))
	assert.ErrorIs(t, err, ErrInvalidProtocol)
}

func TestParseIsIdempotent(t *testing.T) {
	buf := []byte("GET /search?name=abc&sort=1&name=def HTTP/1.1\r\n\r\n")

	first, err := Parse(buf)
	require.NoError(t, err)
	second, err := Parse(buf)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRequestOutlivesBuffer(t *testing.T) {
	buf := []byte("GET /keep?x=1 HTTP/1.1\r\n")
	r, err := Parse(buf)
	require.NoError(t, err)

	for i := range buf {
		buf[i] = 'z'
	}

	assert.Equal(t, "/keep", r.Path())
	assert.Equal(t, "1", r.Query().First("x"))
}

func TestRequestFromReader(t *testing.T) {
	data := "GET /coffee?size=large HTTP/1.1\r\nHost: x\r\n\r\n"
	reader := &chunkReader{data: data, numBytesPerRead: len(data)}
	r, err := RequestFromReader(reader)
	require.NoError(t, err)
	assert.Equal(t, "/coffee", r.Path())
	assert.Equal(t, "large", r.Query().First("size"))

	// A single read only sees the first chunk.
	reader = &chunkReader{data: data, numBytesPerRead: 3}
	_, err = RequestFromReader(reader)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	// Oversized requests are truncated to BufferSize.
	long := "GET /" + strings.Repeat("a", BufferSize) + " HTTP/1.1\r\n"
	reader = &chunkReader{data: long, numBytesPerRead: len(long)}
	_, err = RequestFromReader(reader)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRequestFromReaderSize(t *testing.T) {
	data := "GET /coffee HTTP/1.1\r\nHost: x\r\n\r\n"

	reader := &chunkReader{data: data, numBytesPerRead: len(data)}
	r, err := RequestFromReaderSize(reader, 21)
	require.NoError(t, err)
	assert.Equal(t, "/coffee", r.Path())

	// One byte short of the request line's CR.
	reader = &chunkReader{data: data, numBytesPerRead: len(data)}
	_, err = RequestFromReaderSize(reader, 20)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, 20, reader.pos)

	reader = &chunkReader{data: data, numBytesPerRead: len(data)}
	r, err = RequestFromReaderSize(reader, 0)
	require.NoError(t, err)
	assert.Equal(t, MethodGet, r.Method())
}

func TestRequestFromReaderReadError(t *testing.T) {
	readErr := errors.New("connection reset")
	_, err := RequestFromReader(failingReader{err: readErr})
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)

	var perr ParseError
	assert.False(t, errors.As(err, &perr))

	_, err = RequestFromReader(&chunkReader{})
	assert.ErrorIs(t, err, io.EOF)
}

func TestParseMethod(t *testing.T) {
	for _, s := range []string{"GET", "POST", "DELETE", "PUT", "HEAD", "CONNECT", "OPTIONS", "TRACE", "PATCH"} {
		m, err := ParseMethod(s)
		require.NoError(t, err)
		assert.Equal(t, s, m.String())
	}

	_, err := ParseMethod("Get")
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestParseErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid request", ErrInvalidRequest.Error())
	assert.Equal(t, "invalid encoding", ErrInvalidEncoding.Error())
	assert.Equal(t, "invalid protocol", ErrInvalidProtocol.Error())
	assert.Equal(t, "invalid method", ErrInvalidMethod.Error())
	assert.Equal(t, "unknown parse error: 9", ParseError(9).Error())
}
