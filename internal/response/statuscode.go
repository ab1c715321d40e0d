package response

import "strconv"

type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusBadRequest          StatusCode = 400
	StatusNotFound            StatusCode = 404
	StatusMethodNotAllowed    StatusCode = 405
	StatusInternalServerError StatusCode = 500
)

// ReasonPhrase is empty for codes outside the table; an empty reason is
// still a valid status line.
func (s StatusCode) ReasonPhrase() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusMethodNotAllowed:
		return "Method Not Allowed"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return ""
	}
}

func (s StatusCode) String() string {
	return strconv.Itoa(int(s)) + " " + s.ReasonPhrase()
}

// ParseStatusCode accepts any three digit code.
func ParseStatusCode(s string) (StatusCode, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 100 || n > 999 {
		return 0, strconv.ErrRange
	}
	return StatusCode(n), nil
}
