package request

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodDelete  Method = "DELETE"
	MethodPut     Method = "PUT"
	MethodHead    Method = "HEAD"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodPatch   Method = "PATCH"
)

var methods = map[string]Method{
	"GET":     MethodGet,
	"POST":    MethodPost,
	"DELETE":  MethodDelete,
	"PUT":     MethodPut,
	"HEAD":    MethodHead,
	"CONNECT": MethodConnect,
	"OPTIONS": MethodOptions,
	"TRACE":   MethodTrace,
	"PATCH":   MethodPatch,
}

// ParseMethod matches s against the supported methods. The match is case
// sensitive: "get" is not a method.
func ParseMethod(s string) (Method, error) {
	m, ok := methods[s]
	if !ok {
		return "", ErrInvalidMethod
	}
	return m, nil
}

func (m Method) String() string {
	return string(m)
}
