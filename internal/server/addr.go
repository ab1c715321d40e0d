package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

var ErrInvalidAddr = errors.New("invalid address")

// Addr is a validated host:port pair.
type Addr struct {
	Host string
	Port int
}

// ParseAddr accepts "host:port" with surrounding whitespace allowed around
// either part. IPv6 literals are not supported.
func ParseAddr(addr string) (Addr, error) {
	parts := strings.Split(strings.TrimSpace(addr), ":")
	if len(parts) != 2 {
		return Addr{}, fmt.Errorf("%w %q: want host:port", ErrInvalidAddr, addr)
	}

	host := strings.TrimSpace(parts[0])
	portStr := strings.TrimSpace(parts[1])
	if host == "" || portStr == "" {
		return Addr{}, fmt.Errorf("%w %q: empty host or port", ErrInvalidAddr, addr)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 0 || port > 65535 {
		return Addr{}, fmt.Errorf("%w %q: bad port %q", ErrInvalidAddr, addr, portStr)
	}

	return Addr{Host: host, Port: port}, nil
}

func (a Addr) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}
