package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// readRequest collects lines up to the first blank line (or EOF) and
// terminates each with CRLF.
func readRequest(r io.Reader) (string, error) {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		b.WriteString(line + "\r\n")
		if line == "" {
			return b.String(), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if b.Len() > 0 {
		b.WriteString("\r\n")
	}
	return b.String(), nil
}

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "server address as host:port")
	timeout := flag.Duration("timeout", 5*time.Second, "dial and read timeout")
	flag.Parse()

	fmt.Fprintln(os.Stderr, "Enter a request, finish with an empty line:")
	raw, err := readRequest(os.Stdin)
	if err != nil {
		logrus.Fatalf("input error: %v", err)
	}

	conn, err := net.DialTimeout("tcp", *addr, *timeout)
	if err != nil {
		logrus.Fatalf("error connecting: %v", err)
	}
	defer conn.Close()
	if err := conn.SetDeadline(time.Now().Add(*timeout)); err != nil {
		logrus.Fatalf("error setting deadline: %v", err)
	}

	if _, err := io.WriteString(conn, raw); err != nil {
		logrus.Fatalf("write error: %v", err)
	}
	if _, err := io.Copy(os.Stdout, conn); err != nil {
		logrus.Errorf("read error: %v", err)
	}
}
