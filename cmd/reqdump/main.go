package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/nhdewitt/tiny-httpd/internal/request"
	"github.com/nhdewitt/tiny-httpd/internal/response"
	"github.com/nhdewitt/tiny-httpd/internal/server"
	"github.com/sirupsen/logrus"
)

func dump(req *request.Request) string {
	var b strings.Builder
	fmt.Fprintln(&b, "Request line:")
	fmt.Fprintf(&b, "- Method: %s\n", req.Method())
	fmt.Fprintf(&b, "- Path: %s\n", req.Path())
	if q := req.Query(); q != nil {
		fmt.Fprintln(&b, "Query:")
		for _, k := range q.Keys() {
			fmt.Fprintf(&b, "- %s: %s\n", k, strings.Join(q.All(k), ", "))
		}
	}
	return b.String()
}

func main() {
	addr := flag.String("addr", "127.0.0.1:42069", "listen address as host:port")
	flag.Parse()

	srv, err := server.New(*addr)
	if err != nil {
		logrus.Fatalf("error listening: %v", err)
	}
	defer srv.Close()

	srv.Run(server.HandlerFunc(func(req *request.Request) *response.Response {
		out := dump(req)
		fmt.Print(out)
		return response.NewString(response.StatusOK, out)
	}))
}
