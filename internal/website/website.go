// Package website serves static files from a public directory.
package website

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/nhdewitt/tiny-httpd/internal/request"
	"github.com/nhdewitt/tiny-httpd/internal/response"
	"github.com/nhdewitt/tiny-httpd/internal/server"
	"github.com/sirupsen/logrus"
)

var aliases = map[string]string{
	"/":    "index.html",
	"/home": "hello.html",
}

type Handler struct {
	server.BadRequestDefault

	publicPath string
	realPath   string
}

type Option func(*Handler)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(h *Handler) {
		h.Logger = logger
	}
}

// WithBadRequestStatus sets the status sent for unparseable requests.
func WithBadRequestStatus(status response.StatusCode) Option {
	return func(h *Handler) {
		h.Status = status
	}
}

func New(publicPath string, opts ...Option) (*Handler, error) {
	abs, err := filepath.Abs(publicPath)
	if err != nil {
		return nil, fmt.Errorf("error resolving public path %q: %w", publicPath, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("error opening public path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("public path %s is not a directory", abs)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("error resolving public path %q: %w", publicPath, err)
	}

	h := &Handler{
		publicPath: abs,
		realPath:   resolved,
	}
	h.Logger = logrus.StandardLogger()
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *Handler) HandleRequest(req *request.Request) *response.Response {
	if req.Method() != request.MethodGet {
		return response.New(response.StatusNotFound, nil)
	}

	name, ok := aliases[req.Path()]
	if !ok {
		name = req.Path()
	}

	body, ok := h.readFile(name)
	if !ok {
		return response.New(response.StatusNotFound, nil)
	}

	resp := response.New(response.StatusOK, body)
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		resp.Header.SetNew("Content-Type", ct)
	}
	return resp
}

// within reports whether path is root or below it.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (h *Handler) readFile(name string) ([]byte, bool) {
	full := filepath.Join(h.publicPath, filepath.FromSlash(name))
	if !within(h.publicPath, full) {
		h.Logger.WithField("path", name).Warn("Directory traversal attempted")
		return nil, false
	}

	// A symlink inside the public directory may still point out of it.
	resolved, err := filepath.EvalSymlinks(full)
	if err != nil {
		return nil, false
	}
	if !within(h.realPath, resolved) {
		h.Logger.WithField("path", name).Warn("Directory traversal attempted")
		return nil, false
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return nil, false
	}

	body, err := os.ReadFile(resolved)
	if err != nil {
		h.Logger.WithError(err).WithField("path", name).Error("Failed to read file")
		return nil, false
	}
	return body, true
}
