package server

import (
	"github.com/nhdewitt/tiny-httpd/internal/request"
	"github.com/nhdewitt/tiny-httpd/internal/response"
	"github.com/sirupsen/logrus"
)

// Handler turns requests into responses. HandleRequest must not fail:
// errors it runs into become an error status on the returned Response.
// HandleBadRequest receives every error from request.Parse.
//
// Embed BadRequestDefault to get the default HandleBadRequest.
type Handler interface {
	HandleRequest(req *request.Request) *response.Response
	HandleBadRequest(err error) *response.Response
}

// BadRequestDefault logs the parse error and answers with Status and no
// body. The zero value answers 404 Not Found.
type BadRequestDefault struct {
	Status response.StatusCode
	Logger logrus.FieldLogger
}

func (d BadRequestDefault) HandleBadRequest(err error) *response.Response {
	logger := d.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithError(err).Warn("Failed to parse a request")

	status := d.Status
	if status == 0 {
		status = response.StatusNotFound
	}
	return response.New(status, nil)
}

// HandlerFunc adapts a function to a Handler with the default bad request
// behavior.
type HandlerFunc func(req *request.Request) *response.Response

func (f HandlerFunc) HandleRequest(req *request.Request) *response.Response {
	return f(req)
}

func (f HandlerFunc) HandleBadRequest(err error) *response.Response {
	return BadRequestDefault{}.HandleBadRequest(err)
}
