package http

import "net/http"

//go:generate mockery --name=Client
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientFunc lets a plain function serve as a Client.
type ClientFunc func(req *http.Request) (*http.Response, error)

func (f ClientFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}
