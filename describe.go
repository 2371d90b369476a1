package syshttp

import (
	"github.com/indigo-web/syshttp/kv"
	json "github.com/json-iterator/go"
)

type requestView struct {
	Method  string    `json:"method"`
	URL     string    `json:"url"`
	Version string    `json:"version"`
	Headers []kv.Pair `json:"headers,omitempty"`
}

type responseView struct {
	Status   int       `json:"status"`
	Reason   string    `json:"reason,omitempty"`
	Version  string    `json:"version"`
	Headers  []kv.Pair `json:"headers,omitempty"`
	Trailers []kv.Pair `json:"trailers,omitempty"`
}

type exchangeView struct {
	Name     string       `json:"name"`
	Done     bool         `json:"done"`
	Readable bool         `json:"readable"`
	Writable bool         `json:"writable"`
	Chunked  bool         `json:"chunked"`
	Speedy   bool         `json:"speedy"`
	Request  requestView  `json:"request"`
	Response responseView `json:"response"`
}

// Describe renders a JSON snapshot of the exchange for diagnostics. The snapshot is a
// copy, so holding onto it past the exchange's lifetime is safe.
func (e *Exchange) Describe() ([]byte, error) {
	return json.ConfigDefault.Marshal(exchangeView{
		Name:     e.name,
		Done:     e.Done(),
		Readable: e.readable,
		Writable: e.writable,
		Chunked:  e.chunked,
		Speedy:   e.speedy,
		Request: requestView{
			Method:  e.Request.Method,
			URL:     e.Request.URL,
			Version: e.Request.Version,
			Headers: e.Request.Headers().Expose(),
		},
		Response: responseView{
			Status:   e.Response.Status,
			Reason:   e.Response.Reason,
			Version:  e.Response.Version,
			Headers:  e.Response.Headers().Expose(),
			Trailers: e.Response.Trailers().Expose(),
		},
	})
}
