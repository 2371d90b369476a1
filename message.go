package syshttp

import "github.com/indigo-web/syshttp/kv"

// HeaderWritable is implemented by both sides of an exchange. Each implementation
// carries its own copy-on-write logic: headers start out pointing at the shared frozen
// empty storage and diverge into a private one on the first write, so freshly created
// exchanges cost no header allocations at all.
type HeaderWritable interface {
	AddHeader(key, value string)
}

type Request struct {
	Method  string
	URL     string
	Version string
	headers *kv.Storage
}

func newRequest() Request {
	return Request{headers: kv.Frozen()}
}

// Headers returns the request headers. Before the first AddHeader this is the shared
// frozen storage; treat it as read-only.
func (r *Request) Headers() *kv.Storage {
	return r.headers
}

func (r *Request) AddHeader(key, value string) {
	if r.headers == kv.Frozen() {
		r.headers = r.headers.Clone()
	}

	r.headers.Add(key, value)
}

type Response struct {
	Status   int
	Reason   string
	Version  string
	headers  *kv.Storage
	trailers *kv.Storage
}

func newResponse() Response {
	return Response{
		Status:   200,
		Version:  "1.1",
		headers:  kv.Frozen(),
		trailers: kv.Frozen(),
	}
}

// Headers returns the response headers. Before the first AddHeader this is the shared
// frozen storage; treat it as read-only.
func (r *Response) Headers() *kv.Storage {
	return r.headers
}

// Trailers returns the response trailers, with the same sharing discipline as Headers.
func (r *Response) Trailers() *kv.Storage {
	return r.trailers
}

func (r *Response) AddHeader(key, value string) {
	if r.headers == kv.Frozen() {
		r.headers = r.headers.Clone()
	}

	r.headers.Add(key, value)
}

// AddTrailer adds a trailer. Trailers are transmitted only on the final frame of the
// response and only over framings that can carry them.
func (r *Response) AddTrailer(key, value string) {
	if r.trailers == kv.Frozen() {
		r.trailers = r.trailers.Clone()
	}

	r.trailers.Add(key, value)
}
