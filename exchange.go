package syshttp

import (
	"strconv"
	"strings"

	"github.com/indigo-web/syshttp/block"
	"github.com/indigo-web/syshttp/config"
	"github.com/indigo-web/syshttp/header"
	"github.com/indigo-web/syshttp/kv"
	"github.com/indigo-web/syshttp/verb"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// ReceiveOutcome tells the caller what to do after a Receive call.
type ReceiveOutcome uint8

const (
	// ReceiveFailed means the engine reported a failure; the code is returned verbatim.
	ReceiveFailed ReceiveOutcome = iota
	// ReceiveHeaders means the request head is fully populated.
	ReceiveHeaders
	// ReceiveMore means the head didn't fit and Receive must be called again. Only the
	// exchange id is trusted at this point.
	ReceiveMore
	// ReceiveAborted means the exchange was cancelled underneath us. Not a failure.
	ReceiveAborted
)

// Exchange tracks a single HTTP request/response cycle against the engine. It is a
// sequential state machine: Receive, ReceiveData, Send, SendData and Cancel are steps
// of one lifecycle and must not be invoked concurrently on the same exchange.
type Exchange struct {
	engine Engine
	cfg    config.Engine

	name   string
	ref    Ref
	id     ID
	hasRef bool

	readable   bool
	writable   bool
	chunked    bool
	disconnect bool
	opaque     bool
	speedy     bool

	Request  Request
	Response Response
}

func newExchange(engine Engine, cfg config.Engine, name string, ref Ref) *Exchange {
	return &Exchange{
		engine:   engine,
		cfg:      cfg,
		name:     name,
		ref:      ref,
		hasRef:   true,
		readable: true,
		writable: true,
		Request:  newRequest(),
		Response: newResponse(),
	}
}

// Name returns the exchange's symbolic identifier, assigned at creation.
func (e *Exchange) Name() string {
	return e.name
}

// Done reports whether the exchange was closed or cancelled. Pure query.
func (e *Exchange) Done() bool {
	return !e.hasRef
}

// Readable reports whether request body data may still be read.
func (e *Exchange) Readable() bool {
	return e.readable
}

// Writable reports whether response data may still be written.
func (e *Exchange) Writable() bool {
	return e.writable
}

// Chunked reports whether the response uses chunked transfer-coding. The flag is set
// as a side effect of Send spotting a Transfer-Encoding: chunked header.
func (e *Exchange) Chunked() bool {
	return e.chunked
}

// Speedy reports whether the request arrived over HTTP/2.
func (e *Exchange) Speedy() bool {
	return e.speedy
}

// Disconnect arranges for the connection to be dropped once the response is complete.
func (e *Exchange) Disconnect(on bool) *Exchange {
	e.disconnect = on
	return e
}

// Opaque switches the exchange into opaque mode: the engine passes the payload through
// without interpreting it.
func (e *Exchange) Opaque(on bool) *Exchange {
	e.opaque = on
	return e
}

// Listen registers a URL prefix on the exchange's queue, so the engine starts routing
// matching requests to it.
func (e *Exchange) Listen(url string) uint32 {
	return e.engine.Listen(e.ref, url)
}

// Receive awaits the engine for up to size bytes of header data (the configured hint
// by default). On ReceiveHeaders the request head and the response version are
// populated and the id is adopted; on ReceiveMore only the id is. A nonzero code is
// handed back verbatim together with ReceiveFailed, except the abort sentinel, which
// comes back as ReceiveAborted and means "no further headers", not an error.
func (e *Exchange) Receive(size ...int) (ReceiveOutcome, uint32) {
	res := e.engine.Receive(e.ref, optional(size, e.cfg.ReceiveBuffSize))
	switch {
	case res.Code == Aborted:
		return ReceiveAborted, res.Code
	case res.Code != Success:
		return ReceiveFailed, res.Code
	}

	e.id = res.ID
	if res.More {
		return ReceiveMore, Success
	}

	e.Request.Method = res.CustomVerb
	if e.Request.Method == "" {
		// an empty method remains for ids the engine never assigns names to
		e.Request.Method, _ = verb.Name(res.Verb)
	}

	e.Request.URL = res.URL
	e.Request.Version = res.Version
	e.Response.Version = res.Version
	e.speedy = res.HTTP2

	for id, value := range res.Known {
		if value == "" {
			continue
		}

		e.Request.AddHeader(header.Request(id), value)
	}

	for name, value := range res.Unknown {
		if value == "" {
			continue
		}

		e.Request.AddHeader(name, value)
	}

	e.readable = res.Body

	return ReceiveHeaders, Success
}

// ReceiveData awaits a single body chunk of up to size bytes (the configured hint by
// default). Nil data with a Success code stands for end-of-stream, at which point the
// exchange stops being readable; it is distinct from an empty chunk.
func (e *Exchange) ReceiveData(size ...int) ([]byte, uint32) {
	res := e.engine.ReceiveData(e.ref, e.id, optional(size, e.cfg.DataBuffSize))
	if res.Code != Success {
		return nil, res.Code
	}

	if res.EOF {
		e.readable = false
		return nil, Success
	}

	return res.Data, Success
}

// Send transmits the response head: status line, headers and, once the response is
// final, trailers. Passing final marks the response complete, no SendData may follow.
// A Transfer-Encoding: chunked header switches the exchange into chunked framing for
// subsequent SendData calls.
func (e *Exchange) Send(final ...bool) uint32 {
	moreToFollow := e.writable
	if optional(final, false) {
		e.writable = false
	}

	items := make([]block.Item, 0, 7+2*e.Response.Headers().Len())
	items = append(items,
		block.Flag(e.opaque),
		block.Flag(moreToFollow),
		block.Flag(!e.writable && e.disconnect),
		block.Num(int64(e.Response.Status)),
	)

	major, minor := splitVersion(e.Response.Version)
	items = append(items, block.Num(major), block.Num(minor), block.Str(e.Response.Reason))

	for key, value := range e.Response.Headers().Pairs() {
		if strcomp.EqualFold(key, "Transfer-Encoding") && strcomp.EqualFold(value, "chunked") {
			e.chunked = true
		}

		items = block.AddHeader(items, key, value)
	}

	if !e.writable {
		for key, value := range e.Response.Trailers().Pairs() {
			items = block.AddHeader(items, key, value)
		}
	}

	return e.engine.Send(e.ref, e.id, block.Render(items))
}

// SendData transmits body data, any number of chunks at once. Passing final marks the
// response complete: under chunked framing this appends the terminating zero-length
// chunk, and, when no trailers were written, the closing blank line (a trailer block
// provides its own closure).
func (e *Exchange) SendData(data [][]byte, final ...bool) uint32 {
	fin := optional(final, false)
	if fin {
		e.writable = false
	}

	lead := []block.Item{
		block.Flag(e.opaque),
		block.Flag(e.writable),
		block.Flag(!e.writable && e.disconnect),
	}

	trailers := false
	if !e.writable && e.chunked {
		for key, value := range e.Response.Trailers().Pairs() {
			lead = append(lead, block.Str(key), block.Str(value))
			trailers = true
		}
	}

	chunks := make([][]byte, 0, len(data)+2)

	for _, piece := range data {
		if len(piece) == 0 {
			continue
		}

		if e.chunked {
			piece = frameChunk(piece)
		}

		chunks = append(chunks, piece)
	}

	if e.chunked && fin {
		chunks = append(chunks, lastChunk)
		if !trailers {
			chunks = append(chunks, crlf)
		}
	}

	return e.engine.SendData(e.ref, e.id, chunks, block.Render(lead))
}

// SendString is a shorthand for sending a single string chunk.
func (e *Exchange) SendString(data string, final ...bool) uint32 {
	return e.SendData([][]byte{uf.S2B(data)}, final...)
}

// Push announces a server-initiated sub-request to let the engine start fetching a
// related resource ahead of time. Fire-and-forget: no response is awaited and the
// exchange's own state stays untouched. The headers storage may be nil.
func (e *Exchange) Push(method, url string, headers *kv.Storage) {
	path, query := splitURL(url)
	items := []block.Item{
		block.Num(int64(verb.Parse(method))),
		block.WideStr(path),
		block.Str(query),
	}

	if headers != nil {
		for key, value := range headers.Pairs() {
			items = block.AddHeader(items, key, value)
		}
	}

	e.engine.Push(e.ref, e.id, block.Render(items))
}

// Cancel requests an abort from the engine and releases the handle. The exchange's
// identity is cleared before the engine is even asked, so anybody racing against the
// cancellation observes Done() immediately. Returns ok=false without touching the
// engine if the exchange is already done.
func (e *Exchange) Cancel() (code uint32, ok bool) {
	if e.Done() {
		return 0, false
	}

	ref, id := e.ref, e.id
	e.hasRef = false
	e.id = 0

	code = e.engine.Cancel(ref, id)
	e.engine.Close(ref)

	return code, true
}

// Close releases the exchange's handle. Idempotent: closing an already closed or
// cancelled exchange is a no-op.
func (e *Exchange) Close() {
	if !e.hasRef {
		return
	}

	ref := e.ref
	e.hasRef = false
	e.id = 0

	e.engine.Close(ref)
}

var (
	crlf      = []byte("\r\n")
	lastChunk = []byte("0\r\n")
)

// frameChunk wraps a nonempty piece of data into a single chunked transfer-coding
// frame: <hex length>\r\n<bytes>\r\n.
func frameChunk(piece []byte) []byte {
	framed := make([]byte, 0, len(piece)+16)
	framed = strconv.AppendUint(framed, uint64(len(piece)), 16)
	framed = append(framed, crlf...)
	framed = append(framed, piece...)
	framed = append(framed, crlf...)

	return framed
}

func splitVersion(version string) (major, minor int64) {
	before, after, _ := strings.Cut(version, ".")
	major, _ = strconv.ParseInt(before, 10, 64)
	minor, _ = strconv.ParseInt(after, 10, 64)

	return major, minor
}

// splitURL cuts the url at the first question mark. The query keeps the question mark
// itself and is empty when there is none.
func splitURL(url string) (path, query string) {
	if idx := strings.IndexByte(url, '?'); idx != -1 {
		return url[:idx], url[idx:]
	}

	return url, ""
}

func optional[T any](values []T, fallback T) T {
	if len(values) > 0 {
		// peek the first, ignore the rest
		return values[0]
	}

	return fallback
}
