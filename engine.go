package syshttp

import (
	"github.com/indigo-web/syshttp/block"
	"github.com/indigo-web/syshttp/verb"
)

// Ref is an opaque handle identifying an exchange's connection/request context. It is
// owned by the engine and carries no meaning on this side of the boundary.
type Ref uint64

// ID is an opaque per-read-cycle token. The engine assigns a fresh one on each
// successful Receive.
type ID uint64

// Engine result codes are engine-defined integers and are routed through this layer
// verbatim. Only two of them carry meaning here.
const (
	// Success is the engine's all-good code.
	Success uint32 = 0
	// Aborted is the engine's distinguished "operation was cancelled" code. Receive
	// reinterprets it as an expected end-of-exchange signal rather than a failure.
	Aborted uint32 = 995
)

// ReceiveResult is what the engine reports for one header read cycle. Past Code, ID and
// More, the fields are meaningful only when Code is Success and More is unset.
type ReceiveResult struct {
	Code uint32
	ID   ID
	// More indicates the head didn't fit the read and another Receive is required.
	More       bool
	Verb       verb.Verb
	CustomVerb string
	URL        string
	Version    string
	HTTP2      bool
	// Body indicates the request carries an entity body.
	Body bool
	// Known holds header values indexed by canonical request header id; absent headers
	// are empty strings.
	Known []string
	// Unknown holds the headers outside the canonical table.
	Unknown map[string]string
}

// DataResult is what the engine reports for one body read.
type DataResult struct {
	Code uint32
	// EOF indicates the body is over. It is distinct from an empty read.
	EOF  bool
	Data []byte
}

// Engine is the underlying HTTP engine performing the actual network I/O, connection
// handling and protocol parsing. It is reachable only through these calls, exchanging
// pre-packed blocks rather than structured objects. Receive, ReceiveData, Send,
// SendData and Cancel may block until the engine responds; Push and Close are
// fire-and-forget.
type Engine interface {
	// Init bootstraps the engine. Called exactly once per bridge.
	Init(server, config bool) uint32
	// Create requests a new exchange handle under the given (possibly empty) name.
	Create(name string) (Ref, uint32)
	// Open attaches to an already existing named exchange queue.
	Open(name string) (Ref, uint32)
	// Listen registers a URL prefix on the exchange's queue.
	Listen(ref Ref, url string) uint32
	// Push announces a server-initiated sub-request. No response follows.
	Push(ref Ref, id ID, head block.Rendered)
	Receive(ref Ref, size int) ReceiveResult
	ReceiveData(ref Ref, id ID, size int) DataResult
	Send(ref Ref, id ID, head block.Rendered) uint32
	SendData(ref Ref, id ID, chunks [][]byte, lead block.Rendered) uint32
	// Cancel requests an abort of whatever is in flight under the id.
	Cancel(ref Ref, id ID) uint32
	// Close releases the handle. Closing an already released handle is the caller's
	// bug; Exchange guards against it.
	Close(ref Ref)
}
