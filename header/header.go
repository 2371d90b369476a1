package header

import (
	"strconv"
	"strings"
)

// The engine addresses well-known headers by small integer ids instead of names. The
// request and response tables share the first twenty ids (general and entity headers),
// then diverge. The numeric values are fixed by the engine's wire contract.

const (
	// RequestCount is the number of ids in the request header table.
	RequestCount = 41
	// ResponseCount is the number of ids in the response header table.
	ResponseCount = 30
)

var requestNames = [RequestCount]string{
	"Cache-Control",
	"Connection",
	"Date",
	"Keep-Alive",
	"Pragma",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
	"Via",
	"Warning",
	"Allow",
	"Content-Length",
	"Content-Type",
	"Content-Encoding",
	"Content-Language",
	"Content-Location",
	"Content-MD5",
	"Content-Range",
	"Expires",
	"Last-Modified",
	"Accept",
	"Accept-Charset",
	"Accept-Encoding",
	"Accept-Language",
	"Authorization",
	"Cookie",
	"Expect",
	"From",
	"Host",
	"If-Match",
	"If-Modified-Since",
	"If-None-Match",
	"If-Range",
	"If-Unmodified-Since",
	"Max-Forwards",
	"Proxy-Authorization",
	"Referer",
	"Range",
	"TE",
	"Translate",
	"User-Agent",
}

// responseNames carries only the response-specific tail; the shared range 0..19 is
// filled in from requestNames at init.
var responseNames = [ResponseCount]string{
	20: "Accept-Ranges",
	21: "Age",
	22: "ETag",
	23: "Location",
	24: "Proxy-Authenticate",
	25: "Retry-After",
	26: "Server",
	27: "Set-Cookie",
	28: "Vary",
	29: "WWW-Authenticate",
}

var responseIDs map[string]int

func init() {
	for id, name := range responseNames {
		if name == "" {
			// the id isn't claimed by a response-specific header, so the request
			// table's header under the same id serves both sides
			responseNames[id] = requestNames[id]
		}
	}

	responseIDs = make(map[string]int, ResponseCount)
	for id, name := range responseNames {
		responseIDs[strings.ToLower(name)] = id
	}
}

// Request returns the canonical name of a request header id. Ids outside the table get
// a deterministic synthetic name, so no id is ever unrepresentable.
func Request(id int) string {
	if id < 0 || id >= RequestCount {
		return "X-Header-" + strconv.Itoa(id)
	}

	return requestNames[id]
}

// Response resolves a header name to its response-side id, matching case-insensitively.
// Returns -1 for names outside the table; the caller must then transmit the literal
// name itself.
func Response(name string) int {
	if id, found := responseIDs[strings.ToLower(name)]; found {
		return id
	}

	return -1
}

// ResponseName returns the canonical name of a response header id, with the same
// synthetic fallback as Request.
func ResponseName(id int) string {
	if id < 0 || id >= ResponseCount {
		return "X-Header-" + strconv.Itoa(id)
	}

	return responseNames[id]
}
