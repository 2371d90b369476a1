package verb

// Verb is a small integer code standing in for an HTTP method name across the engine
// boundary. The numeric values are fixed by the engine's wire contract and must not be
// reordered.
type Verb uint8

// Unknown is the engine's sentinel for a method outside the fixed table. It is not
// an error: the literal method string travels alongside it.
const Unknown Verb = 0

// ids 1 and 2 are reserved by the engine and never carry a name.
const (
	OPTIONS Verb = iota + 3
	GET
	HEAD
	POST
	PUT
	DELETE
	TRACE
	CONNECT
	TRACK
	MOVE
	COPY
	PROPFIND
	PROPPATCH
	MKCOL
	LOCK
	UNLOCK
	SEARCH

	// Max is the greatest populated verb id.
	Max = SEARCH
)

var names = [...]string{
	OPTIONS:   "OPTIONS",
	GET:       "GET",
	HEAD:      "HEAD",
	POST:      "POST",
	PUT:       "PUT",
	DELETE:    "DELETE",
	TRACE:     "TRACE",
	CONNECT:   "CONNECT",
	TRACK:     "TRACK",
	MOVE:      "MOVE",
	COPY:      "COPY",
	PROPFIND:  "PROPFIND",
	PROPPATCH: "PROPPATCH",
	MKCOL:     "MKCOL",
	LOCK:      "LOCK",
	UNLOCK:    "UNLOCK",
	SEARCH:    "SEARCH",
}

// Name returns the method name of the verb. The second return value reports whether the
// id is populated in the table; callers must fall back to an explicitly supplied method
// string otherwise.
func Name(v Verb) (string, bool) {
	if int(v) >= len(names) || names[v] == "" {
		return "", false
	}

	return names[v], true
}

// Parse resolves a method name to its verb id. Unrecognized names yield Unknown, which
// is a valid value, not an error.
func Parse(str string) Verb {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		} else if str == "COPY" {
			return COPY
		} else if str == "MOVE" {
			return MOVE
		} else if str == "LOCK" {
			return LOCK
		}
	case 5:
		if str == "TRACE" {
			return TRACE
		} else if str == "TRACK" {
			return TRACK
		} else if str == "MKCOL" {
			return MKCOL
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		} else if str == "UNLOCK" {
			return UNLOCK
		} else if str == "SEARCH" {
			return SEARCH
		}
	case 7:
		if str == "OPTIONS" {
			return OPTIONS
		} else if str == "CONNECT" {
			return CONNECT
		}
	case 8:
		if str == "PROPFIND" {
			return PROPFIND
		}
	case 9:
		if str == "PROPPATCH" {
			return PROPPATCH
		}
	}

	return Unknown
}
