// Package block renders heterogeneous sequences of strings, byte buffers, booleans and
// numbers into the engine's boundary form: one contiguous payload plus a flat array of
// per-item fields. Packing everything into a single buffer keeps both the allocation
// count and the number of values crossing the boundary low.
package block

import (
	"github.com/indigo-web/syshttp/header"
	"github.com/indigo-web/syshttp/internal/wide"
	"github.com/indigo-web/utils/uf"
)

type Kind uint8

const (
	KindBinary Kind = iota
	KindText
	KindWide
	KindBool
	KindNumber
)

// Item is one element of a block: a byte buffer, a string in one of the two supported
// byte encodings, a boolean or a number. Construct items via Bin, Str, WideStr, Flag
// and Num.
type Item struct {
	kind Kind
	data []byte
	str  string
	flag bool
	num  int64
}

// Bin wraps a raw byte buffer. The buffer is not copied.
func Bin(data []byte) Item {
	return Item{kind: KindBinary, data: data}
}

// Str wraps a string in the default (UTF-8) encoding.
func Str(s string) Item {
	return Item{kind: KindText, str: s}
}

// WideStr wraps a string in the engine's native wide (UTF-16LE) encoding. URL paths
// must cross the boundary in this form.
func WideStr(s string) Item {
	return Item{kind: KindWide, str: s}
}

func Flag(b bool) Item {
	return Item{kind: KindBool, flag: b}
}

func Num(n int64) Item {
	return Item{kind: KindNumber, num: n}
}

func (i Item) Kind() Kind {
	return i.kind
}

type FieldKind uint8

const (
	// FieldSpan addresses a byte range of the rendered buffer.
	FieldSpan FieldKind = iota
	FieldBool
	FieldNumber
)

// Field describes one original item of a rendered block: textual and binary items
// become (offset, length) spans into the combined buffer, scalars stay literal.
type Field struct {
	Kind FieldKind
	Off  int
	Len  int
	Bool bool
	Num  int64
}

// Rendered is a block in its boundary form. Fields preserve the original item order.
type Rendered struct {
	Buffer []byte
	Fields []Field
}

// Span returns the bytes of a span field.
func (r Rendered) Span(f Field) []byte {
	return r.Buffer[f.Off : f.Off+f.Len]
}

// Render encodes the items in a single pass. Every string item's encoded bytes are
// followed by a reserved two-byte terminator slot: the slot is written as zeros and
// excluded from the field length, the engine patches it in place. Rendering the same
// items always yields byte-identical output.
func Render(items []Item) Rendered {
	r := Rendered{
		Fields: make([]Field, 0, len(items)),
	}

	if payload, ok := soleBinary(items); !ok {
		r.Buffer = make([]byte, 0, sizeHint(items))
	} else if payload != nil {
		// the whole payload is a single byte buffer, pass it along without copying
		r.Buffer = payload
	}

	offset := 0

	for _, item := range items {
		switch item.kind {
		case KindBinary:
			if offset == len(r.Buffer) {
				// not the case only when the buffer already aliases this sole item
				r.Buffer = append(r.Buffer, item.data...)
			}
			r.Fields = append(r.Fields, Field{Kind: FieldSpan, Off: offset, Len: len(item.data)})
			offset += len(item.data)
		case KindText:
			r.Buffer = append(r.Buffer, item.str...)
			r.Fields = append(r.Fields, Field{Kind: FieldSpan, Off: offset, Len: len(item.str)})
			r.Buffer = append(r.Buffer, 0, 0)
			offset = len(r.Buffer)
		case KindWide:
			encoded := wide.Encode(item.str)
			r.Buffer = append(r.Buffer, encoded...)
			r.Fields = append(r.Fields, Field{Kind: FieldSpan, Off: offset, Len: len(encoded)})
			r.Buffer = append(r.Buffer, 0, 0)
			offset = len(r.Buffer)
		case KindBool:
			r.Fields = append(r.Fields, Field{Kind: FieldBool, Bool: item.flag})
		case KindNumber:
			r.Fields = append(r.Fields, Field{Kind: FieldNumber, Num: item.num})
		}
	}

	return r
}

// AddHeader appends one header entry to the item sequence: the canonical response-side
// id followed by the value, and, when the name has no canonical id, the literal name
// right after the value so the engine can use it verbatim. Callers must append headers
// in the insertion order of their source container, some of them are order-sensitive
// on the wire.
func AddHeader(items []Item, name, value string) []Item {
	id := header.Response(name)
	items = append(items, Num(int64(id)), Str(value))
	if id == -1 {
		items = append(items, Str(name))
	}

	return items
}

// soleBinary reports whether the block's payload consists of exactly one binary item
// and no textual ones, in which case that item's buffer may serve as the combined
// buffer directly.
func soleBinary(items []Item) (payload []byte, ok bool) {
	for _, item := range items {
		switch item.kind {
		case KindBinary:
			if ok {
				return nil, false
			}
			payload, ok = item.data, true
		case KindText, KindWide:
			return nil, false
		}
	}

	return payload, ok
}

func sizeHint(items []Item) (size int) {
	for _, item := range items {
		switch item.kind {
		case KindBinary:
			size += len(item.data)
		case KindText:
			size += len(item.str) + 2
		case KindWide:
			// a wide character takes at least two bytes
			size += 2*len(item.str) + 2
		}
	}

	return size
}

// Text is a shorthand for interpreting a span field as a string.
func (r Rendered) Text(f Field) string {
	return uf.B2S(r.Span(f))
}
