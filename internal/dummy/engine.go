// Package dummy provides a scripted engine for tests. It records every boundary call
// and replays canned results, so exchange behavior can be tested without any real
// engine behind it.
package dummy

import (
	"github.com/indigo-web/syshttp"
	"github.com/indigo-web/syshttp/block"
)

type SendDataCall struct {
	Ref    syshttp.Ref
	ID     syshttp.ID
	Chunks [][]byte
	Lead   block.Rendered
}

type CancelCall struct {
	Ref syshttp.Ref
	ID  syshttp.ID
}

// Engine implements syshttp.Engine. Zero value is usable: every call succeeds, reads
// report neither data nor headers. Script it by filling the code and result fields.
type Engine struct {
	InitCode     uint32
	CreateCode   uint32
	OpenCode     uint32
	ListenCode   uint32
	SendCode     uint32
	SendDataCode uint32
	CancelCode   uint32

	// Receives and DataReads are consumed in order; past the end, zero results are
	// replayed.
	Receives  []syshttp.ReceiveResult
	DataReads []syshttp.DataResult

	Inits        int
	ServerFlag   bool
	ConfigFlag   bool
	Created      []string
	Opened       []string
	Listened     []string
	ReceiveSizes []int
	DataSizes    []int
	Pushes       []block.Rendered
	Sends        []block.Rendered
	SendsData    []SendDataCall
	Cancels      []CancelCall
	Closed       []syshttp.Ref

	nextRef syshttp.Ref
}

func (e *Engine) Init(server, config bool) uint32 {
	e.Inits++
	e.ServerFlag, e.ConfigFlag = server, config
	return e.InitCode
}

func (e *Engine) Create(name string) (syshttp.Ref, uint32) {
	e.Created = append(e.Created, name)
	if e.CreateCode != 0 {
		return 0, e.CreateCode
	}

	e.nextRef++
	return e.nextRef, 0
}

func (e *Engine) Open(name string) (syshttp.Ref, uint32) {
	e.Opened = append(e.Opened, name)
	if e.OpenCode != 0 {
		return 0, e.OpenCode
	}

	e.nextRef++
	return e.nextRef, 0
}

func (e *Engine) Listen(_ syshttp.Ref, url string) uint32 {
	e.Listened = append(e.Listened, url)
	return e.ListenCode
}

func (e *Engine) Push(_ syshttp.Ref, _ syshttp.ID, head block.Rendered) {
	e.Pushes = append(e.Pushes, head)
}

func (e *Engine) Receive(_ syshttp.Ref, size int) syshttp.ReceiveResult {
	e.ReceiveSizes = append(e.ReceiveSizes, size)
	if len(e.Receives) == 0 {
		return syshttp.ReceiveResult{}
	}

	res := e.Receives[0]
	e.Receives = e.Receives[1:]
	return res
}

func (e *Engine) ReceiveData(_ syshttp.Ref, _ syshttp.ID, size int) syshttp.DataResult {
	e.DataSizes = append(e.DataSizes, size)
	if len(e.DataReads) == 0 {
		return syshttp.DataResult{}
	}

	res := e.DataReads[0]
	e.DataReads = e.DataReads[1:]
	return res
}

func (e *Engine) Send(_ syshttp.Ref, _ syshttp.ID, head block.Rendered) uint32 {
	e.Sends = append(e.Sends, head)
	return e.SendCode
}

func (e *Engine) SendData(ref syshttp.Ref, id syshttp.ID, chunks [][]byte, lead block.Rendered) uint32 {
	e.SendsData = append(e.SendsData, SendDataCall{Ref: ref, ID: id, Chunks: chunks, Lead: lead})
	return e.SendDataCode
}

func (e *Engine) Cancel(ref syshttp.Ref, id syshttp.ID) uint32 {
	e.Cancels = append(e.Cancels, CancelCall{Ref: ref, ID: id})
	return e.CancelCode
}

func (e *Engine) Close(ref syshttp.Ref) {
	e.Closed = append(e.Closed, ref)
}
