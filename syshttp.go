// Package syshttp mediates single HTTP request/response exchanges between callers and
// an underlying HTTP engine. The engine does the actual network I/O, connection
// handling and protocol parsing; this layer translates rich HTTP semantics into and
// out of the compact binary blocks the engine speaks, and tracks the lifecycle of
// each exchange.
package syshttp

import (
	"github.com/dchest/uniuri"
	"github.com/indigo-web/syshttp/config"
)

// Bridge is the composition root owning the engine. It bootstraps the engine exactly
// once, no matter how many exchanges are created through it, and is the only place
// holding that guard.
type Bridge struct {
	engine      Engine
	cfg         config.Config
	initialized bool
	controller  bool
}

// New returns a new Bridge over the engine with default configuration.
func New(engine Engine) *Bridge {
	if engine == nil {
		panic("syshttp: nil engine")
	}

	return &Bridge{
		engine: engine,
		cfg:    config.Default(),
	}
}

// Tune replaces default configuration.
func (b *Bridge) Tune(cfg config.Config) *Bridge {
	b.cfg = config.Fill(cfg)
	return b
}

// Create requests a new exchange handle from the engine. Creating under a non-empty
// name makes the queue shareable and this bridge its controller; with an empty name
// the queue is anonymous and the exchange gets a random symbolic name instead.
func (b *Bridge) Create(name string) (*Exchange, uint32) {
	if code := b.init(); code != Success {
		return nil, code
	}

	ref, code := b.engine.Create(name)
	if code != Success {
		return nil, code
	}

	if name == "" {
		name = uniuri.New()
	} else {
		b.controller = true
	}

	return newExchange(b.engine, b.cfg.Engine, name, ref), Success
}

// Open attaches to an already existing named queue, e.g. one created by a controller
// bridge in another process.
func (b *Bridge) Open(name string) (*Exchange, uint32) {
	if code := b.init(); code != Success {
		return nil, code
	}

	ref, code := b.engine.Open(name)
	if code != Success {
		return nil, code
	}

	return newExchange(b.engine, b.cfg.Engine, name, ref), Success
}

// Controller reports whether the bridge created a named, shareable queue.
func (b *Bridge) Controller() bool {
	return b.controller
}

func (b *Bridge) init() uint32 {
	if b.initialized {
		return Success
	}

	code := b.engine.Init(b.cfg.Engine.Server, b.cfg.Engine.Config)
	if code == Success {
		b.initialized = true
	}

	return code
}
