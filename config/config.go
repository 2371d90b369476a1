package config

import "log"

// minimalBuffSize defines the least amount of bytes a single engine read may be asked
// for. In case a buffer size is set below it'll be lifted and a debug log will be
// printed.
const minimalBuffSize = 16

type Engine struct {
	// ReceiveBuffSize is the size hint passed to the engine when reading request
	// headers. The engine treats it as a hint, not a hard cap.
	ReceiveBuffSize int
	// DataBuffSize is the size hint passed to the engine when reading a body chunk.
	DataBuffSize int
	// Server enables the serving half of the engine at bootstrap.
	Server bool
	// Config enables the engine's configuration interface at bootstrap.
	Config bool
}

type Config struct {
	Engine Engine
}

// Default returns the default configuration: serving enabled, 4096-byte header reads
// and 256-byte body reads.
func Default() Config {
	return Config{
		Engine: Engine{
			ReceiveBuffSize: 4096,
			DataBuffSize:    256,
			Server:          true,
		},
	}
}

// Fill replaces zero values with defaults and lifts buffer sizes to the minimum.
func Fill(c Config) Config {
	defaults := Default()

	if c.Engine.ReceiveBuffSize == 0 {
		c.Engine.ReceiveBuffSize = defaults.Engine.ReceiveBuffSize
	}
	if c.Engine.DataBuffSize == 0 {
		c.Engine.DataBuffSize = defaults.Engine.DataBuffSize
	}

	c.Engine.ReceiveBuffSize = atLeast(c.Engine.ReceiveBuffSize, "Engine.ReceiveBuffSize")
	c.Engine.DataBuffSize = atLeast(c.Engine.DataBuffSize, "Engine.DataBuffSize")

	return c
}

func atLeast(size int, option string) int {
	if size < minimalBuffSize {
		log.Printf("misconfiguration: %s is set to %d, however minimal possible value "+
			"is %d. Setting it hard to %d\n",
			option, size, minimalBuffSize, minimalBuffSize,
		)

		return minimalBuffSize
	}

	return size
}
