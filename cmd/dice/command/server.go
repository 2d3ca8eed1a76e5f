package command

import (
	"github.com/rollforge/dicechat/server"
	"github.com/urfave/cli"
)

// ServerCommand starts the dice chat HTTP/WebSocket server and blocks until
// it receives a shutdown signal.
func ServerCommand(c *cli.Context) error {
	cfg := server.Config{
		Addr:       c.String("http"),
		ConfigPath: c.String("config"),
	}
	return server.Run(cfg)
}
