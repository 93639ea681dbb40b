package config

import (
	"github.com/urfave/cli/v3"
)

// Preview holds preview server configuration
type Preview struct {
	Addr string
}

// Flags returns CLI flags for Preview configuration
func (p *Preview) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Preview server address",
			Value:       "127.0.0.1:8710",
			Sources:     cli.EnvVars("ARGUS_ADDR"),
			Destination: &p.Addr,
		},
	}
}
