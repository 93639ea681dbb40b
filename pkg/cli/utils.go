package cli

import (
	"slices"

	"github.com/urfave/cli/v3"
)

// joinFlags flattens the per-concern flag groups of a subcommand into the
// single slice urfave/cli expects.
func joinFlags(groups ...[]cli.Flag) []cli.Flag {
	return slices.Concat(groups...)
}
