package cli

import (
	"io"
	"os"

	"github.com/Rangchakdv/MazeSolver/internal/config"
)

// RunOptions contains the configuration shared by the interactive commands.
type RunOptions struct {
	Config config.Config
	Debug  bool
	JSON   bool

	// Input and Output default to Stdin and Stdout.
	Input  io.Reader
	Output io.Writer
}

func (o RunOptions) streams() (io.Reader, io.Writer) {
	in, out := o.Input, o.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}
