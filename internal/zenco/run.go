package zenco

import (
	"context"
	"fmt"

	"github.com/paudelnirajan/zenco-companion/internal/execx"
	"github.com/paudelnirajan/zenco-companion/internal/messages"
)

// Propose asks zenco to transform file according to instruction and returns
// the proposed file content. zenco is a black box here: `--print` makes it
// write the transformed file to stdout instead of editing in place.
func Propose(ctx context.Context, runner execx.Runner, path string, file string, instruction string) (string, error) {
	out, err := runner.Run(ctx, path, "run", file, "--instruction", instruction, "--print")
	if err != nil {
		return "", fmt.Errorf(messages.RunZencoFailedFmt, err)
	}
	return out, nil
}
