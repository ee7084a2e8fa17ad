// Command govig encrypts and decrypts text with the Vigenère cipher,
// interactively or from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/idelchi/gogen/pkg/cobraext"
	"github.com/idelchi/govig/internal/commands"
	"github.com/idelchi/govig/internal/config"
)

// version is set at build time.
var version = "unknown - unofficial & generated by unknown"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := commands.NewRootCommand(&config.Config{}, version).ExecuteContext(ctx)
	if err != nil && !errors.Is(err, cobraext.ErrExitGracefully) {
		fmt.Fprintln(os.Stderr, err)

		stop()
		os.Exit(1)
	}
}
