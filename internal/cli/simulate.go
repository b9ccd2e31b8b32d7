package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/coinflip/internal/config"
	"github.com/agbru/coinflip/internal/format"
	"github.com/agbru/coinflip/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: trial count, worker count, timeout, and environment details.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Flipping %s%s%s coins across %s%d%s workers with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), format.FormatCount(uint64(cfg.Trials)), ui.ColorReset(),
		ui.ColorCyan(), cfg.Workers, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	if cfg.Seed != 0 {
		fmt.Fprintf(out, "Deterministic run with seed %s%d%s.\n",
			ui.ColorCyan(), cfg.Seed, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Destination: %s%s%s.\n",
		ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
