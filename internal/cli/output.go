// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySummary], [DisplayProgress], [DisplayMemoryStats].
//
//   - Print* functions write banner-style sections to an [io.Writer].
//     Example: [PrintExecutionConfig].
//
//   - Format* functions live in the format package and return strings
//     without performing I/O.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/coinflip/internal/format"
	"github.com/agbru/coinflip/internal/report"
	"github.com/agbru/coinflip/internal/sysmon"
	"github.com/agbru/coinflip/internal/ui"
)

// DisplaySummary displays the outcome of a finished run: totals, the longest
// streak observed, timing, and throughput.
func DisplaySummary(stats report.Stats, duration time.Duration, out io.Writer) {
	fmt.Fprintf(out, "\n--- Run Summary ---\n")
	fmt.Fprintf(out, "Total flips:    %s%s%s\n",
		ui.ColorBold(), format.FormatCount(stats.Flips), ui.ColorReset())
	fmt.Fprintf(out, "Heads:          %s (%.4f)\n",
		format.FormatCount(stats.Heads), stats.HeadsRatio())
	fmt.Fprintf(out, "Tails:          %s\n", format.FormatCount(stats.Tails))
	fmt.Fprintf(out, "Longest streak: %s%d%s heads\n",
		ui.ColorGreen(), stats.LongestChain, ui.ColorReset())
	fmt.Fprintf(out, "Duration:       %s%s%s (%s)\n",
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset(),
		format.FormatThroughput(stats.Flips, duration))
}

// DisplayQuietSummary outputs a single machine-friendly line for scripting.
func DisplayQuietSummary(stats report.Stats, duration time.Duration, out io.Writer) {
	fmt.Fprintf(out, "flips=%d heads=%d tails=%d longest=%d duration=%s\n",
		stats.Flips, stats.Heads, stats.Tails, stats.LongestChain, duration)
}

// DisplaySaved confirms where the histogram was written.
func DisplaySaved(path string, out io.Writer) {
	fmt.Fprintf(out, "\n%s✓ Histogram saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}

// DisplaySystemStats shows a system-wide CPU and memory snapshot.
func DisplaySystemStats(s sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "\nSystem: %s\n", s)
}

// DisplayMemoryStats shows memory statistics after a run.
func DisplayMemoryStats(heapAlloc, totalAlloc uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(heapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(totalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	if pauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms (GC disabled)\n")
	}
}
