package benchrun

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// WriteSummary prints the human-readable results block.
func WriteSummary(w io.Writer, r *Results) {
	fmt.Fprintf(w, "\n=== Benchmark Results ===\n")
	fmt.Fprintf(w, "Run ID: %s\n", r.RunID)
	fmt.Fprintf(w, "Op: %s (%s)\n", r.Op, r.Path)
	fmt.Fprintf(w, "Workers: %d\n", r.Workers)
	fmt.Fprintf(w, "Total ops: %d\n", r.TotalOps)
	fmt.Fprintf(w, "Total elapsed time: %v\n", r.ElapsedTime.Round(time.Millisecond))
	fmt.Fprintf(w, "Ops/sec: %.2f\n", r.OpsPerSecond)
	fmt.Fprintf(w, "Latency (mean): %.2f ns\n", r.LatencyNs)
	fmt.Fprintf(w, "=========================\n")
}

// FormatMarkdown renders the results row as a markdown table for READMEs.
func FormatMarkdown(r *Results) string {
	var b strings.Builder
	b.WriteString("| Path | Op | Workers | Total Ops | Duration (ms) | Ops/sec | Latency (ns) |\n")
	b.WriteString("|------|----|---------|-----------|---------------|---------|--------------|\n")
	fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %.2f | %.2f |\n",
		r.Path,
		r.Op,
		r.Workers,
		r.TotalOps,
		r.ElapsedTime.Milliseconds(),
		r.OpsPerSecond,
		r.LatencyNs)
	return b.String()
}
