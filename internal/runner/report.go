package runner

import (
	"fmt"
	"io"
)

// Report writes one line per result as name, solver, result and status
// separated by tabs, followed by a summary line. The result column holds the
// JSON output, or the error text for failed solver calls.
func Report(w io.Writer, results []Result) error {
	counts := make(map[Status]int, 5)
	for _, res := range results {
		counts[res.Status]++
		out := res.Output
		if res.Err != nil {
			out = res.Err.Error()
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", res.Case, res.Solver, out, res.Status); err != nil {
			return fmt.Errorf("runner: report: %w", err)
		}
	}
	_, err := fmt.Fprintf(w, "total=%d pass=%d fail=%d done=%d error=%d skipped=%d\n",
		len(results), counts[StatusPass], counts[StatusFail], counts[StatusDone],
		counts[StatusError], counts[StatusSkipped])
	if err != nil {
		return fmt.Errorf("runner: report: %w", err)
	}

	return nil
}

// Failed reports whether any result is a mismatch, an error or skipped.
func Failed(results []Result) bool {
	for _, res := range results {
		switch res.Status {
		case StatusFail, StatusError, StatusSkipped:
			return true
		}
	}

	return false
}
