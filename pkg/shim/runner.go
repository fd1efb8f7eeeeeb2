package shim

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/tabwalk/tabwalk/pkg/complete"
)

// Runner answers completion requests against a fixed root model. The model
// must be fully registered before the first request; requests themselves
// share no mutable state, so a Runner can serve any number of them.
type Runner struct {
	root   *complete.Model
	out    io.Writer
	logger *zap.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithOutput redirects candidate output, which defaults to stdout.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) { r.out = w }
}

// WithLogger attaches a logger for request diagnostics. Logging never goes
// to the candidate output stream.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner creates a Runner for the given root model.
func NewRunner(root *complete.Model, opts ...RunnerOption) *Runner {
	r := &Runner{
		root:   root,
		out:    os.Stdout,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run decodes one side-channel payload, completes it, and prints the
// candidates one per line, deduplicated and sorted. It reports whether any
// candidate was found so the caller can map the outcome to its exit status:
// zero when completions exist, non-zero otherwise.
func (r *Runner) Run(values []string) (bool, error) {
	req, err := ParseRequest(values)
	if err != nil {
		r.logger.Error("rejecting completion request", zap.Error(err))
		return false, err
	}

	words, partial := req.Split()
	candidates := lo.Uniq(r.root.Complete(words, partial))
	sort.Strings(candidates)

	r.logger.Debug("completion request",
		zap.Strings("words", words),
		zap.String("partial", partial),
		zap.Int("candidates", len(candidates)))

	for _, c := range candidates {
		fmt.Fprintln(r.out, c)
	}
	return len(candidates) > 0, nil
}
