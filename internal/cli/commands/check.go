package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/streamtype-labs/typetree/internal/config"
	"github.com/streamtype-labs/typetree/pkg/typeparser"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [descriptor...]",
		Short: "Validate type descriptors",
		Long: `Validate one or more type descriptors without printing their trees.

Descriptors are taken from the arguments, or one per line from stdin when
piped. Exits non-zero when any descriptor is malformed, printing the
diagnostic for each failure.`,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.LoggerFromContext(cmd.Context())
	opts := typeparser.Options{MaxDepth: cfg.MaxDepth}

	descriptors := args
	if len(descriptors) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			descriptors = append(descriptors, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}
	if len(descriptors) == 0 {
		return fmt.Errorf("no type descriptors to check")
	}

	failures := 0
	for _, d := range descriptors {
		if _, err := typeparser.ParseWithOptions(d, opts); err != nil {
			failures++
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", d, err)
			continue
		}
		logger.Debug("descriptor ok", "descriptor", d)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d descriptors failed validation", failures, len(descriptors))
	}
	return nil
}
