package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamtype-labs/typetree/internal/config"
	"github.com/streamtype-labs/typetree/pkg/format"
	"github.com/streamtype-labs/typetree/pkg/typeparser"
)

// NewLabelCommand creates the label command.
func NewLabelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "label [descriptor]",
		Short: "Print the short display label for a type descriptor",
		Long: `Print the short human-readable label for a type descriptor: arrays
collapse to T[] and maximum-length decorations are stripped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			input, err := readDescriptor(cmd, args)
			if err != nil {
				return err
			}
			node, err := typeparser.ParseWithOptions(input, typeparser.Options{MaxDepth: cfg.MaxDepth})
			if err != nil {
				return fmt.Errorf("cannot parse descriptor: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), format.Label(node))
			return nil
		},
	}
}
