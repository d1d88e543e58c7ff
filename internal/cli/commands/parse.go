package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/streamtype-labs/typetree/internal/config"
	"github.com/streamtype-labs/typetree/internal/render"
	"github.com/streamtype-labs/typetree/pkg/format"
	"github.com/streamtype-labs/typetree/pkg/typeparser"
	"github.com/streamtype-labs/typetree/pkg/typetree"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [descriptor]",
		Short: "Parse a type descriptor and print it",
		Long: `Parse a FULL_DATA_TYPE descriptor and print the resulting type tree.

The descriptor is taken from the first argument, or from stdin when piped:

  typetree parse 'ROW<` + "`id`" + ` BIGINT NOT NULL, ` + "`tags`" + ` ARRAY<VARCHAR(255)>>'
  echo 'MAP<INT, VARCHAR>' | typetree parse -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())
	logger := config.LoggerFromContext(cmd.Context())

	input, err := readDescriptor(cmd, args)
	if err != nil {
		return err
	}

	node, err := typeparser.ParseWithOptions(input, typeparser.Options{MaxDepth: cfg.MaxDepth})
	if err != nil {
		return fmt.Errorf("cannot parse descriptor: %w", err)
	}
	logger.Debug("parsed descriptor", "kind", node.Kind().String(), "nullable", node.Nullable())

	out := cmd.OutOrStdout()
	switch cfg.Output {
	case "json":
		data, err := typetree.MarshalJSON(node)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(typetree.ToWire(node))
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(out, string(data))
	case "label":
		_, _ = fmt.Fprintln(out, format.Label(node))
	case "canonical":
		_, _ = fmt.Fprintln(out, format.Canonical(node))
	default:
		return render.Tree(out, node, render.AutoStyles(cfg.NoColor))
	}
	return nil
}
