// Package commands implements the typetree subcommands.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readDescriptor returns the descriptor to parse: the single positional
// argument when given, otherwise everything piped on stdin. Invoking
// without an argument on an interactive terminal is an error rather
// than a silent hang.
func readDescriptor(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("no type descriptor given (pass one as an argument or pipe it on stdin)")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
