package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// Kept from the package skeleton this tool grew out of.
var helloCmd = &cobra.Command{
	Use:    "hello",
	Short:  "Print a greeting",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "Hello, World! You are using Go %s!\n", goVersion())
		return nil
	},
}

// goVersion returns the runtime version without the "go" prefix,
// e.g. "1.23.0".
func goVersion() string {
	return strings.TrimPrefix(runtime.Version(), "go")
}
