package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cminus",
	Short: "C− semantic analyzer",
	Long: `go-cminus is the semantic analysis core of a C− compiler.

It consumes the JSON-encoded abstract syntax tree produced by a C−
parser, builds a hierarchically scoped symbol table, type-checks the
tree, and reports every symbol and type violation it can detect.

C− is a small C-like teaching language with integers, integer arrays,
void, functions, compound statements, conditionals, while-loops, and
return.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
