package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-cminus/internal/astjson"
	"github.com/cwbudde/go-cminus/internal/errors"
	"github.com/cwbudde/go-cminus/internal/semantic"
)

var (
	analyzeSymtab     bool
	analyzeJSON       bool
	analyzeSourceFile string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Run semantic analysis over a JSON-encoded C− AST",
	Long: `Run both analysis passes over a JSON-encoded C− AST and report
every symbol and type violation.

If no file is provided, the AST document is read from stdin.
Use --symtab to print the symbol table after the first pass.
Use --source to point at the original C− source file for diagnostics
with source context.
Use --json to emit the machine-readable result document instead of the
plain listing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeSymtab, "symtab", false, "print the symbol table after pass 1")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the result as JSON")
	analyzeCmd.Flags().StringVar(&analyzeSourceFile, "source", "", "original C− source file, for diagnostics with context")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error

	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
	}

	program, err := astjson.Decode(data)
	if err != nil {
		return err
	}

	listing := cmd.OutOrStdout()
	plain := !analyzeJSON && analyzeSourceFile == ""

	var opts []semantic.Option
	if plain {
		opts = append(opts, semantic.WithListing(listing), semantic.WithTrace(analyzeSymtab))
	}

	analyzer := semantic.NewAnalyzer(opts...)
	if err := analyzer.BuildSymtab(program); err != nil {
		return err
	}
	if err := analyzer.TypeCheck(program); err != nil {
		return err
	}

	switch {
	case analyzeJSON:
		out, err := astjson.EncodeResult(analyzer)
		if err != nil {
			return err
		}
		fmt.Fprintln(listing, string(out))

	case analyzeSourceFile != "":
		source, err := os.ReadFile(analyzeSourceFile)
		if err != nil {
			return fmt.Errorf("error reading source file: %w", err)
		}
		var listingErrs []*errors.ListingError
		for _, diag := range analyzer.SemanticErrors() {
			listingErrs = append(listingErrs, errors.NewListingError(diag.Line, diag.Error(), string(source)))
		}
		if len(listingErrs) > 0 {
			fmt.Fprintln(listing, errors.FormatAll(listingErrs, false))
		}
	}

	if analyzeSymtab && !plain {
		fmt.Fprintf(listing, "\nSymbol table:\n\n")
		analyzer.WriteSymTab(listing)
	}

	if analyzer.Failed() {
		return fmt.Errorf("analysis failed with %d error(s)", len(analyzer.Errors()))
	}
	return nil
}
