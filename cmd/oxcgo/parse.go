package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kdy1/go-oxc-core/pkg/typescriptestree"
)

var (
	parseJSX     bool
	parsePretty  bool
	parseTokens  bool
	parseComment bool

	parseCmd = &cobra.Command{
		Use:   "parse <glob...>",
		Short: "Parse source files and print their ESTree AST as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runParse,
	}
)

func init() {
	parseCmd.Flags().BoolVar(&parseJSX, "jsx", false, "enable JSX parsing")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "indent JSON output")
	parseCmd.Flags().BoolVar(&parseTokens, "tokens", false, "include the token stream")
	parseCmd.Flags().BoolVar(&parseComment, "comments", false, "include comments")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	run := func() error { return parseOnce(args) }
	if watch {
		return watchAndRerun(args, run)
	}
	return run()
}

func parseOnce(patterns []string) error {
	files, err := resolveFiles(patterns)
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := parseFile(path); err != nil {
			logger.Sugar().Errorf("%s: %v", path, err)
		}
	}
	return nil
}

func parseFile(path string) error {
	source, err := os.ReadFile(path) // #nosec G304 -- path comes from a user-supplied glob, the CLI's whole purpose
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	builder := typescriptestree.NewBuilder().
		WithFilePath(path).
		WithSourceType(typescriptestree.SourceTypeModule).
		WithJSX(parseJSX).
		WithTokens(parseTokens).
		WithComment(parseComment).
		WithLoc(true).
		WithRange(true).
		WithLogger(logger)

	opts, err := builder.Build()
	if err != nil {
		return fmt.Errorf("building parse options: %w", err)
	}

	result, err := typescriptestree.Parse(string(source), opts)
	if err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	var out []byte
	if parsePretty {
		out, err = json.MarshalIndent(result.AST, "", "  ")
	} else {
		out, err = json.Marshal(result.AST)
	}
	if err != nil {
		return fmt.Errorf("encoding AST: %w", err)
	}

	fmt.Println(string(out))
	return nil
}
