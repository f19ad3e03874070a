// Command lfr is a smoke-test front end over the lfr parser: it reads
// a source file, parses it, and prints the resulting syntax tree and
// any diagnostics. It is not the language's production tool chain —
// only a thin driver that exercises the parser/syntax packages
// end-to-end.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dblanovschi/lfr/parser"
	"github.com/dblanovschi/lfr/syntax"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "suppress the tree dump, print only diagnostics")
		return nil
	}

	cmdRoot := &cobra.Command{
		Use:   "lfr",
		Short: "lfr front-end driver",
		Long:  `lfr parses source files into a lossless syntax tree and reports diagnostics.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logFlags := log.LstdFlags
			if withTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp"); !withTimestamp {
				logFlags = 0
			}
			log.SetFlags(logFlags)
			return nil
		},
	}
	cmdRoot.AddCommand(cmdParse())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

func cmdParse() *cobra.Command {
	return &cobra.Command{
		Use:          "parse <file>",
		Short:        "parse a source file and print its syntax tree and diagnostics",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quiet, _ := cmd.Flags().GetBool("quiet")
			debug, _ := cmd.Flags().GetBool("debug")

			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			tree, errs := parser.Parse(string(src))
			if debug {
				log.Printf("parsed %d bytes, %d diagnostics", len(src), len(errs))
			}

			if !quiet {
				fmt.Print(syntax.Dump(tree))
			}

			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e.Error())
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d error(s)", len(errs))
			}
			return nil
		},
	}
}
