// Command sqlshell runs raw SQL against the application database.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"chai/internal/database"
	"chai/internal/maintenance"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var report bool

	root := &cobra.Command{
		Use:   `sqlshell ["SQL_QUERY"]`,
		Short: "Execute SQL against the application database",
		Long: `sqlshell executes a single statement given as an argument, or starts an
interactive SQL> prompt when no statement is given. Statements that do not
return rows are committed immediately.`,
		Example: `  sqlshell "SELECT * FROM students;"
  sqlshell "SELECT name, age FROM students WHERE age > 20;"
  sqlshell "SELECT COUNT(*) FROM students;"
  sqlshell --report`,
		SilenceUsage: true,
	}
	loadConfig := maintenance.BindDatabaseFlags(root)
	root.Flags().BoolVar(&report, "report", false, "run the canned student reports")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, _, err := maintenance.OpenStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		shell := maintenance.NewShell(db, out)
		switch {
		case report:
			shell.RunReports()
			return nil
		case len(args) > 0:
			shell.RunOnce(strings.Join(args, " "))
			return nil
		default:
			return shell.Repl(in)
		}
	}

	root.SetIn(in)
	root.SetOut(out)
	return root
}
