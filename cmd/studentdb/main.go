// Command studentdb edits the students table from the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"chai/internal/database"
	"chai/internal/maintenance"
	"chai/internal/repositories"
	"chai/internal/services"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "studentdb",
		Short: "Interactive editor for the students table",
		Long: `studentdb opens a menu to view, add, edit and delete students.

Run without arguments to start the editor, or "studentdb seed" to replace
every student with the sample data set.`,
		SilenceUsage: true,
	}
	loadConfig := maintenance.BindDatabaseFlags(root)

	withStudents := func(run func(*services.StudentService) error) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, log, err := maintenance.OpenStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)
		return run(services.NewStudentService(repositories.NewGORMStudentRepository(db), nil, log))
	}

	root.RunE = func(cmd *cobra.Command, args []string) error {
		return withStudents(func(students *services.StudentService) error {
			return maintenance.NewEditor(students, in, out).Run()
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Replace all students with the sample data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStudents(func(students *services.StudentService) error {
				return maintenance.Seed(students, out)
			})
		},
	})

	root.SetIn(in)
	root.SetOut(out)
	return root
}
