package maintenance

import (
	"fmt"
	"io"

	"chai/internal/models"
)

// Seeder replaces every student; services.StudentService implements it.
type Seeder interface {
	ReplaceAll(students []models.Student) (int64, error)
}

// SampleStudents are the five students written by the seed command.
func SampleStudents() []models.Student {
	return []models.Student{
		{Name: "Alice Johnson", Age: 20, Email: "alice.johnson@example.com"},
		{Name: "Bob Smith", Age: 22, Email: "bob.smith@example.com"},
		{Name: "Carol Davis", Age: 19, Email: "carol.davis@example.com"},
		{Name: "David Wilson", Age: 21, Email: "david.wilson@example.com"},
		{Name: "Eva Brown", Age: 23, Email: "eva.brown@example.com"},
	}
}

// Seed clears the students table and inserts SampleStudents.
func Seed(store Seeder, out io.Writer) error {
	st := newStyles(out)
	students := SampleStudents()
	cleared, err := store.ReplaceAll(students)
	if err != nil {
		return fmt.Errorf("failed to seed students: %w", err)
	}
	fmt.Fprintf(out, "Cleared existing students (%d removed).\n", cleared)
	for _, s := range students {
		fmt.Fprintf(out, "Created student: %s\n", s)
	}
	fmt.Fprintln(out, st.Success.Render(fmt.Sprintf("Successfully created %d students!", len(students))))
	return nil
}
