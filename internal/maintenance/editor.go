package maintenance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chai/internal/models"
	"chai/internal/repositories"
)

// StudentStore is the part of services.StudentService the editor needs.
type StudentStore interface {
	GetAllStudents() ([]models.Student, error)
	GetStudentByID(id uint) (*models.Student, error)
	CreateStudent(student *models.Student) error
	UpdateStudent(student *models.Student) error
	DeleteStudent(id uint) error
}

// errQuit ends the menu loop when input runs out.
var errQuit = errors.New("input closed")

// Editor is the interactive student menu: view, add, edit, delete, exit.
type Editor struct {
	store  StudentStore
	in     *bufio.Scanner
	out    io.Writer
	styles styles
}

func NewEditor(store StudentStore, in io.Reader, out io.Writer) *Editor {
	return &Editor{
		store:  store,
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(out),
	}
}

// Run shows the menu until the user exits or input ends. Failed writes are
// reported inline; only input errors and listing failures are returned.
func (e *Editor) Run() error {
	for {
		e.println("")
		e.println(e.styles.banner("STUDENT DATABASE EDITOR", 50))
		e.println("1. View all students")
		e.println("2. Add new student")
		e.println("3. Edit student")
		e.println("4. Delete student")
		e.println("5. Exit")
		e.println(strings.Repeat("=", 50))

		choice, err := e.prompt("Enter your choice (1-5): ")
		if err != nil && !errors.Is(err, errQuit) {
			return err
		}
		if err != nil {
			choice = "5"
		}

		switch choice {
		case "1":
			_, err = e.showStudents()
		case "2":
			err = e.addStudent()
		case "3":
			err = e.editStudent()
		case "4":
			err = e.deleteStudent()
		case "5":
			e.println(e.styles.Muted.Render("Goodbye!"))
			return nil
		default:
			e.failure("Invalid choice! Please enter 1-5.")
		}

		if errors.Is(err, errQuit) {
			e.println(e.styles.Muted.Render("Goodbye!"))
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (e *Editor) showStudents() ([]models.Student, error) {
	students, err := e.store.GetAllStudents()
	if err != nil {
		return nil, err
	}

	e.println("")
	e.println(e.styles.banner("CURRENT STUDENTS IN DATABASE", 60))
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{strconv.FormatUint(uint64(s.ID), 10), s.Name, strconv.Itoa(s.Age), s.Email})
	}
	e.println(e.styles.table([]string{"ID", "Name", "Age", "Email"}, rows))
	return students, nil
}

func (e *Editor) addStudent() error {
	e.println("")
	e.println(e.styles.banner("ADD NEW STUDENT", 40))

	name, err := e.prompt("Enter student name: ")
	if err != nil {
		return err
	}
	ageText, err := e.prompt("Enter student age: ")
	if err != nil {
		return err
	}
	age, convErr := strconv.Atoi(ageText)
	if convErr != nil {
		e.failure("Please enter a valid age!")
		return nil
	}
	email, err := e.prompt("Enter student email: ")
	if err != nil {
		return err
	}

	student := &models.Student{Name: name, Age: age, Email: email}
	return e.report(e.store.CreateStudent(student), "Successfully added student: "+name)
}

func (e *Editor) editStudent() error {
	student, err := e.pickStudent("edit")
	if student == nil || err != nil {
		return err
	}

	e.printf("\nCurrent data for %s:\n", student.Name)
	e.printf("Name: %s\nAge: %d\nEmail: %s\n", student.Name, student.Age, student.Email)
	e.println("\nEnter new values (press Enter to keep current value):")

	name, err := e.prompt(fmt.Sprintf("Name [%s]: ", student.Name))
	if err != nil {
		return err
	}
	ageText, err := e.prompt(fmt.Sprintf("Age [%d]: ", student.Age))
	if err != nil {
		return err
	}
	email, err := e.prompt(fmt.Sprintf("Email [%s]: ", student.Email))
	if err != nil {
		return err
	}

	updated := *student
	if name != "" {
		updated.Name = name
	}
	if ageText != "" {
		age, convErr := strconv.Atoi(ageText)
		if convErr != nil {
			e.failure("Please enter a valid age!")
			return nil
		}
		updated.Age = age
	}
	if email != "" {
		updated.Email = email
	}
	return e.report(e.store.UpdateStudent(&updated), "Successfully updated student: "+updated.Name)
}

func (e *Editor) deleteStudent() error {
	student, err := e.pickStudent("delete")
	if student == nil || err != nil {
		return err
	}

	confirm, err := e.prompt(fmt.Sprintf("Are you sure you want to delete %s? (yes/no): ", student.Name))
	if err != nil {
		return err
	}
	switch strings.ToLower(confirm) {
	case "yes", "y":
		return e.report(e.store.DeleteStudent(student.ID), "Successfully deleted student: "+student.Name)
	default:
		e.failure("Deletion cancelled.")
		return nil
	}
}

// pickStudent lists the students and asks for an id. It returns a nil
// student, after telling the user why, when nothing can be picked.
func (e *Editor) pickStudent(action string) (*models.Student, error) {
	students, err := e.showStudents()
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		e.printf("No students found to %s.\n", action)
		return nil, nil
	}

	e.println("")
	e.println(e.styles.banner(strings.ToUpper(action)+" STUDENT", 40))
	idText, err := e.prompt(fmt.Sprintf("Enter student ID to %s: ", action))
	if err != nil {
		return nil, err
	}
	id, convErr := strconv.ParseUint(idText, 10, strconv.IntSize)
	if convErr != nil {
		e.failure("Please enter a valid student ID number!")
		return nil, nil
	}
	student, err := e.store.GetStudentByID(uint(id))
	if errors.Is(err, repositories.ErrNotFound) {
		e.failure("Student not found!")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

// report prints the outcome of a store call. Missing and duplicate records
// are user errors and do not stop the menu.
func (e *Editor) report(err error, success string) error {
	switch {
	case err == nil:
		e.println(e.styles.Success.Render(success))
		return nil
	case errors.Is(err, repositories.ErrConstraintViolation):
		e.failure("Error: Email already exists!")
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		e.failure("Student not found!")
		return nil
	default:
		e.failure("Error: " + err.Error())
		return nil
	}
}

func (e *Editor) prompt(label string) (string, error) {
	fmt.Fprint(e.out, label)
	if !e.in.Scan() {
		if err := e.in.Err(); err != nil {
			return "", err
		}
		e.println("")
		return "", errQuit
	}
	return strings.TrimSpace(e.in.Text()), nil
}

func (e *Editor) failure(msg string) {
	e.println(e.styles.Error.Render(msg))
}

func (e *Editor) println(s string) {
	fmt.Fprintln(e.out, s)
}

func (e *Editor) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.out, format, args...)
}
