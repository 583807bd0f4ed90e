package maintenance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// rowKeywords start statements that return rows.
var rowKeywords = map[string]bool{
	"SELECT":  true,
	"WITH":    true,
	"PRAGMA":  true,
	"EXPLAIN": true,
	"VALUES":  true,
	"SHOW":    true,
}

var exampleQueries = []string{
	"SELECT * FROM students;",
	"SELECT name, age FROM students WHERE age > 20;",
	"SELECT COUNT(*) FROM students;",
	"SELECT * FROM students ORDER BY age DESC;",
}

// Result is the outcome of one statement. Rows is set for row-returning
// statements, RowsAffected for everything else.
type Result struct {
	Columns      []string
	Rows         [][]interface{}
	RowsAffected int64
	HasRows      bool
}

// Shell runs raw SQL against the application database.
type Shell struct {
	db     *gorm.DB
	out    io.Writer
	styles styles
}

func NewShell(db *gorm.DB, out io.Writer) *Shell {
	return &Shell{db: db, out: out, styles: newStyles(out)}
}

// Exec runs a single statement. Statements that do not return rows are
// committed immediately.
func (s *Shell) Exec(query string) (*Result, error) {
	if !returnsRows(query) {
		tx := s.db.Exec(query)
		if tx.Error != nil {
			return nil, tx.Error
		}
		return &Result{RowsAffected: tx.RowsAffected}, nil
	}

	rows, err := s.db.Raw(query).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	result := &Result{Columns: cols, HasRows: true}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		valuePtrs := make([]interface{}, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	return result, rows.Err()
}

// RunOnce executes query and prints the rows, the affected count or the error.
func (s *Shell) RunOnce(query string) {
	result, err := s.Exec(query)
	if err != nil {
		fmt.Fprintln(s.out, s.styles.Error.Render("SQL Error: "+err.Error()))
		return
	}
	s.print(result)
}

// Repl reads one statement per line from in until "exit" or end of input.
func (s *Shell) Repl(in io.Reader) error {
	fmt.Fprintln(s.out, s.styles.banner("INTERACTIVE SQL SHELL", 60))
	fmt.Fprintln(s.out, "Enter SQL queries (type 'exit' to quit, 'help' for examples)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "\nSQL> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		query := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(query) {
		case "":
			continue
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprintln(s.out, "\nExample queries:")
			for _, q := range exampleQueries {
				fmt.Fprintln(s.out, "  "+q)
			}
			continue
		}
		s.RunOnce(query)
	}
}

func (s *Shell) print(result *Result) {
	if !result.HasRows {
		fmt.Fprintln(s.out, s.styles.Success.Render(fmt.Sprintf("Query executed successfully. Rows affected: %d", result.RowsAffected)))
		return
	}
	fmt.Fprintf(s.out, "Results (%d rows):\n", len(result.Rows))
	for _, row := range result.Rows {
		fmt.Fprintf(s.out, "  %s\n", FormatRow(row))
	}
}

func returnsRows(query string) bool {
	fields := strings.Fields(strings.TrimLeft(query, " \t\r\n("))
	if len(fields) == 0 {
		return false
	}
	return rowKeywords[strings.ToUpper(fields[0])]
}

// FormatRow renders a row as a tuple: strings quoted, NULL as None, and a
// trailing comma for single values.
func FormatRow(row []interface{}) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = formatValue(v)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case string:
		return "'" + strings.ReplaceAll(val, "'", `\'`) + "'"
	case []byte:
		return formatValue(string(val))
	case bool:
		if val {
			return "True"
		}
		return "False"
	case float64:
		return formatFloat(val)
	case float32:
		return formatFloat(float64(val))
	case time.Time:
		return "'" + val.Format("2006-01-02 15:04:05") + "'"
	default:
		return fmt.Sprint(val)
	}
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprint(f)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
