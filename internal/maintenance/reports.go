package maintenance

import (
	"fmt"
)

// Report is a canned query shown by the --report mode.
type Report struct {
	Title string
	Query string
}

// Reports run against the students table. They stick to SQL understood by
// both SQLite and PostgreSQL.
var Reports = []Report{
	{
		Title: "Total number of students",
		Query: "SELECT COUNT(*) AS total FROM students",
	},
	{
		Title: "Average age",
		Query: "SELECT ROUND(AVG(age), 2) AS average_age FROM students",
	},
	{
		Title: "Students older than 20",
		Query: "SELECT name, age FROM students WHERE age > 20 ORDER BY id",
	},
	{
		Title: "Students ordered by age (youngest first)",
		Query: "SELECT name, age FROM students ORDER BY age, id",
	},
	{
		Title: "Students by age group",
		Query: `SELECT
			CASE
				WHEN age < 20 THEN 'Under 20'
				WHEN age BETWEEN 20 AND 22 THEN '20-22'
				ELSE 'Over 22'
			END AS age_group,
			COUNT(*) AS count
		FROM students
		GROUP BY age_group
		ORDER BY count DESC, age_group`,
	},
	{
		Title: "Students with gmail.com emails",
		Query: "SELECT name, email FROM students WHERE email LIKE '%gmail.com' ORDER BY id",
	},
	{
		Title: "Students with the longest names",
		Query: "SELECT name, LENGTH(name) AS name_length FROM students ORDER BY name_length DESC, id LIMIT 3",
	},
	{
		Title: "Age statistics",
		Query: "SELECT MIN(age) AS min_age, MAX(age) AS max_age, ROUND(AVG(age), 1) AS avg_age, COUNT(*) AS total_students FROM students",
	},
	{
		Title: "Duplicate emails",
		Query: "SELECT email, COUNT(*) AS count FROM students GROUP BY email HAVING COUNT(*) > 1",
	},
}

// RunReports prints every canned report as a table. A failing report is
// shown inline and the rest still run.
func (s *Shell) RunReports() {
	for i, r := range Reports {
		fmt.Fprintf(s.out, "\n%s\n", s.styles.Title.Render(fmt.Sprintf("%d. %s", i+1, r.Title)))
		result, err := s.Exec(r.Query)
		if err != nil {
			fmt.Fprintln(s.out, s.styles.Error.Render("SQL Error: "+err.Error()))
			continue
		}
		if len(result.Rows) == 0 {
			fmt.Fprintln(s.out, s.styles.Muted.Render("  No results found."))
			continue
		}
		rows := make([][]string, len(result.Rows))
		for j, row := range result.Rows {
			cells := make([]string, len(row))
			for k, v := range row {
				cells[k] = displayValue(v)
			}
			rows[j] = cells
		}
		fmt.Fprintln(s.out, s.styles.table(result.Columns, rows))
	}
}

func displayValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return formatFloat(val)
	default:
		return fmt.Sprint(val)
	}
}
