package doctest

import "strings"

const (
	prompt        = ">> "
	skipDirective = "# skip"
)

// example is one extracted documentation example: an expression introduced
// by a prompt line, plus the expected output lines that follow it.
type example struct {
	Source   string
	Expected string
	Line     int
	Skip     bool
}

// parseExamples extracts example sessions from a documentation file. A
// session starts with a line whose trimmed text begins with ">> "; the
// lines after it, up to the next blank line or prompt, are the expected
// output. An example with no expected output only has to evaluate cleanly.
// A trailing "# skip" directive on the prompt line marks the example as
// skipped.
func parseExamples(data []byte) []example {
	var examples []example
	lines := strings.Split(string(data), "\n")
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, prompt) {
			i++
			continue
		}
		ex := example{Line: i + 1}
		src := strings.TrimSpace(strings.TrimPrefix(trimmed, prompt))
		if strings.HasSuffix(src, skipDirective) {
			ex.Skip = true
			src = strings.TrimSpace(strings.TrimSuffix(src, skipDirective))
		}
		i++
		if src == "" {
			continue
		}
		ex.Source = src

		var expected []string
		for i < len(lines) {
			t := strings.TrimSpace(lines[i])
			if t == "" || strings.HasPrefix(t, prompt) {
				break
			}
			expected = append(expected, t)
			i++
		}
		ex.Expected = strings.Join(expected, "\n")
		examples = append(examples, ex)
	}
	return examples
}
