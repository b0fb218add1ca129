package utils

import (
	"fmt"
	"strings"
)

// FormatSwiftSource normalizes generated Swift source text: line endings become
// "\n", trailing whitespace is trimmed, runs of blank lines collapse to one,
// and the result ends with exactly one newline.
func FormatSwiftSource(source string) string {
	source = strings.ReplaceAll(source, "\r\n", "\n")

	lines := strings.Split(source, "\n")
	var out []string
	blankRun := 0

	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		out = append(out, line)
	}

	// Drop leading and trailing blank lines
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n") + "\n"
}

// ValidateSwiftSource checks that the delimiters in generated Swift text are
// balanced, skipping string literals and comments. It catches malformed
// template output before it reaches disk.
func ValidateSwiftSource(source string) error {
	var stack []rune
	runes := []rune(source)

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch c {
		case '"':
			// Skip string literal, honoring escapes
			for i++; i < len(runes); i++ {
				if runes[i] == '\\' {
					i++
					continue
				}
				if runes[i] == '"' {
					break
				}
			}
		case '/':
			if i+1 < len(runes) {
				if runes[i+1] == '/' {
					for i < len(runes) && runes[i] != '\n' {
						i++
					}
				} else if runes[i+1] == '*' {
					depth := 1
					for i += 2; i < len(runes) && depth > 0; i++ {
						if i+1 < len(runes) && runes[i] == '/' && runes[i+1] == '*' {
							depth++
							i++
						} else if i+1 < len(runes) && runes[i] == '*' && runes[i+1] == '/' {
							depth--
							i++
							if depth == 0 {
								// Leave i on the closing '/' so the outer
								// loop advances to the next rune.
								break
							}
						}
					}
				}
			}
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 {
				return fmt.Errorf("unbalanced '%c' in generated source", c)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if (c == ')' && open != '(') || (c == ']' && open != '[') || (c == '}' && open != '{') {
				return fmt.Errorf("mismatched '%c' in generated source", c)
			}
		}
	}

	if len(stack) > 0 {
		return fmt.Errorf("unclosed '%c' in generated source", stack[len(stack)-1])
	}

	return nil
}
