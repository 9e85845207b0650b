package terraform

import (
	"regexp"
	"strings"
)

// Block is one top-level configuration block captured by the lexical scanner,
// e.g. resource "aws_s3_bucket" "this" { ... }. Body is the raw text between
// the braces; expressions are never evaluated.
type Block struct {
	Kind   string
	Labels []string
	Body   string
}

var (
	headerRe  = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_-]*)((?:\s+"[^"]*")*)\s*\{`)
	attrRe    = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_-]*)\s*=(.*)$`)
	labelRe   = regexp.MustCompile(`"([^"]*)"`)
	heredocRe = regexp.MustCompile(`^<<-?([A-Za-z_][A-Za-z0-9_]*)`)
)

// ScanBlocks extracts the top-level blocks of a configuration file. The
// scanner is brace-depth aware and skips braces inside quoted strings and
// line comments; it does not build a syntax tree.
func ScanBlocks(src string) []Block {
	var blocks []Block
	for i := 0; i < len(src); {
		lineEnd := indexNewline(src, i)
		line := src[i:lineEnd]
		if m := headerRe.FindStringSubmatch(line); m != nil {
			bracePos := i + strings.IndexByte(line, '{')
			closePos := matchBrace(src, bracePos)
			if closePos < 0 {
				break
			}
			blocks = append(blocks, Block{
				Kind:   m[1],
				Labels: parseLabels(m[2]),
				Body:   src[bracePos+1 : closePos],
			})
			i = closePos + 1
			continue
		}
		i = lineEnd + 1
	}
	return blocks
}

// ParseBody splits a block body into its immediate attributes and its nested
// blocks. Attribute values are recorded as raw text; multi-line values are
// captured up to bracket balance, heredocs up to their terminator.
func ParseBody(body string) (attrs map[string]string, nested map[string][]string) {
	attrs = map[string]string{}
	nested = map[string][]string{}

	for i := 0; i < len(body); {
		lineEnd := indexNewline(body, i)
		line := body[i:lineEnd]

		if m := headerRe.FindStringSubmatch(line); m != nil {
			bracePos := i + strings.IndexByte(line, '{')
			closePos := matchBrace(body, bracePos)
			if closePos < 0 {
				break
			}
			nested[m[1]] = append(nested[m[1]], body[bracePos+1:closePos])
			i = closePos + 1
			continue
		}

		if m := attrRe.FindStringSubmatch(line); m != nil {
			name := m[1]
			val := stripLineComment(m[2])

			if hd := heredocRe.FindStringSubmatch(strings.TrimSpace(val)); hd != nil {
				val, i = consumeHeredoc(body, lineEnd, strings.TrimSpace(val), hd[1])
			} else {
				val, i = consumeBalanced(body, lineEnd, val)
			}
			if _, dup := attrs[name]; !dup {
				attrs[name] = val
			}
			continue
		}

		i = lineEnd + 1
	}
	return attrs, nested
}

// consumeBalanced extends an attribute value across lines until its brackets
// balance out, returning the value and the offset after its final line.
func consumeBalanced(body string, lineEnd int, firstLine string) (string, int) {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(firstLine))
	bal := bracketBalance(firstLine)
	i := lineEnd + 1
	for bal > 0 && i < len(body) {
		le := indexNewline(body, i)
		l := stripLineComment(body[i:le])
		bal += bracketBalance(l)
		sb.WriteString("\n")
		sb.WriteString(l)
		i = le + 1
	}
	return sb.String(), i
}

// consumeHeredoc captures a heredoc value through its terminator line.
func consumeHeredoc(body string, lineEnd int, firstLine, terminator string) (string, int) {
	var sb strings.Builder
	sb.WriteString(firstLine)
	i := lineEnd + 1
	for i < len(body) {
		le := indexNewline(body, i)
		l := body[i:le]
		sb.WriteString("\n")
		sb.WriteString(l)
		i = le + 1
		if strings.TrimSpace(l) == terminator {
			break
		}
	}
	return sb.String(), i
}

// matchBrace returns the offset of the brace closing the one at open, or -1
// when the text ends unbalanced.
func matchBrace(src string, open int) int {
	depth := 0
	inStr := false
	escaped := false
	for i := open; i < len(src); i++ {
		c := src[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inStr:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inStr = false
			}
		case c == '"':
			inStr = true
		case c == '#':
			i = indexNewline(src, i)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			i = indexNewline(src, i)
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// bracketBalance counts opening minus closing brackets outside quoted strings.
func bracketBalance(s string) int {
	bal := 0
	inStr := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inStr:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inStr = false
			}
		case c == '"':
			inStr = true
		case c == '(' || c == '[' || c == '{':
			bal++
		case c == ')' || c == ']' || c == '}':
			bal--
		}
	}
	return bal
}

// stripLineComment removes a trailing # or // comment outside quoted strings.
func stripLineComment(s string) string {
	inStr := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inStr:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inStr = false
			}
		case c == '"':
			inStr = true
		case c == '#':
			return strings.TrimSpace(s[:i])
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			return strings.TrimSpace(s[:i])
		}
	}
	return strings.TrimSpace(s)
}

func parseLabels(s string) []string {
	matches := labelRe.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	labels := make([]string, 0, len(matches))
	for _, m := range matches {
		labels = append(labels, m[1])
	}
	return labels
}

func indexNewline(src string, from int) int {
	if j := strings.IndexByte(src[from:], '\n'); j >= 0 {
		return from + j
	}
	return len(src)
}
