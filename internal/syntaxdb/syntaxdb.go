// Package syntaxdb implements the incremental syntax highlighter: a
// small per-language descriptor table plus a single-row scanner that
// classifies every rendered byte and propagates multi-line-comment
// state to the row that follows it. See spec §4.5.
//
// Grounded on the teacher's (hnnsb-go-ditor) editorUpdateSyntax /
// UpdateSyntax, which already implements the single-line/multi-line
// comment, string and keyword passes this package generalizes; the
// number-continuation-character rule and the leading-'#' preprocessor
// keyword class are the spec's own addition over what the teacher
// implements (the teacher only handles a bare digit/'.' number rule and
// a two-way keyword split), built in the same scanning style.
package syntaxdb

import "bytes"

// Highlight classes, per spec glossary. Byte-sized because row caches
// store one classification per rendered byte.
const (
	Normal byte = iota
	Match
	SLComment
	MLComment
	Keyword1
	Keyword2
	Keyword3
	String
	Number
)

// Lang describes one language's highlighting rules.
type Lang struct {
	Name      string
	Match     []string // ".ext" or a bare filename substring
	Keywords  []string // trailing '|' = type keyword, leading '#' = preprocessor
	SLComment string
	MLCommentStart,
	MLCommentEnd string
	Numbers bool
	Strings bool
}

// Registry is the built-in language database, selected by file name.
var Registry = []*Lang{
	{
		Name:      "c",
		Match:     []string{".c", ".h", ".cpp", ".cc", ".hpp"},
		Keywords:  []string{"switch", "if", "while", "for", "break", "continue", "return", "else", "struct", "union", "typedef", "static", "enum", "class", "case", "sizeof", "goto", "int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|", "const|", "#include", "#define", "#ifdef", "#ifndef", "#endif", "#pragma"},
		SLComment: "//",
		MLCommentStart: "/*", MLCommentEnd: "*/",
		Numbers: true, Strings: true,
	},
	{
		Name:      "go",
		Match:     []string{".go", ".mod", ".sum"},
		Keywords:  []string{"break", "case", "chan", "const", "continue", "default", "defer", "else", "fallthrough", "for", "go", "goto", "if", "import", "map", "package", "range", "return", "select", "struct", "switch", "type", "var", "interface|", "func|", "string|", "int|", "int64|", "int32|", "byte|", "rune|", "bool|", "error|", "float64|"},
		SLComment: "//",
		MLCommentStart: "/*", MLCommentEnd: "*/",
		Numbers: true, Strings: true,
	},
	{
		Name:      "python",
		Match:     []string{".py"},
		Keywords:  []string{"def", "class", "if", "elif", "else", "for", "while", "break", "continue", "return", "import", "from", "as", "with", "try", "except", "finally", "raise", "pass", "lambda", "yield", "global", "nonlocal", "assert", "del", "in", "is", "not", "and", "or", "None|", "True|", "False|", "int|", "str|", "float|", "bool|", "#"},
		SLComment: "#",
		Numbers:   true, Strings: true,
	},
	{
		Name:      "rust",
		Match:     []string{".rs"},
		Keywords:  []string{"fn", "let", "mut", "match", "if", "else", "for", "while", "loop", "break", "continue", "return", "struct", "enum", "impl", "trait", "use", "mod", "pub", "const", "static", "unsafe", "where", "as", "i32|", "i64|", "u32|", "u64|", "usize|", "isize|", "f32|", "f64|", "bool|", "str|", "String|", "Option|", "Result|"},
		SLComment: "//",
		MLCommentStart: "/*", MLCommentEnd: "*/",
		Numbers: true, Strings: true,
	},
	{
		Name:      "javascript",
		Match:     []string{".js", ".mjs", ".ts"},
		Keywords:  []string{"function", "var", "let", "const", "if", "else", "for", "while", "break", "continue", "return", "switch", "case", "default", "class", "extends", "new", "typeof", "instanceof", "try", "catch", "finally", "throw", "async", "await", "import", "export", "from", "null|", "undefined|", "true|", "false|", "number|", "string|", "boolean|"},
		SLComment: "//",
		MLCommentStart: "/*", MLCommentEnd: "*/",
		Numbers: true, Strings: true,
	},
}

// Select returns the first language whose Match entries match filename,
// the way spec §4.5 describes: extension patterns match the suffix,
// non-extension patterns match anywhere in the name. Returns nil if
// filename is empty or nothing matches.
func Select(filename string) *Lang {
	if filename == "" {
		return nil
	}
	var ext string
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			ext = filename[i:]
			break
		}
		if filename[i] == '/' {
			break
		}
	}
	for _, lang := range Registry {
		for _, pattern := range lang.Match {
			isExt := len(pattern) > 0 && pattern[0] == '.'
			if isExt && ext != "" && ext == pattern {
				return lang
			}
			if !isExt && contains(filename, pattern) {
				return lang
			}
		}
	}
	return nil
}

func contains(s, sub string) bool {
	return bytes.Contains([]byte(s), []byte(sub))
}

// isSeparator reports whether c can delimit a keyword token: whitespace,
// NUL, or a member of the punctuation set spec §4.5/glossary names.
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return bytes.IndexByte([]byte(",.()+-/*=~%<>[]:;"), c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isNumberContinuation(c byte) bool {
	switch {
	case c == '.' || c == 'x' || c == 'X' || c == 'h' || c == 'H':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// HighlightRow classifies every byte of render, the way spec §4.5
// prescribes, given the language (nil disables all highlighting beyond
// a blank Normal row) and whether the previous row ended inside an open
// multi-line comment. It returns the per-byte classification and
// whether this row itself ends with an unterminated multi-line comment
// — the caller is responsible for propagating that to the next row
// (spec's tail-recursion-as-loop requirement; see Editor.resync in
// editor/editor.go).
func HighlightRow(render []byte, lang *Lang, prevOpenComment bool) ([]byte, bool) {
	hl := make([]byte, len(render))
	if lang == nil {
		return hl, false
	}

	scs := []byte(lang.SLComment)
	mcs := []byte(lang.MLCommentStart)
	mce := []byte(lang.MLCommentEnd)

	prevSep := true
	var inString byte
	inComment := prevOpenComment

	for i := 0; i < len(render); {
		c := render[i]
		prevHl := byte(Normal)
		if i > 0 {
			prevHl = hl[i-1]
		}

		if inString == 0 && !inComment && len(scs) > 0 && bytes.HasPrefix(render[i:], scs) {
			for j := i; j < len(render); j++ {
				hl[j] = SLComment
			}
			break
		}

		if inString == 0 && len(mcs) > 0 && len(mce) > 0 {
			if inComment {
				hl[i] = MLComment
				if bytes.HasPrefix(render[i:], mce) {
					for j := 0; j < len(mce) && i+j < len(render); j++ {
						hl[i+j] = MLComment
					}
					inComment = false
					i += len(mce)
					prevSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], mcs) {
				inComment = true
				for j := 0; j < len(mcs) && i+j < len(render); j++ {
					hl[i+j] = MLComment
				}
				i += len(mcs)
				continue
			}
		}

		if lang.Strings {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = String
					i += 2
					prevSep = true
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if lang.Numbers {
			if (isDigit(c) && (prevSep || prevHl == Number)) || (isNumberContinuation(c) && prevHl == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, class, ok := matchKeyword(lang.Keywords, render[i:]); ok {
				for k := 0; k < len(kw); k++ {
					hl[i+k] = class
				}
				i += len(kw)
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}

	return hl, inComment
}

// matchKeyword finds the first registered keyword matching the start of
// rest, honouring its trailing-separator condition, and reports its
// plain text (without the '|'/'#' markers) and highlight class.
func matchKeyword(keywords []string, rest []byte) (string, byte, bool) {
	for _, kw := range keywords {
		class := Keyword1
		text := kw
		switch {
		case len(text) > 0 && text[len(text)-1] == '|':
			class = Keyword2
			text = text[:len(text)-1]
		case len(text) > 0 && text[0] == '#':
			class = Keyword3
		}
		if len(text) == 0 || len(text) > len(rest) {
			continue
		}
		if !bytes.Equal(rest[:len(text)], []byte(text)) {
			continue
		}
		if len(text) < len(rest) && !isSeparator(rest[len(text)]) {
			continue
		}
		return text, class, true
	}
	return "", 0, false
}
