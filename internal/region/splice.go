package region

import "strings"

// Split breaks a document into lines on "\n". Carriage returns stay part of
// their line so that Join(Split(s)) == s for every s.
func Split(text string) []string {
	return strings.Split(text, "\n")
}

// Join is the inverse of [Split].
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}

// Export returns the file form of the region body: the content followed by a
// newline, or nothing at all for a region without body lines.
func Export(r *Region) string {
	if r.Lines() == 0 {
		return ""
	}

	return r.Content + "\n"
}

// Body splits edited content into body lines. A single trailing newline is
// dropped and empty content yields no lines.
func Body(content string) []string {
	if len(content) == 0 {
		return nil
	}

	content = strings.TrimSuffix(content, "\n")

	return strings.Split(content, "\n")
}

// Splice replaces the body lines of r with content and returns the updated
// document lines. Every new body line gets the region prefix back. The fence
// lines and everything outside them are kept as is.
func Splice(lines []string, r *Region, content string) []string {
	body := Body(content)

	res := make([]string, 0, len(lines)-r.Lines()+len(body))

	res = append(res, lines[:r.StartLine+1]...)
	for _, line := range body {
		res = append(res, indent(line, r.Prefix))
	}
	res = append(res, lines[r.EndLine:]...)

	return res
}
