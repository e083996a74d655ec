package mdcode

import "strings"

// DefaultExt is used for languages without a known extension.
const DefaultExt = "txt"

var extensions = map[string]string{
	"javascript": "js",
	"js":         "js",
	"typescript": "ts",
	"ts":         "ts",
	"python":     "py",
	"py":         "py",
	"java":       "java",
	"cpp":        "cpp",
	"c++":        "cpp",
	"c":          "c",
	"rust":       "rs",
	"rs":         "rs",
	"go":         "go",
	"golang":     "go",
	"html":       "html",
	"css":        "css",
	"scss":       "scss",
	"sass":       "sass",
	"json":       "json",
	"yaml":       "yml",
	"yml":        "yml",
	"xml":        "xml",
	"sql":        "sql",
	"bash":       "sh",
	"shell":      "sh",
	"sh":         "sh",
	"zsh":        "sh",
	"fish":       "fish",
	"php":        "php",
	"ruby":       "rb",
	"rb":         "rb",
	"swift":      "swift",
	"kotlin":     "kt",
	"scala":      "scala",
	"clojure":    "clj",
	"haskell":    "hs",
	"lua":        "lua",
	"perl":       "pl",
	"r":          "r",
	"matlab":     "m",
	"vue":        "vue",
	"svelte":     "svelte",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"markdown":   "md",
	"md":         "md",
}

// Extension maps a language tag to a file extension without the leading dot.
// The lookup ignores case; unknown tags map to [DefaultExt].
func Extension(lang string) string {
	if ext, ok := extensions[strings.ToLower(lang)]; ok {
		return ext
	}

	return DefaultExt
}

// InfoExtension resolves the extension for a fence info string. The language
// tag wins; a "file" meta entry is consulted when the tag is unknown.
func InfoExtension(info string) string {
	lang, meta, err := ParseInfo(info)
	if err != nil {
		return Extension(lang)
	}

	ext := Extension(lang)
	if ext == DefaultExt {
		if fileExt := meta.FileExt(); len(fileExt) != 0 {
			return fileExt
		}
	}

	return ext
}
