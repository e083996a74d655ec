package mdcode_test

import (
	"testing"

	"github.com/ezerfernandes/fencedit/internal/mdcode"
	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"python":     "py",
		"Python":     "py",
		"PY":         "py",
		"golang":     "go",
		"c++":        "cpp",
		"yaml":       "yml",
		"zsh":        "sh",
		"Markdown":   "md",
		"":           "txt",
		"brainfuck":  "txt",
		"JavaScript": "js",
	}

	for lang, want := range tests {
		assert.Equal(t, want, mdcode.Extension(lang), lang)
	}
}

func TestInfoExtension(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "py", mdcode.InfoExtension("python"))
	assert.Equal(t, "py", mdcode.InfoExtension("py file=other.rb"))
	assert.Equal(t, "toml", mdcode.InfoExtension("config file=conf/app.toml"))
	assert.Equal(t, "toml", mdcode.InfoExtension(`text {"file": "app.toml"}`))
	assert.Equal(t, "txt", mdcode.InfoExtension("text"))
	assert.Equal(t, "txt", mdcode.InfoExtension(""))
}
