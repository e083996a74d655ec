package mdcode

import (
	"encoding/json"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// MetaFile is the info string key naming the file a block belongs to.
const MetaFile = "file"

// Meta holds key-value metadata parsed from a fenced code block's info string.
type Meta map[string]interface{}

// Get returns the metadata value for the given key as a string.
// It returns an empty string if the key is missing or the Meta is nil.
func (m Meta) Get(name string) string {
	if m == nil {
		return ""
	}

	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// FileExt returns the extension of the file named by the "file" key,
// without the leading dot.
func (m Meta) FileExt() string {
	return strings.TrimPrefix(path.Ext(m.Get(MetaFile)), ".")
}

var (
	reJSON     = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets = regexp.MustCompile(`^\s*{(.*)}$`)
)

// ParseInfo splits a fence info string into the language tag and metadata.
// Both `py file=a.py` and `py {"file": "a.py"}` are accepted.
func ParseInfo(info string) (string, Meta, error) {
	return parseInfo([]byte(info))
}

func parseMeta(input []byte) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.Match(input) {
		var meta Meta

		if err := json.Unmarshal(input, &meta); err != nil {
			return nil, err
		}

		return meta, nil
	}

	if subs := reBrackets.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, err
	}

	dict := make(Meta)

	for _, word := range words {
		if key, value, ok := strings.Cut(word, "="); ok && len(key) != 0 {
			dict[key] = value
		}
	}

	return dict, nil
}
