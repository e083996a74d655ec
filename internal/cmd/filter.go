package cmd

import (
	"github.com/ezerfernandes/fencedit/internal/mdcode"
	"github.com/gobwas/glob"
)

type filterFunc func(lang string, meta mdcode.Meta) bool

// filter builds a block filter from language globs and metadata globs.
// A block passes when its language matches any of the language globs and
// every metadata glob matches the corresponding value.
func filter(lang []string, meta map[string]string) (filterFunc, error) {
	langs := make([]glob.Glob, 0, len(lang))

	for _, pattern := range lang {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		langs = append(langs, g)
	}

	metas := make(map[string]glob.Glob, len(meta))

	for key, pattern := range meta {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		metas[key] = g
	}

	return func(blockLang string, blockMeta mdcode.Meta) bool {
		if len(langs) != 0 && !matchAny(langs, blockLang) {
			return false
		}

		for key, g := range metas {
			if !g.Match(blockMeta.Get(key)) {
				return false
			}
		}

		return true
	}, nil
}

func matchAny(globs []glob.Glob, value string) bool {
	for _, g := range globs {
		if g.Match(value) {
			return true
		}
	}

	return false
}
