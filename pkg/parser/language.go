package parser

import (
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/cockroachdb/errors"
	"github.com/src-d/enry/v2"
)

// Language is a source dialect the frontend can read.
type Language string

// Supported languages.
const (
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
)

// ErrUnsupportedLanguage reports a file the frontend has no grammar for.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// ArkTS sources are read with the TypeScript grammar; enry does not know them.
var extensionLanguages = map[string]Language{
	".ets": LangTypeScript,
	".ts":  LangTypeScript,
	".mts": LangTypeScript,
	".cts": LangTypeScript,
	".tsx": LangTSX,
}

// ParseLanguage resolves a language by name, case-insensitively.
func ParseLanguage(name string) (Language, error) {
	switch Language(strings.ToLower(name)) {
	case LangTypeScript, "ts", "ets", "arkts":
		return LangTypeScript, nil
	case LangTSX:
		return LangTSX, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedLanguage, "%q", name)
	}
}

// DetectLanguage picks the grammar for a file from its name and, when the
// name is ambiguous, its content.
func DetectLanguage(filename string, content []byte) (Language, error) {
	if lang, ok := extensionLanguages[strings.ToLower(filepath.Ext(filename))]; ok {
		return lang, nil
	}

	switch enry.GetLanguage(filepath.Base(filename), content) {
	case "TypeScript":
		return LangTypeScript, nil
	case "TSX":
		return LangTSX, nil
	case "":
		return "", errors.Wrapf(ErrUnsupportedLanguage, "cannot detect the language of %s", filename)
	default:
		return "", errors.WithHintf(
			errors.Wrapf(ErrUnsupportedLanguage, "%s", filename),
			"only TypeScript, TSX and ArkTS (.ets) sources are read",
		)
	}
}

var grammars = map[Language]func() unsafe.Pointer{
	LangTypeScript: typescript.GetLanguage,
	LangTSX:        tsx.GetLanguage,
}

var grammarCache sync.Map

func grammar(lang Language) (*sitter.Language, error) {
	if cached, ok := grammarCache.Load(lang); ok {
		if grammar, castOK := cached.(*sitter.Language); castOK {
			return grammar, nil
		}
	}

	fn, ok := grammars[lang]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedLanguage, "%q", string(lang))
	}

	loaded := sitter.NewLanguage(fn())
	grammarCache.Store(lang, loaded)

	return loaded, nil
}
