package transcript

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleSeparators = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// InferTitle derives a display title from a transcript file name: the
// extension is dropped, separator characters become spaces, and the result is
// title-cased.
func InferTitle(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = titleSeparators.Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Untitled"
	}
	return cases.Title(language.Und).String(base)
}
