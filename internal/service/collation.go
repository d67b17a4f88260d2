package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortDanish stable-sorts items by key using Danish collation (æ, ø, å after z).
// A collator is not safe for concurrent use, so one is built per call.
func sortDanish[T any](items []T, key func(T) string) {
	c := collate.New(language.Danish, collate.IgnoreCase)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}
