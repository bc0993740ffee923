// Package fuzzy ranks short labels, such as column headers, against a typed
// query.
//
// A label matches when every query rune appears in it in order. Matches
// are scored so that prefixes, consecutive runs and word starts rank first:
//
//	ranked := fuzzy.Rank("ct", []string{"name", "city", "country"})
//	// ranked[0].Index == 1 ("city")
//
// Matching ignores case unless the query contains an upper case rune.
package fuzzy
