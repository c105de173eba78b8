// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package choice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/tmdb-pick/pkg/types"
)

// fieldSeparator joins the display fields. Decoding never splits on it.
const fieldSeparator = " | "

// Key identifies the record behind a ChoiceEntry. It is carried next to the
// display string, never recovered from it.
type Key struct {
	// Kind is the lowercase media tag ("movie" or "tv").
	Kind string `json:"media_type" yaml:"media_type"`

	// ID is the decimal TMDB identifier.
	ID string `json:"tmdb_id" yaml:"tmdb_id"`
}

// ChoiceEntry is one line of the selection menu.
type ChoiceEntry struct {
	Display string           `json:"display" yaml:"display"`
	Key     Key              `json:"key" yaml:"key"`
	Result  NormalizedResult `json:"result" yaml:"result"`
}

// BuildChoices normalizes raws in order, drops exclusions and repeated
// (kind, id) pairs, and returns one entry per survivor. The returned slice
// is never nil.
func BuildChoices(raws []types.RawResult) []ChoiceEntry {
	entries := make([]ChoiceEntry, 0, len(raws))
	seen := make(map[Key]bool, len(raws))

	for _, raw := range raws {
		n, ok := Normalize(raw)
		if !ok {
			continue
		}
		key := Key{Kind: n.Kind.Tag(), ID: strconv.FormatUint(n.ID, 10)}
		if seen[key] {
			continue
		}
		seen[key] = true

		entries = append(entries, ChoiceEntry{
			Display: formatDisplay(n),
			Key:     key,
			Result:  n,
		})
	}
	return entries
}

// Displays returns the display strings of entries in menu order.
func Displays(entries []ChoiceEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Display
	}
	return out
}

// At returns the entry at the 0-based index i chosen from a menu built by
// Displays.
func At(entries []ChoiceEntry, i int) (ChoiceEntry, error) {
	if i < 0 || i >= len(entries) {
		return ChoiceEntry{}, fmt.Errorf("%w: index %d outside %d choice(s)", ErrMalformedEntry, i, len(entries))
	}
	return entries[i], nil
}

func formatDisplay(n NormalizedResult) string {
	fields := []string{
		n.Kind.Label(),
		n.Title,
		n.Date,
		n.Language,
		strconv.FormatUint(n.ID, 10),
	}
	for i, f := range fields {
		fields[i] = singleLine(f)
	}
	return strings.Join(fields, fieldSeparator)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}
