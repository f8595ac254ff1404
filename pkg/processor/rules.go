package processor

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/715d/sortingtool/pkg/registry"
)

// rules holds the per-kind behaviour shared by every Processor of that kind.
type rules struct {
	// label is the singular item name used in report headers.
	label string

	// separator joins items on the "Sorted data" line. A newline puts every
	// item on its own line below the header.
	separator string

	tokenize  func(dst []Item, unit string, diag Sink) []Item
	compare   func(a, b Item) int
	selectMax func(items []Item) []Item
	format    func(Item) string

	// summary renders the lines describing the maximum items.
	summary func(r *rules, top []Item, count, rate int) []string
}

var rulesByKind = map[registry.DataType]*rules{
	registry.DataTypeLong: {
		label:     "number",
		separator: " ",
		tokenize:  tokenizeLongs,
		compare:   compareNum,
		selectMax: selectGreatest,
		format:    formatNum,
		summary: func(r *rules, top []Item, count, rate int) []string {
			return []string{fmt.Sprintf("The greatest %s: %s (%d time(s), %d%%).",
				r.label, r.format(top[0]), count, rate)}
		},
	},
	registry.DataTypeLine: {
		label:     "line",
		separator: "\n",
		tokenize:  tokenizeLine,
		compare:   compareText,
		selectMax: selectLongest,
		format:    formatText,
		summary: func(r *rules, top []Item, count, rate int) []string {
			lines := make([]string, 0, len(top)+2)
			lines = append(lines, fmt.Sprintf("The longest %s:", r.label))
			for _, it := range top {
				lines = append(lines, r.format(it))
			}
			return append(lines, fmt.Sprintf("(%d time(s), %d%%).", count, rate))
		},
	},
	registry.DataTypeWord: {
		label:     "word",
		separator: " ",
		tokenize:  tokenizeWords,
		compare:   compareText,
		selectMax: selectLongest,
		format:    formatText,
		summary: func(r *rules, top []Item, count, rate int) []string {
			return []string{fmt.Sprintf("The longest %s: %s (%d time(s), %d%%).",
				r.label, r.join(top, " "), count, rate)}
		},
	},
}

func (r *rules) join(items []Item, sep string) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(r.format(it))
	}
	return b.String()
}

func tokenizeLongs(dst []Item, unit string, diag Sink) []Item {
	for _, field := range strings.Fields(unit) {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			diag.Emit(fmt.Sprintf("\"%s\" is not a long. It will be skipped.", field))
			continue
		}
		dst = append(dst, Item{Num: n})
	}
	return dst
}

func tokenizeLine(dst []Item, unit string, _ Sink) []Item {
	return append(dst, Item{Text: unit})
}

func tokenizeWords(dst []Item, unit string, _ Sink) []Item {
	for _, field := range strings.Fields(unit) {
		dst = append(dst, Item{Text: field})
	}
	return dst
}

func compareNum(a, b Item) int {
	return cmp.Compare(a.Num, b.Num)
}

func compareText(a, b Item) int {
	return strings.Compare(a.Text, b.Text)
}

// selectGreatest returns every item equal to the numeric maximum.
func selectGreatest(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	greatest := items[0].Num
	for _, it := range items[1:] {
		greatest = max(greatest, it.Num)
	}
	var top []Item
	for _, it := range items {
		if it.Num == greatest {
			top = append(top, it)
		}
	}
	return top
}

// selectLongest returns every item whose byte length equals the maximum, duplicates included.
func selectLongest(items []Item) []Item {
	longest := -1
	for _, it := range items {
		longest = max(longest, len(it.Text))
	}
	var top []Item
	for _, it := range items {
		if len(it.Text) == longest {
			top = append(top, it)
		}
	}
	return top
}

func formatNum(it Item) string {
	return strconv.FormatInt(it.Num, 10)
}

func formatText(it Item) string {
	return it.Text
}
