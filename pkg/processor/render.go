package processor

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/715d/sortingtool/pkg/registry"
)

// Render returns the report for mode with every line newline-terminated.
// OutputModeSorted reorders the accumulated items in place; the sort is
// stable so repeated renders are identical. Unregistered modes render nothing.
func (p *Processor) Render(mode registry.OutputMode) string {
	var lines []string
	switch mode {
	case registry.OutputModeSummary:
		lines = p.renderSummary()
	case registry.OutputModeSorted:
		lines = p.renderSorted()
	case registry.OutputModeSortedByCount:
		lines = p.renderByCount()
	default:
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (p *Processor) totalLine() string {
	return fmt.Sprintf("Total %ss: %d.", p.rules.label, len(p.items))
}

// rate is the truncated percentage of count relative to total. total must be positive.
func rate(count, total int) int {
	return count * 100 / total
}

func (p *Processor) renderSummary() []string {
	lines := []string{p.totalLine()}
	if len(p.items) == 0 {
		return lines
	}

	top := p.rules.selectMax(p.items)
	slices.SortStableFunc(top, p.rules.compare)
	return append(lines, p.rules.summary(p.rules, top, len(top), rate(len(top), len(p.items)))...)
}

func (p *Processor) renderSorted() []string {
	slices.SortStableFunc(p.items, p.rules.compare)

	lines := []string{p.totalLine()}
	switch {
	case len(p.items) == 0:
		lines = append(lines, "Sorted data:")
	case p.rules.separator == "\n":
		lines = append(lines, "Sorted data:")
		for _, it := range p.items {
			lines = append(lines, p.rules.format(it))
		}
	default:
		lines = append(lines, "Sorted data: "+p.rules.join(p.items, p.rules.separator))
	}
	return lines
}

// frequency is the occurrence count of one distinct item.
type frequency struct {
	item  Item
	count int
}

// frequencies groups items by equality and orders the groups by (count, item) ascending.
func (p *Processor) frequencies() []frequency {
	counts := make(map[Item]int, len(p.items))
	var freqs []frequency
	for _, it := range p.items {
		if counts[it] == 0 {
			freqs = append(freqs, frequency{item: it})
		}
		counts[it]++
	}
	for i := range freqs {
		freqs[i].count = counts[freqs[i].item]
	}

	slices.SortFunc(freqs, func(a, b frequency) int {
		if c := cmp.Compare(a.count, b.count); c != 0 {
			return c
		}
		return p.rules.compare(a.item, b.item)
	})
	return freqs
}

func (p *Processor) renderByCount() []string {
	lines := []string{p.totalLine()}
	for _, f := range p.frequencies() {
		lines = append(lines, fmt.Sprintf("%s: %d time(s), %d%%",
			p.rules.format(f.item), f.count, rate(f.count, len(p.items))))
	}
	return lines
}
