// Package processor accumulates tokens read from text input and renders
// statistics reports over them.
//
// A Processor is bound to one registry.DataType for its whole life. Each call
// to Process consumes one input line; Render produces the report for an
// output mode once all input has been consumed:
//
//	p := processor.New(registry.DataTypeLong, diagnostics)
//	p.Process("1 2 2 3")
//	fmt.Print(p.Render(registry.OutputModeSummary))
package processor

import (
	"slices"

	"github.com/715d/sortingtool/pkg/registry"
)

// Sink receives lines of text. A line passed to Emit carries no trailing newline.
type Sink interface {
	Emit(line string)
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(string) {}

// Item is one accumulated value. Num is set for DataTypeLong, Text otherwise.
type Item struct {
	Num  int64
	Text string
}

// Processor is a stateful accumulator for one data type.
type Processor struct {
	kind  registry.DataType
	rules *rules
	diag  Sink
	items []Item
}

// New creates an empty Processor for kind. Skip diagnostics go to diag;
// a nil diag discards them. New returns nil if kind is not a registered data type.
func New(kind registry.DataType, diag Sink) *Processor {
	r, ok := rulesByKind[kind]
	if !ok {
		return nil
	}
	if diag == nil {
		diag = Discard
	}
	return &Processor{
		kind:  kind,
		rules: r,
		diag:  diag,
	}
}

// Create resolves a data-type token and returns a new Processor for it,
// or nil when the token is not registered.
func Create(token string, diag Sink) *Processor {
	kind, ok := registry.ParseDataType(token)
	if !ok {
		return nil
	}
	return New(kind, diag)
}

// Kind returns the data type the Processor was created for.
func (p *Processor) Kind() registry.DataType {
	return p.kind
}

// Process tokenizes one unit of input and appends every parsed item.
func (p *Processor) Process(unit string) {
	p.items = p.rules.tokenize(p.items, unit, p.diag)
}

// Len returns the number of accumulated items.
func (p *Processor) Len() int {
	return len(p.items)
}

// Items returns a copy of the accumulated items in their current order.
func (p *Processor) Items() []Item {
	return slices.Clone(p.items)
}
