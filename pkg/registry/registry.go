// Package registry enumerates the data-type and output-mode tokens accepted on the command line.
package registry

// DataType selects how input is tokenized and compared.
type DataType int

const (
	// DataTypeUnknown is the zero value and never a valid selection.
	DataTypeUnknown DataType = iota

	// DataTypeLong treats each whitespace-separated token as a signed integer.
	DataTypeLong

	// DataTypeLine treats every input line as one item.
	DataTypeLine

	// DataTypeWord treats each whitespace-separated token as one item.
	DataTypeWord
)

// OutputMode selects which report is rendered.
type OutputMode int

const (
	// OutputModeUnknown is the zero value and never a valid selection.
	OutputModeUnknown OutputMode = iota

	// OutputModeSummary reports the total and the maximum items.
	OutputModeSummary

	// OutputModeSorted reports all items in natural order.
	OutputModeSorted

	// OutputModeSortedByCount reports distinct items ordered by occurrence count.
	OutputModeSortedByCount
)

// Tokens as they appear on the command line.
const (
	TokenLong = "long"
	TokenLine = "line"
	TokenWord = "word"

	TokenSummary = "summary"
	TokenNatural = "natural"
	TokenByCount = "byCount"
)

var dataTypeTokens = map[string]DataType{
	TokenLong: DataTypeLong,
	TokenLine: DataTypeLine,
	TokenWord: DataTypeWord,
}

var outputModeTokens = map[string]OutputMode{
	TokenSummary: OutputModeSummary,
	TokenNatural: OutputModeSorted,
	TokenByCount: OutputModeSortedByCount,
}

// DataTypes lists the valid data-type tokens in declaration order.
func DataTypes() []string {
	return []string{TokenLong, TokenLine, TokenWord}
}

// OutputModes lists the valid output-mode tokens in declaration order.
func OutputModes() []string {
	return []string{TokenSummary, TokenNatural, TokenByCount}
}

// ParseDataType resolves a token to its DataType. Tokens are case-sensitive.
func ParseDataType(token string) (DataType, bool) {
	dt, ok := dataTypeTokens[token]
	return dt, ok
}

// ParseOutputMode resolves a token to its OutputMode. Tokens are case-sensitive.
func ParseOutputMode(token string) (OutputMode, bool) {
	mode, ok := outputModeTokens[token]
	return mode, ok
}

func (d DataType) String() string {
	switch d {
	case DataTypeLong:
		return TokenLong
	case DataTypeLine:
		return TokenLine
	case DataTypeWord:
		return TokenWord
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the registered data types.
func (d DataType) Valid() bool {
	return d == DataTypeLong || d == DataTypeLine || d == DataTypeWord
}

func (m OutputMode) String() string {
	switch m {
	case OutputModeSummary:
		return TokenSummary
	case OutputModeSorted:
		return TokenNatural
	case OutputModeSortedByCount:
		return TokenByCount
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the registered output modes.
func (m OutputMode) Valid() bool {
	return m == OutputModeSummary || m == OutputModeSorted || m == OutputModeSortedByCount
}
