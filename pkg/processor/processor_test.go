package processor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/715d/sortingtool/pkg/registry"
)

type recordSink struct {
	lines []string
}

func (s *recordSink) Emit(line string) {
	s.lines = append(s.lines, line)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		token    string
		wantKind registry.DataType
		wantNil  bool
	}{
		{token: "long", wantKind: registry.DataTypeLong},
		{token: "line", wantKind: registry.DataTypeLine},
		{token: "word", wantKind: registry.DataTypeWord},
		{token: "double", wantNil: true},
		{token: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p := Create(tt.token, nil)
			if tt.wantNil {
				require.Nil(t, p)
				return
			}
			require.NotNil(t, p)
			require.Equal(t, tt.wantKind, p.Kind())
			require.Zero(t, p.Len())
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	require.Nil(t, New(registry.DataTypeUnknown, nil))
	require.Nil(t, New(registry.DataType(99), nil))
}

func TestProcess_Tokenization(t *testing.T) {
	tests := []struct {
		name      string
		kind      registry.DataType
		units     []string
		wantItems []Item
		wantDiag  []string
	}{
		{
			name:      "longs_skip_malformed",
			kind:      registry.DataTypeLong,
			units:     []string{"3 abc 5"},
			wantItems: []Item{{Num: 3}, {Num: 5}},
			wantDiag:  []string{`"abc" is not a long. It will be skipped.`},
		},
		{
			name:      "longs_signs_and_spacing",
			kind:      registry.DataTypeLong,
			units:     []string{"  -7\t+4  ", "", "0"},
			wantItems: []Item{{Num: -7}, {Num: 4}, {Num: 0}},
		},
		{
			name:      "longs_out_of_range",
			kind:      registry.DataTypeLong,
			units:     []string{"99999999999999999999 1.5 2"},
			wantItems: []Item{{Num: 2}},
			wantDiag: []string{
				`"99999999999999999999" is not a long. It will be skipped.`,
				`"1.5" is not a long. It will be skipped.`,
			},
		},
		{
			name:      "lines_kept_whole",
			kind:      registry.DataTypeLine,
			units:     []string{"the cat  sat", "", " x "},
			wantItems: []Item{{Text: "the cat  sat"}, {Text: ""}, {Text: " x "}},
		},
		{
			name:      "words_split_on_whitespace",
			kind:      registry.DataTypeWord,
			units:     []string{"the cat\tsat", "  ", "mat"},
			wantItems: []Item{{Text: "the"}, {Text: "cat"}, {Text: "sat"}, {Text: "mat"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diag := &recordSink{}
			p := New(tt.kind, diag)
			require.NotNil(t, p)

			for _, unit := range tt.units {
				p.Process(unit)
			}

			require.Equal(t, tt.wantItems, p.Items())
			require.Equal(t, tt.wantDiag, diag.lines)
		})
	}
}

func TestItems_ReturnsCopy(t *testing.T) {
	p := New(registry.DataTypeWord, nil)
	p.Process("b a")

	items := p.Items()
	items[0].Text = "changed"

	require.Equal(t, []Item{{Text: "b"}, {Text: "a"}}, p.Items())
}
