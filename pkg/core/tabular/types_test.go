package tabular

import "testing"

func TestColumnKinds(t *testing.T) {
	tests := []struct {
		name     string
		rows     []Row
		expected []ColumnKind
	}{
		{
			name:     "Mixed kinds",
			rows:     []Row{{"1", "1.5", "true", "abc"}, {"2", "2", "FALSE", "def"}},
			expected: []ColumnKind{KindInteger, KindReal, KindBoolean, KindText},
		},
		{
			name:     "Empty values ignored",
			rows:     []Row{{"1", ""}, {"", "x"}},
			expected: []ColumnKind{KindInteger, KindText},
		},
		{
			name:     "All empty column is text",
			rows:     []Row{{"", "1"}, {"", "2"}},
			expected: []ColumnKind{KindText, KindInteger},
		},
		{
			name:     "Integers are not real",
			rows:     []Row{{"10"}, {"20"}},
			expected: []ColumnKind{KindInteger},
		},
		{
			name:     "No rows is text",
			rows:     nil,
			expected: []ColumnKind{KindText, KindText},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{Header: make(Row, len(tt.expected)), Rows: tt.rows}
			kinds := table.ColumnKinds()
			for i, want := range tt.expected {
				if kinds[i] != want {
					t.Errorf("column %d: kind = %v, want %v", i, kinds[i], want)
				}
			}
		})
	}
}

func TestColumnKindString(t *testing.T) {
	if KindInteger.String() != "integer" || KindText.String() != "text" {
		t.Error("unexpected kind labels")
	}
}
