package tabular

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected rune
	}{
		{
			name:     "Comma separated",
			input:    "a,b,c\n1,2,3\n4,5,6",
			expected: ',',
		},
		{
			name:     "Semicolon separated",
			input:    "a;b;c\n1;2;3",
			expected: ';',
		},
		{
			name:     "Tab separated",
			input:    "a\tb\tc\n1\t2\t3",
			expected: '\t',
		},
		{
			name:     "Pipe separated",
			input:    "id|name|city\n1|alice|oslo",
			expected: '|',
		},
		{
			name:     "Empty input defaults to comma",
			input:    "",
			expected: ',',
		},
		{
			name:     "Single column defaults to comma",
			input:    "name\nalice\nbob",
			expected: ',',
		},
		{
			name:     "Consistency beats raw count",
			input:    "a;b\n1;2\n3;4\n5;6,7",
			expected: ';',
		},
		{
			name:     "Quoted delimiter does not count",
			input:    `name;note` + "\n" + `alice;"a,b,c,d"` + "\n" + `bob;"x,y"`,
			expected: ';',
		},
		{
			name:     "Priority order breaks ties",
			input:    "a,b;c\n1,2;3",
			expected: ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDetectSamplesOnlyLeadingLines(t *testing.T) {
	// Delimiter change after the sample window must not affect the result.
	input := "a,b,c\n"
	for i := 0; i < detectSampleLines; i++ {
		input += "1,2,3\n"
	}
	input += "x;y;z\nx;y;z\nx;y;z\n"

	if got := Detect(input); got != ',' {
		t.Errorf("Detect() = %q, want ','", got)
	}
}
