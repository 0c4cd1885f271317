package sanitizer_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputkit/pkg/sanitizer"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		allowed     string
		replacement string
		expected    string
	}{
		{
			name:     "keeps allowed class",
			input:    "admin,1234",
			allowed:  "0-9a-zA-Z,",
			expected: "admin,1234",
		},
		{
			name:     "drops characters outside the class",
			input:    "adminกข,12ฟ34",
			allowed:  "0-9a-zA-Z,",
			expected: "admin,1234",
		},
		{
			name:     "digits only",
			input:    "ทด0123สอ4บ5",
			allowed:  `\d`,
			expected: "012345",
		},
		{
			name:     "date parts",
			input:    "2016-01-01 เวลา 20:20",
			allowed:  `\d\s\-:`,
			expected: "2016-01-01  20:20",
		},
		{
			name:        "uses replacement for every dropped character",
			input:       "a.b.c",
			allowed:     "a-z",
			replacement: "_",
			expected:    "a_b_c",
		},
		{
			name:     "trims the result",
			input:    "  42  ",
			allowed:  `\d\s`,
			expected: "42",
		},
		{
			name:     "escaped hash in class",
			input:    "#ff00ff;",
			allowed:  `\#a-zA-Z0-9`,
			expected: "#ff00ff",
		},
		{
			name:     "invalid class yields empty string",
			input:    "anything",
			allowed:  `z-a`,
			expected: "",
		},
		{
			name:     "empty class yields empty string",
			input:    "anything",
			allowed:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Filter(tt.input, tt.allowed, tt.replacement))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"ทด0123สอ4บ5", " #abc-123 ", "2016-01-01\t20:20:20xx", ""}
	classes := []string{`\d`, `\#a-zA-Z0-9`, `\d\s\-:`}

	for _, in := range inputs {
		for _, class := range classes {
			once := sanitizer.Filter(in, class, "")
			twice := sanitizer.Filter(once, class, "")
			assert.Equal(t, once, twice, "input %q class %q", in, class)
		}
	}
}

func TestFilter_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "123", sanitizer.Filter("a1b2c3", `\d`, ""))
			assert.Equal(t, "", sanitizer.Filter("a1b2c3", `z-a`, ""))
		}()
	}
	wg.Wait()
}

func TestDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "012345", sanitizer.Digits("0.12345"))
	assert.Equal(t, "", sanitizer.Digits("none"))
}
