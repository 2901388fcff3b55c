package interp

import (
	"errors"
	"testing"
)

func parse(t *testing.T, input string) Expr {
	t.Helper()
	p, err := NewParser(NewLexer(input))
	if err != nil {
		t.Fatalf("NewParser(%q): %v", input, err)
	}
	node, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return node
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7", "7"},
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"10 - 2 - 3", "((10 - 2) - 3)"},
		{"(2 + 3) * 4", "((2 + 3) * 4)"},
		{"100 / 10 / 5", "((100 / 10) / 5)"},
		{"((7))", "7"},
		{"1+2*3-4/2", "((1 + (2 * 3)) - (4 / 2))"},
	}
	for _, test := range tests {
		got := parse(t, test.input).String()
		if got != test.want {
			t.Errorf("Parse(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"(1 + 2",
		"1 +",
		")",
		"* 3",
		"1 + 2) 3",
		"()",
		"-5",
	}
	for _, input := range tests {
		p, err := NewParser(NewLexer(input))
		if err != nil {
			t.Fatalf("NewParser(%q): %v", input, err)
		}
		_, err = p.Parse()
		if err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Parse(%q) error is %T (%v), want *ParseError", input, err, err)
		}
	}
}

func TestParseExpressionLeavesTrailingTokens(t *testing.T) {
	p, err := NewParser(NewLexer("1 + 2) 3"))
	if err != nil {
		t.Fatal(err)
	}
	node, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	if got := node.String(); got != "(1 + 2)" {
		t.Errorf("ParseExpression = %q, want %q", got, "(1 + 2)")
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	inputs := []string{
		"7",
		"2 + 3 * 4",
		"10 - 2 - 3",
		"(2 + 3) * 4",
		"((1 + 2) * (3 + 4)) / 7",
	}
	for _, input := range inputs {
		rendered := parse(t, input).String()
		again := parse(t, rendered).String()
		if again != rendered {
			t.Errorf("round trip of %q: %q re-parses to %q", input, rendered, again)
		}
	}
}
