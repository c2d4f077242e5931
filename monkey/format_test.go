package monkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLayout(t *testing.T) {
	source := `let add=fn(x,y){x+y};let r=add(1,2)
if(r>2){puts("big")}else{return;}
fn(){}`
	want := `let add = fn(x, y) {
  x + y;
};
let r = add(1, 2);
if (r > 2) {
  puts("big");
} else {
  return;
};
fn() {};
`
	got, err := Format(source)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFormatKeepsOnlyNeededParentheses(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(1 + 2) * 3", "(1 + 2) * 3;\n"},
		{"1 + (2 * 3)", "1 + 2 * 3;\n"},
		{"a - (b - c)", "a - (b - c);\n"},
		{"(a - b) - c", "a - b - c;\n"},
		{"-(a + b)", "-(a + b);\n"},
		{"(-a)(b)", "(-a)(b);\n"},
		{"!(-a)", "!-a;\n"},
		{"(a == b) == c", "a == b == c;\n"},
		{"a[(1 + 2)]", "a[1 + 2];\n"},
		{"[(1), (2 + 3)][0]", "[1, 2 + 3][0];\n"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Format(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatIsStable(t *testing.T) {
	sources := []string{
		"let f = fn(n) { if (n < 2) { return n; } f(n - 1) + f(n - 2) }; f(10)",
		"let xs = [1, 2 * (3 + 4), \"s\"]; xs[1 - 1]",
		"fn(x) { fn(y) { x + y } }(2)(3)",
		"if (a) { if (b) { 1 } } else { 2 }",
	}
	for _, source := range sources {
		once, err := Format(source)
		require.NoError(t, err)
		twice, err := Format(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)

		p1, _ := Parse(source)
		p2, _ := Parse(once)
		assert.Equal(t, p1.String(), p2.String())
	}
}

func TestFormatReportsParseErrors(t *testing.T) {
	_, err := Format("let = 1;")
	var errs ParseErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, UnexpectedToken, errs[0].Kind)
}
