package monkey

import (
	"context"
	"io"
	"testing"
)

func FuzzLexerTerminates(f *testing.F) {
	f.Add("")
	f.Add("let five = 5;")
	f.Add(`"unterminated`)
	f.Add("!-/*5; 5 < 10 > 5; @#$")

	f.Fuzz(func(t *testing.T, source string) {
		toks := NewLexer(source).Tokens()
		if len(toks) == 0 || toks[len(toks)-1].Type != tokenEOF {
			t.Fatalf("token stream must end with EOF, got %v", toks)
		}
		if len(toks) > len(source)+1 {
			t.Fatalf("produced %d tokens from %d bytes", len(toks), len(source))
		}
	})
}

func FuzzParseDoesNotPanic(f *testing.F) {
	f.Add("")
	f.Add("let x = fn(a, b) { a + b }(1, 2);")
	f.Add("let = ;")
	f.Add("if (x { ]")
	f.Add("((((((((((1")
	f.Add("99999999999999999999999")

	f.Fuzz(func(t *testing.T, source string) {
		program, errs := Parse(source)
		if program == nil {
			t.Fatalf("program must never be nil")
		}
		if len(errs) == 0 {
			if _, err := Format(source); err != nil {
				t.Fatalf("format failed on valid source: %v", err)
			}
		}
	})
}

func FuzzEvalDoesNotPanic(f *testing.F) {
	engine := MustNewEngine(Config{StepQuota: 20_000, RecursionLimit: 64, Stdout: io.Discard})

	f.Add("1 + 2 * 3")
	f.Add("let f = fn(n) { f(n) }; f(1)")
	f.Add("[1, 2][5] + 1")
	f.Add(`len("abc") / 0`)
	f.Add("rest(push([], 1))[0]")
	f.Add("-9223372036854775807 - 1 - 1")

	f.Fuzz(func(t *testing.T, source string) {
		program, err := engine.Compile(source)
		if err != nil {
			return
		}
		result := engine.Eval(context.Background(), program, nil)
		if result.Kind() == KindReturn {
			t.Fatalf("return value escaped the program: %s", result)
		}
		_ = result.String()
	})
}
