package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const plainBanner = "Hello! This is the Monkey programming language!\nFeel free to type in commands\n"

// lineReader is the part of *liner.State the line-mode loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

func runPlainREPL(ctx context.Context, state *cliState, out io.Writer) error {
	engine, err := state.config.engine(out, state.logger)
	if err != nil {
		return err
	}

	session := newREPLSession(engine)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		return completeLine(session, line)
	})

	histPath := state.config.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprint(out, plainBanner+"\n")
	return plainLoop(ctx, session, ln, state.config.Prompt, out)
}

// plainLoop reads lines until EOF or Ctrl-C, printing each outcome.
func plainLoop(ctx context.Context, session *replSession, in lineReader, prompt string, out io.Writer) error {
	for {
		line, err := in.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("read line: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		in.AppendHistory(line)

		outcome := session.eval(ctx, line)
		for _, text := range outcome.lines {
			if outcome.isErr {
				fmt.Fprintln(out, "\t"+strings.ReplaceAll(text, "\n", "\n\t"))
				continue
			}
			fmt.Fprintln(out, text)
		}
	}
}

// completeLine completes the trailing identifier of line.
func completeLine(session *replSession, line string) []string {
	start := wordStart(line)
	word := line[start:]
	if word == "" {
		return nil
	}
	matches := session.completions(word)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = line[:start] + m
	}
	return out
}

// wordStart is the byte offset where the trailing identifier of line begins.
func wordStart(line string) int {
	return strings.LastIndexFunc(line, func(r rune) bool {
		return !(r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'))
	}) + 1
}
