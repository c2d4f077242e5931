package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/mgomes/monkey/monkey"
	"github.com/spf13/cobra"
)

const (
	severityError   = 1
	severityWarning = 2

	completionKindFunction = 3
	completionKindVariable = 6
	completionKindKeyword  = 14
)

type lspInboundMessage struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type lspResponseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type lspOutboundMessage struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      *json.RawMessage  `json:"id,omitempty"`
	Method  string            `json:"method,omitempty"`
	Params  any               `json:"params,omitempty"`
	Result  any               `json:"result,omitempty"`
	Error   *lspResponseError `json:"error,omitempty"`
}

type lspDidOpenParams struct {
	TextDocument struct {
		URI  string `json:"uri"`
		Text string `json:"text"`
	} `json:"textDocument"`
}

type lspDidChangeParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	ContentChanges []struct {
		Text string `json:"text"`
	} `json:"contentChanges"`
}

type lspDocumentParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
}

type lspTextDocumentPositionParams struct {
	TextDocument struct {
		URI string `json:"uri"`
	} `json:"textDocument"`
	Position struct {
		Line      int `json:"line"`
		Character int `json:"character"`
	} `json:"position"`
}

type lspServer struct {
	reader *bufio.Reader
	writer *bufio.Writer
	engine *monkey.Engine
	docs   map[string]string
}

func newLSPCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Serve the language server protocol over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := state.config.engine(io.Discard, state.logger)
			if err != nil {
				return err
			}
			server := newLSPServer(engine, cmd.InOrStdin(), cmd.OutOrStdout())
			return server.serve()
		},
	}
}

func newLSPServer(engine *monkey.Engine, in io.Reader, out io.Writer) *lspServer {
	return &lspServer{
		reader: bufio.NewReader(in),
		writer: bufio.NewWriter(out),
		engine: engine,
		docs:   make(map[string]string),
	}
}

func (s *lspServer) serve() error {
	for {
		payload, err := s.readPayload()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var incoming lspInboundMessage
		if err := json.Unmarshal(payload, &incoming); err != nil {
			continue
		}

		for _, msg := range s.handleMessage(incoming) {
			if err := s.writePayload(msg); err != nil {
				return err
			}
		}

		if incoming.Method == "exit" {
			return nil
		}
	}
}

func (s *lspServer) handleMessage(incoming lspInboundMessage) []lspOutboundMessage {
	switch incoming.Method {
	case "initialize":
		return reply(incoming, map[string]any{
			"capabilities": map[string]any{
				"textDocumentSync":           1,
				"hoverProvider":              true,
				"documentFormattingProvider": true,
				"completionProvider": map[string]any{
					"resolveProvider": false,
				},
			},
		})
	case "initialized", "exit":
		return nil
	case "shutdown":
		return reply(incoming, nil)
	case "textDocument/didOpen":
		var params lspDidOpenParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		s.docs[params.TextDocument.URI] = params.TextDocument.Text
		return []lspOutboundMessage{
			s.publishDiagnostics(params.TextDocument.URI, params.TextDocument.Text),
		}
	case "textDocument/didChange":
		var params lspDidChangeParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		if len(params.ContentChanges) == 0 {
			return nil
		}
		latest := params.ContentChanges[len(params.ContentChanges)-1].Text
		s.docs[params.TextDocument.URI] = latest
		return []lspOutboundMessage{
			s.publishDiagnostics(params.TextDocument.URI, latest),
		}
	case "textDocument/didClose":
		var params lspDocumentParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return nil
		}
		delete(s.docs, params.TextDocument.URI)
		return nil
	case "textDocument/completion":
		var params lspDocumentParams
		_ = json.Unmarshal(incoming.Params, &params)
		return reply(incoming, map[string]any{
			"isIncomplete": false,
			"items":        completionItems(s.engine, s.docs[params.TextDocument.URI]),
		})
	case "textDocument/hover":
		var params lspTextDocumentPositionParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return replyError(incoming, -32602, "invalid hover params")
		}
		source := s.docs[params.TextDocument.URI]
		word := wordAtPosition(source, params.Position.Line, params.Position.Character)
		if word == "" {
			return reply(incoming, nil)
		}
		return reply(incoming, map[string]any{
			"contents": map[string]any{
				"kind":  "markdown",
				"value": fmt.Sprintf("`%s`\n\nMonkey %s", word, classifyWord(s.engine, source, word)),
			},
		})
	case "textDocument/formatting":
		var params lspDocumentParams
		if err := json.Unmarshal(incoming.Params, &params); err != nil {
			return replyError(incoming, -32602, "invalid formatting params")
		}
		source, ok := s.docs[params.TextDocument.URI]
		if !ok {
			return reply(incoming, []any{})
		}
		formatted, err := monkey.Format(source)
		if err != nil || formatted == source {
			return reply(incoming, []any{})
		}
		return reply(incoming, []map[string]any{
			{"range": wholeDocumentRange(source), "newText": formatted},
		})
	default:
		return replyError(incoming, -32601, "method not found")
	}
}

// reply answers a request. Notifications carry no ID and get no reply.
func reply(incoming lspInboundMessage, result any) []lspOutboundMessage {
	if incoming.ID == nil {
		return nil
	}
	return []lspOutboundMessage{{JSONRPC: "2.0", ID: incoming.ID, Result: result}}
}

func replyError(incoming lspInboundMessage, code int, message string) []lspOutboundMessage {
	if incoming.ID == nil {
		return nil
	}
	return []lspOutboundMessage{{
		JSONRPC: "2.0",
		ID:      incoming.ID,
		Error:   &lspResponseError{Code: code, Message: message},
	}}
}

func (s *lspServer) publishDiagnostics(uri, source string) lspOutboundMessage {
	return lspOutboundMessage{
		JSONRPC: "2.0",
		Method:  "textDocument/publishDiagnostics",
		Params: map[string]any{
			"uri":         uri,
			"diagnostics": diagnosticsForSource(s.engine, source),
		},
	}
}

// diagnosticsForSource reports every parse error, or the analyzer's warnings
// when the source parses.
func diagnosticsForSource(engine *monkey.Engine, source string) []map[string]any {
	program, err := engine.Compile(source)
	if err != nil {
		var parseErrs monkey.ParseErrors
		if !errors.As(err, &parseErrs) {
			return []map[string]any{newDiagnostic(0, 0, severityError, err.Error())}
		}
		out := make([]map[string]any, 0, len(parseErrs))
		for _, pe := range parseErrs {
			out = append(out, newDiagnostic(max(0, pe.Pos.Line-1), max(0, pe.Pos.Column-1), severityError, pe.Msg))
		}
		return out
	}

	warnings := analyzeProgramWarnings(program)
	out := make([]map[string]any, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, newDiagnostic(max(0, w.Pos.Line-1), max(0, w.Pos.Column-1), severityWarning, w.Message))
	}
	return out
}

func newDiagnostic(line, character, severity int, message string) map[string]any {
	return map[string]any{
		"range": map[string]any{
			"start": map[string]any{
				"line":      line,
				"character": character,
			},
			"end": map[string]any{
				"line":      line,
				"character": character + 1,
			},
		},
		"severity": severity,
		"source":   "monkey-lsp",
		"message":  message,
	}
}

func wholeDocumentRange(source string) map[string]any {
	lines := strings.Split(source, "\n")
	last := lines[len(lines)-1]
	return map[string]any{
		"start": map[string]any{"line": 0, "character": 0},
		"end":   map[string]any{"line": len(lines) - 1, "character": len([]rune(last))},
	}
}

// documentBindings lists the names bound by top-level let statements.
func documentBindings(source string) []string {
	if source == "" {
		return nil
	}
	program, _ := monkey.Parse(source)
	if program == nil {
		return nil
	}
	var names []string
	for _, stmt := range program.Statements {
		if let, ok := stmt.(*monkey.LetStmt); ok {
			names = append(names, let.Name.Name)
		}
	}
	return names
}

func completionItems(engine *monkey.Engine, source string) []map[string]any {
	kinds := make(map[string]string)
	for _, name := range documentBindings(source) {
		kinds[name] = "binding"
	}
	for _, name := range engine.BuiltinNames() {
		kinds[name] = "builtin"
	}
	for _, keyword := range monkey.Keywords() {
		kinds[keyword] = "keyword"
	}

	labels := make([]string, 0, len(kinds))
	for label := range kinds {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	items := make([]map[string]any, 0, len(labels))
	for _, label := range labels {
		detail := kinds[label]
		kind := completionKindVariable
		switch detail {
		case "keyword":
			kind = completionKindKeyword
		case "builtin":
			kind = completionKindFunction
		}
		items = append(items, map[string]any{
			"label":  label,
			"kind":   kind,
			"detail": detail,
		})
	}
	return items
}

func classifyWord(engine *monkey.Engine, source, word string) string {
	switch {
	case slices.Contains(monkey.Keywords(), word):
		return "keyword"
	case slices.Contains(documentBindings(source), word):
		return "binding"
	case slices.Contains(engine.BuiltinNames(), word):
		return "builtin"
	default:
		return "symbol"
	}
}

func wordAtPosition(source string, line, character int) string {
	lines := strings.Split(source, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}

	runes := []rune(lines[line])
	if len(runes) == 0 {
		return ""
	}
	character = min(max(character, 0), len(runes))

	cursor := character
	if cursor == len(runes) {
		cursor--
	}
	if !isWordRune(runes[cursor]) {
		if cursor > 0 && isWordRune(runes[cursor-1]) {
			cursor--
		} else {
			return ""
		}
	}

	start := cursor
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := cursor
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	return string(runes[start:end])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (s *lspServer) readPayload() ([]byte, error) {
	contentLength := -1
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			n, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %w", err)
			}
			contentLength = n
		}
	}

	if contentLength < 0 {
		return nil, errors.New("missing Content-Length header")
	}
	payload := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *lspServer) writePayload(msg lspOutboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.writer, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	if _, err := s.writer.Write(data); err != nil {
		return err
	}
	return s.writer.Flush()
}
