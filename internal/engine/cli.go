package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"

	"braces.dev/errtrace"
	"github.com/tidwall/gjson"
	"go.abhg.dev/fraglight/internal/linebuf"
)

// CLI runs an external engine executable for each request.
//
// The request is written to the process's stdin as JSON
// and the response is read from its stdout.
// Anything the process writes to stderr is forwarded to Log.
type CLI struct {
	// Path is the path to the engine executable.
	// If unset, we'll search $PATH for "fraglight-engine".
	Path string

	// Args are extra arguments passed to the executable.
	Args []string

	// Log receives the engine's stderr, one entry per line.
	Log *log.Logger
}

var _ Engine = (*CLI)(nil)

// Invoke runs the engine once.
func (c *CLI) Invoke(ctx context.Context, req Request) (Result, error) {
	logger := c.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	exe := c.Path
	if exe == "" {
		exe = "fraglight-engine"
	}

	if req.Filters == nil {
		req.Filters = []string{} // null is not a valid filter list
	}
	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, errtrace.Wrap(err)
	}

	stderr, done := linebuf.Log(logger, "engine: ")
	defer done()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, exe, c.Args...)
	cmd.Stdin = bytes.NewReader(body)
	cmd.Stdout = &stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return Result{}, errtrace.Wrap(fmt.Errorf("engine: %w", err))
	}

	res, err := DecodeResult(stdout.Bytes())
	if err != nil {
		return Result{}, errtrace.Wrap(fmt.Errorf("engine: %w", err))
	}
	return res, nil
}

// DecodeResult parses an engine response:
//
//	{"hit_top_filter": "expr", "hit_filters": ["expr", "ident"], "colored": "..."}
//
// A null or missing hit_top_filter means nothing matched the whole input.
func DecodeResult(body []byte) (Result, error) {
	if !gjson.ValidBytes(body) {
		return Result{}, errtrace.Wrap(errors.New("malformed response"))
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return Result{}, errtrace.Wrap(errors.New("response is not an object"))
	}

	var res Result
	if top := doc.Get("hit_top_filter"); top.Type == gjson.String {
		res.TopMatch = top.Str
	}

	hits := doc.Get("hit_filters")
	if hits.Exists() && hits.Type != gjson.Null && !hits.IsArray() {
		return Result{}, errtrace.Wrap(errors.New("hit_filters is not a list"))
	}
	hits.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			res.Matched = append(res.Matched, v.Str)
		}
		return true
	})

	res.HTML = doc.Get("colored").String()
	return res, nil
}
