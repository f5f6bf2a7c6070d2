package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"twitchy/internal/errors"
)

// Fzf drives the fzf fuzzy finder. Entries are fed as "index<TAB>line"
// with the index column hidden, so selections map back to items without
// string comparison. Keybinds ride on --expect.
type Fzf struct{}

// fzf exits 130 on ctrl-c / esc.
const fzfInterrupted = 130

// Select renders the request and blocks until the user resolves it.
func (f *Fzf) Select(ctx context.Context, req SelectRequest) (SelectResult, error) {
	args := []string{
		"--prompt", req.Prompt + " ",
		"--layout=reverse",
		"--ansi",
		"--delimiter", "\t",
		"--with-nth", "2..",
	}
	if mesg := hints(req.Mesg, req.Keybinds); mesg != "" {
		args = append(args, "--header", mesg)
	}
	if req.MultiSelect {
		args = append(args, "--multi")
	}
	expect := make([]string, 0, len(req.Keybinds))
	for _, k := range req.Keybinds {
		expect = append(expect, k.Bind)
	}
	if len(expect) > 0 {
		args = append(args, "--expect", strings.Join(expect, ","))
	}

	var feed strings.Builder
	for i, line := range req.Lines {
		fmt.Fprintf(&feed, "%d\t%s\n", i, line)
	}

	out, status, err := runMenu(ctx, "fzf", args, feed.String())
	if err != nil {
		return SelectResult{}, errors.Wrap(err, errors.MenuFailed, "fzf")
	}
	if status == fzfInterrupted || status == 1 {
		return SelectResult{Code: Cancel}, nil
	}
	if status != 0 {
		return SelectResult{}, errors.Newf(errors.MenuFailed, "fzf exited with status %d", status)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	code := Confirm
	if len(expect) > 0 {
		// With --expect the first output line is the key pressed,
		// empty on plain enter.
		key := strings.TrimSpace(lines[0])
		lines = lines[1:]
		if key != "" {
			kb, found := bindForKey(req.Keybinds, key)
			if !found {
				return SelectResult{}, errors.Newf(errors.MenuFailed, "fzf returned unexpected key %q", key)
			}
			code = kb.Code
		}
	}

	var indices []int
	for _, line := range lines {
		idx, _, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 {
			continue
		}
		indices = append(indices, n)
	}
	return SelectResult{Indices: indices, Code: code}, nil
}

// Input takes a free-text line via --print-query. An empty result
// means the user cancelled.
func (f *Fzf) Input(ctx context.Context, prompt, mesg string) (string, error) {
	args := []string{"--print-query", "--prompt", prompt + " "}
	if mesg != "" {
		args = append(args, "--header", mesg)
	}
	out, status, err := runMenu(ctx, "fzf", args, "")
	if err != nil {
		return "", errors.Wrap(err, errors.MenuFailed, "fzf")
	}
	if status == fzfInterrupted {
		return "", nil
	}
	// With an empty feed fzf exits 1; the query still lands on the
	// first output line.
	query, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(query), nil
}

func bindForKey(keybinds []*Keybind, key string) (*Keybind, bool) {
	for _, k := range keybinds {
		if k.Bind == key {
			return k, true
		}
	}
	return nil, false
}
