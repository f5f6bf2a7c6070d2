package menu

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"twitchy/internal/errors"
)

// Rofi drives the rofi launcher in dmenu mode. Keybinds map onto
// rofi's custom keys, whose exit statuses start at 10 and line up with
// KeycodeBase.
type Rofi struct {
	Lines int
}

// rofi supports kb-custom-1 through kb-custom-19.
const rofiMaxCustom = 19

// Select renders the request and blocks until the user resolves it.
func (r *Rofi) Select(ctx context.Context, req SelectRequest) (SelectResult, error) {
	args := []string{"-dmenu", "-i", "-format", "i", "-p", req.Prompt}
	if r.Lines > 0 {
		args = append(args, "-l", strconv.Itoa(r.Lines))
	}
	if mesg := hints(req.Mesg, req.Keybinds); mesg != "" {
		args = append(args, "-mesg", mesg)
	}
	if req.MultiSelect {
		args = append(args, "-multi-select")
	}
	for _, k := range req.Keybinds {
		n := k.Code - KeycodeBase + 1
		if n < 1 || n > rofiMaxCustom {
			return SelectResult{}, errors.Newf(errors.InvalidConfig,
				"keybind code %d outside rofi custom key range", k.Code)
		}
		args = append(args, fmt.Sprintf("-kb-custom-%d", n), rofiBind(k.Bind))
	}

	out, code, err := runMenu(ctx, "rofi", args, strings.Join(req.Lines, "\n"))
	if err != nil {
		return SelectResult{}, errors.Wrap(err, errors.MenuFailed, "rofi")
	}

	switch {
	case code == Confirm || code >= KeycodeBase:
		return SelectResult{Indices: parseIndices(out), Code: code}, nil
	case code == Cancel:
		return SelectResult{Code: Cancel}, nil
	default:
		return SelectResult{}, errors.Newf(errors.MenuFailed, "rofi exited with status %d", code)
	}
}

// Input takes a free-text line. An empty result means the user
// cancelled.
func (r *Rofi) Input(ctx context.Context, prompt, mesg string) (string, error) {
	args := []string{"-dmenu", "-p", prompt, "-l", "0"}
	if mesg != "" {
		args = append(args, "-mesg", mesg)
	}
	out, code, err := runMenu(ctx, "rofi", args, "")
	if err != nil {
		return "", errors.Wrap(err, errors.MenuFailed, "rofi")
	}
	if code != Confirm {
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// rofiBind translates a key label like "alt-v" into rofi's "Alt+v".
func rofiBind(bind string) string {
	parts := strings.Split(bind, "-")
	for i, p := range parts {
		switch strings.ToLower(p) {
		case "alt":
			parts[i] = "Alt"
		case "ctrl":
			parts[i] = "Control"
		case "shift":
			parts[i] = "Shift"
		case "super":
			parts[i] = "Super"
		}
	}
	return strings.Join(parts, "+")
}

// parseIndices reads the selected entry indices printed by -format i,
// one per line. Negative indices mean typed text outside the list and
// are dropped.
func parseIndices(out string) []int {
	var indices []int
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 0 {
			continue
		}
		indices = append(indices, n)
	}
	return indices
}

// runMenu executes a menu program with the given stdin feed and
// returns its stdout and exit status. Menu programs signal user
// choices through exit statuses, so those are not errors here.
func runMenu(ctx context.Context, name string, args []string, stdin string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stderr = os.Stderr
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out.String(), exitErr.ExitCode(), nil
		}
		return "", 0, err
	}
	return out.String(), 0, nil
}
