// Package player launches the external media player. Playback is an
// external process; the engine never controls it beyond launch.
package player

import (
	"context"
	"os"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"twitchy/internal/errors"
	"twitchy/internal/log"
)

// Player hands urls to a media player process.
type Player interface {
	// Play launches the player and waits for it to exit.
	Play(ctx context.Context, name, url string) error
	// Spawn launches the player and returns once the process started.
	Spawn(ctx context.Context, url string) error
	// SpawnAll launches one player process per url concurrently and
	// waits for the launches, not for playback.
	SpawnAll(ctx context.Context, urls []string) error
}

// MPV runs a configurable player command, mpv by default.
type MPV struct {
	Command string
	Args    []string
}

// New returns an MPV player for the given command, defaulting to mpv.
func New(command string, args []string) *MPV {
	if command == "" {
		command = "mpv"
	}
	return &MPV{Command: command, Args: args}
}

func (p *MPV) command(ctx context.Context, url string) *exec.Cmd {
	args := append(append([]string(nil), p.Args...), url)
	cmd := exec.CommandContext(ctx, p.Command, args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd
}

// Play launches the player and blocks until playback ends.
func (p *MPV) Play(ctx context.Context, name, url string) error {
	log.Infof("playing %q %s", name, url)
	if err := p.command(ctx, url).Run(); err != nil {
		return errors.Wrapf(err, errors.PlayerFailed, "%s %s", p.Command, url)
	}
	return nil
}

// Spawn launches the player and returns once the process started.
// The process is reaped in the background.
func (p *MPV) Spawn(ctx context.Context, url string) error {
	cmd := p.command(ctx, url)
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, errors.PlayerFailed, "%s %s", p.Command, url)
	}
	log.Debugf("spawned %s pid=%d", p.Command, cmd.Process.Pid)
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debugf("%s exited: %v", p.Command, err)
		}
	}()
	return nil
}

// SpawnAll launches one player per url and waits until every launch
// completed.
func (p *MPV) SpawnAll(ctx context.Context, urls []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, url := range urls {
		url := url
		g.Go(func() error {
			return p.Spawn(ctx, url)
		})
	}
	return g.Wait()
}
