// Package browser opens urls in the default web browser.
package browser

import (
	"os/exec"
	"runtime"

	"twitchy/internal/log"
)

// Open launches the platform's url opener and returns immediately.
func Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	log.Debugf("opened %s in browser", url)
	go func() { _ = cmd.Wait() }()
	return nil
}
