package application

import (
	"os/exec"
	"runtime"

	log "github.com/sirupsen/logrus"
)

// openBrowser opens the url with the host environment's default handler.
// Fire and forget: failures are logged, never surfaced to the workflow.
func openBrowser(url string) {
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
		log.WithError(err).Warnf("could not open %s in browser", url)
	}
}
