// Package browser opens the dashboard in the user's default browser.
package browser

import (
	"os/exec"
	"runtime"
	"time"
)

// OpenDelayed launches the browser from a background goroutine after a
// short delay, giving the server time to start listening. The goroutine
// shares no state with the request path.
func OpenDelayed(url string) {
	go func() {
		time.Sleep(time.Second)
		_ = open(url)
	}()
}

func open(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
