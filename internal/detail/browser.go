package detail

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowser launches the system browser at url, the new-browsing-context
// half of the drill-down contract. The returned error is advisory; the
// dashboard keeps running either way.
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	default:
		return fmt.Errorf("detail: no browser launcher for %s", runtime.GOOS)
	}
}
