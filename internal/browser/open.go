package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Open opens a profile link in the user's default browser. Links come from
// user-entered social rows, so anything that is not plain http(s) is
// rejected instead of handed to the shell opener.
func Open(url string) error {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("refusing to open non-http url: %s", url)
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
