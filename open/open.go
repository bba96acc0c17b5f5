// Package open launches URLs with the system's default handler.
package open

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/vnkit/vnkit/constant"
)

// entryPattern matches database ids such as v17, r1234, c5 or g32.
var entryPattern = regexp.MustCompile(`^[vrpcsgi][1-9][0-9]*$|^u[1-9][0-9]*$`)

// Page returns the website URL of a database entry.
func Page(id string) (string, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if !entryPattern.MatchString(id) {
		return "", fmt.Errorf("invalid id %q", id)
	}

	return constant.Website + "/" + url.PathEscape(id), nil
}

// Start opens input with the default handler and returns without waiting for it.
func Start(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// StartWith opens input with app. An empty app means the default handler.
func StartWith(input, app string) error {
	if app == "" {
		return Start(input)
	}

	cmd, ok := commandWith(input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return cmd.Start()
}

func command(input string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}

func commandWith(input, app string) (*exec.Cmd, bool) {
	switch runtime.GOOS {
	case constant.Windows:
		// start treats & as a command separator
		return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(input, "&", "^&")), true
	case constant.Darwin:
		return exec.Command("open", "-a", app, input), true
	case constant.Linux:
		return exec.Command(app, input), true
	case constant.Android:
		return exec.Command("termux-open", "--choose", input), true
	default:
		return nil, false
	}
}
