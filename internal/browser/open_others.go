//go:build !windows && !darwin

package browser

import "os/exec"

func open(url string) error {
	return exec.Command("xdg-open", url).Run()
}
