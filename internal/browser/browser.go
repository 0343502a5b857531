// Package browser opens URLs in the user's default browser.
package browser

// Open asks the desktop to show url. It returns once the launcher exits,
// which is usually before the browser window appears.
func Open(url string) error {
	return open(url)
}
