// Package dialog shows the modal error reported when the OS is rejected.
package dialog

import "fmt"

// Product identifies the software in dialog text.
type Product struct {
	Name           string
	Version        string
	SupportContact string
	ErrorCode      string
}

// Message is the content of a modal error dialog.
type Message struct {
	Title string
	Body  string
}

// CompatibilityError builds the dialog shown when the software refuses to
// run on the OS named by osLabel.
func CompatibilityError(p Product, osLabel string) Message {
	name := p.Name
	if p.Version != "" {
		name += " " + p.Version
	}
	body := fmt.Sprintf("%s requires Windows 7 or earlier.\n\nThis software is not compatible with %s.", name, osLabel)
	if p.SupportContact != "" {
		body += "\n\n" + p.SupportContact
	}
	if p.ErrorCode != "" {
		body += "\n\nError Code: " + p.ErrorCode
	}
	return Message{
		Title: name + " - Compatibility Error",
		Body:  body,
	}
}

// Show displays m and blocks until the user dismisses it.
func Show(m Message) error {
	return show(m)
}
