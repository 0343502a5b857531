package dialog

import "golang.org/x/sys/windows"

func show(m Message) error {
	title, err := windows.UTF16PtrFromString(m.Title)
	if err != nil {
		return err
	}
	body, err := windows.UTF16PtrFromString(m.Body)
	if err != nil {
		return err
	}
	_, err = windows.MessageBox(0, body, title, windows.MB_OK|windows.MB_ICONERROR)
	return err
}
