package game

import "github.com/atotto/clipboard"

// setClipboardText replaces the system clipboard contents with text.
func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}
