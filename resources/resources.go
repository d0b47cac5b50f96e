// Package resources embeds the default game images.
package resources

import "embed"

// FS holds splash-screen.png, end-screen.png, divider.png, ball.png and
// slider.png at its root.
//
//go:embed *.png
var FS embed.FS
