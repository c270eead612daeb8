package ui

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar wraps the progressbar library with our custom styling
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a bar for one sheet. A nil writer disables output.
func NewProgressBar(label string, total int, output io.Writer) *ProgressBar {
	if output == nil {
		output = io.Discard
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", label)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)

	return &ProgressBar{bar: bar}
}

// Increment increments the progress bar by 1
func (pb *ProgressBar) Increment() {
	_ = pb.bar.Add(1)
}

// Finish completes the progress bar
func (pb *ProgressBar) Finish() {
	_ = pb.bar.Finish()
}
