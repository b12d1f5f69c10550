package deck

import (
	"fmt"
	"os"
)

// Download metadata for a serialized deck.
const (
	Filename = "presentation.pptx"
	MIMEType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// Download is a serialized deck ready to hand to a user.
type Download struct {
	Filename string
	MIMEType string
	Data     []byte
	Slides   int
}

// NewDownload wraps serialized deck bytes with the standard file name and
// content type.
func NewDownload(data []byte, slides int) *Download {
	return &Download{
		Filename: Filename,
		MIMEType: MIMEType,
		Data:     data,
		Slides:   slides,
	}
}

// ContentDisposition returns the header value that makes browsers save the
// deck as a file.
func (d *Download) ContentDisposition() string {
	return fmt.Sprintf("attachment; filename=%q", d.Filename)
}

// WriteFile saves the deck to path.
func (d *Download) WriteFile(path string) error {
	if err := os.WriteFile(path, d.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
