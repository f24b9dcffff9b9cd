package probe

// ImageInfo holds the header-level properties of a single image file.
type ImageInfo struct {
	Path   string
	Format string // Decoder name: "png", "jpeg", "gif", "bmp", "tiff", "webp".
	Width  int
	Height int
	Size   int64 // File size in bytes.
}

// Grid returns how many whole tileSize×tileSize tiles fit across and down.
// Partial tiles at the right and bottom edges are not counted.
func (i *ImageInfo) Grid(tileSize int) (columns, rows int) {
	if tileSize <= 0 {
		return 0, 0
	}
	return i.Width / tileSize, i.Height / tileSize
}
