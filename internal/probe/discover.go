package probe

import (
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// imagePattern matches every format Probe can read. Matching is on the
// lowercase and uppercase spellings Tiled projects tend to use.
const imagePattern = "**/*.{png,PNG,jpg,JPG,jpeg,JPEG,gif,GIF,bmp,BMP,tif,TIF,tiff,TIFF,webp,WEBP}"

// DiscoverImages returns every image file under dir, as slash-separated paths
// relative to dir, sorted for deterministic reporting.
func DiscoverImages(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), imagePattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}
