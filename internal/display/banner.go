package display

import (
	"fmt"
	"io"

	"github.com/backmassage/mapembed/internal/term"
)

const banner = `                          _          _
 _ __ ___   __ _ _ __   ___ _ __ ___ | |__   ___  __| |
| '_ ` + "`" + ` _ \ / _` + "`" + ` | '_ \ / _ \ '_ ` + "`" + ` _ \| '_ \ / _ \/ _` + "`" + ` |
| | | | | | (_| | |_) |  __/ | | | | | |_) |  __/ (_| |
|_| |_| |_|\__,_| .__/ \___|_| |_| |_|_.__/ \___|\__,_|
                |_|
`

// PrintBanner writes the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Paint(term.Magenta, banner))
}
