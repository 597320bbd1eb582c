package output

import (
	"io"

	"github.com/ccmarket/plugval/internal/types"
)

// Formatter renders one merged validation run to a writer.
type Formatter interface {
	Format(w io.Writer, run types.Run) error
}
