package console

import "fmt"

// Mode selects the column layout of the identification table.
type Mode int

const (
	Normal Mode = iota
	Verbose
)

var (
	normalHeaders  = []string{"Matched text", "Identified as", "Description"}
	verboseHeaders = []string{"Matched text", "Identified as", "Description", "Rarity", "Tags"}
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Verbose:
		return "verbose"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Headers returns the column labels for m. Unknown modes fall back to Normal.
func (m Mode) Headers() []string {
	if m == Verbose {
		return append([]string(nil), verboseHeaders...)
	}
	return append([]string(nil), normalHeaders...)
}
