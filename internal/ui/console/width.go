package console

import "golang.org/x/term"

// minColumnWidth keeps a squeezed column readable.
const minColumnWidth = 4

// TerminalWidth reports the width of the terminal behind fd, or 0 when fd is
// not a terminal.
func TerminalWidth(fd int) int {
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0
	}
	return w
}

// negotiateWidths fits columns with the given natural widths into total.
// Columns narrower than their fair share keep their width; the rest split
// what is left evenly.
func negotiateWidths(natural []int, total int) []int {
	out := append([]int(nil), natural...)
	sum := 0
	for _, w := range natural {
		sum += w
	}
	if total <= 0 || sum <= total {
		return out
	}

	open := make([]int, len(natural))
	for i := range natural {
		open[i] = i
	}
	remaining := total
	for len(open) > 0 {
		share := remaining / len(open)
		var squeezed []int
		for _, i := range open {
			if natural[i] <= share {
				remaining -= natural[i]
				continue
			}
			squeezed = append(squeezed, i)
		}
		if len(squeezed) == len(open) {
			for k, i := range squeezed {
				w := remaining / len(squeezed)
				if k < remaining%len(squeezed) {
					w++
				}
				out[i] = max(w, minColumnWidth)
			}
			break
		}
		open = squeezed
	}
	return out
}
