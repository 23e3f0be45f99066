package htmldiff

import "strings"

// pathTracker is the walker's current ancestor chain, one tag[index] segment
// per matched element level. Segments are pushed before descending into a
// matched pair and popped on the way back out.
type pathTracker []string

func (p *pathTracker) push(segment string) {
	*p = append(*p, segment)
}

func (p *pathTracker) pop() {
	*p = (*p)[:len(*p)-1]
}

func (p pathTracker) String() string {
	return strings.Join(p, "/")
}
