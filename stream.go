package tv

import "iter"

// RenderSeq renders rows from an iterator. Column-wide type inference needs
// every cell before deciding, so the sequence is collected into a slice
// first; a host sampling a huge input should feed this a row subset rather
// than expect incremental output.
func RenderSeq(seq iter.Seq[[]string], header []string, cfg Config) (*RenderedTable, error) {
	var rows [][]string
	for row := range seq {
		rows = append(rows, row)
	}
	return Render(rows, header, cfg)
}

// RenderChan renders rows from a channel. It is a thin wrapper around
// [RenderSeq].
func RenderChan(ch <-chan []string, header []string, cfg Config) (*RenderedTable, error) {
	return RenderSeq(chanToSeq(ch), header, cfg)
}

func chanToSeq(ch <-chan []string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for row := range ch {
			if !yield(row) {
				return
			}
		}
	}
}
