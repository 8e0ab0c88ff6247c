package chunk

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Separator is the block boundary the chunker splits on and the assembler
// restores: one blank line between top-level Markdown blocks.
const Separator = "\n\n"

// ErrInvalidChunkSize guards the size threshold; the splitting algorithm
// itself is total over any input string.
var ErrInvalidChunkSize = errors.New("max chunk size must be positive")

// Chunk is a bounded contiguous slice of a Markdown document, the unit of
// translation. Chunks are never mutated after creation.
type Chunk struct {
	Index int
	Text  string
}

// Size reports the chunk length in characters, the unit the threshold is
// expressed in.
func (c Chunk) Size() int {
	return utf8.RuneCountInString(c.Text)
}

// Blocks splits a Markdown document into its top-level blank-line-separated
// blocks. Whitespace-only blocks are dropped; line endings are normalized.
func Blocks(doc string) []string {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	blocks := []string{}
	for _, block := range strings.Split(doc, Separator) {
		block = strings.TrimSpace(block)
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// Split covers doc with an ordered sequence of chunks of at most maxSize
// characters each, cutting only at block boundaries. Blocks are accumulated
// greedily; when the next block would push the current chunk past the
// threshold the chunk is closed and the block starts a new one. A single
// block larger than maxSize becomes its own oversized chunk: splitting inside
// a heading, list item, or code fence would corrupt the Markdown.
//
// Joining the chunk texts with Separator reconstructs the document modulo the
// boundary whitespace. An empty document yields zero chunks.
func Split(doc string, maxSize int) ([]Chunk, error) {
	if maxSize <= 0 {
		return nil, ErrInvalidChunkSize
	}

	chunks := []Chunk{}
	var cur strings.Builder
	curSize := 0

	flush := func() {
		if curSize == 0 {
			return
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Text: cur.String()})
		cur.Reset()
		curSize = 0
	}

	for _, block := range Blocks(doc) {
		blockSize := utf8.RuneCountInString(block)
		if curSize > 0 && curSize+len(Separator)+blockSize > maxSize {
			flush()
		}
		if curSize > 0 {
			cur.WriteString(Separator)
			curSize += len(Separator)
		}
		cur.WriteString(block)
		curSize += blockSize
	}
	flush()

	return chunks, nil
}
