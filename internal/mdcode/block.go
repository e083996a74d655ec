package mdcode

// Block is a fenced code block found by [Walk]. StartLine and EndLine are the
// 1-based lines of the opening and closing fences; zero means unknown.
type Block struct {
	Index     int
	Lang      string
	Meta      Meta
	Code      []byte
	StartLine int
	EndLine   int
}

// Blocks is a list of blocks in document order.
type Blocks []*Block

// Find returns the block with the given index or nil.
func (b Blocks) Find(index int) *Block {
	for _, block := range b {
		if block.Index == index {
			return block
		}
	}

	return nil
}
