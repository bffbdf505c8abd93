// Package report turns the accumulated session state into an ordered
// stream of typed document instructions. A renderer consumes the stream
// and owns pagination and visual styling; the synthesizer only decides
// content and order.
package report

// Instruction is one typed drawing step in the document stream.
type Instruction interface {
	isInstruction()
}

// Heading is a bold section title. FreshBlock hints to the renderer that
// what follows is a new table block, so it may break the page early
// rather than orphan the title.
type Heading struct {
	Text       string
	FreshBlock bool
}

// KeyValue is one "Label: value" line in the info block.
type KeyValue struct {
	Key   string
	Value string
}

// Note is an italic remark line, used for the empty-table placeholder.
type Note struct {
	Text string
}

// Table is a grid of rows under fixed headers.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (Heading) isInstruction()  {}
func (KeyValue) isInstruction() {}
func (Note) isInstruction()     {}
func (Table) isInstruction()    {}

// Renderer consumes an instruction stream and produces the paginated
// binary artifact.
type Renderer interface {
	Render(instructions []Instruction) ([]byte, error)
}
