package lines

// Queue is a cursor over an immutable slice of lines. A single Queue is shared
// by every recursive builder working on one document, so it must never be
// copied or used from more than one goroutine.
type Queue struct {
	lines []Line
	pos   int
}

// NewQueue wraps ls. The slice is not copied and must not be modified
// afterwards.
func NewQueue(ls []Line) *Queue { return &Queue{lines: ls} }

// Len reports the number of unconsumed lines.
func (q *Queue) Len() int { return len(q.lines) - q.pos }

// Peek returns the next line without consuming it.
func (q *Queue) Peek() (Line, bool) {
	if q.pos >= len(q.lines) {
		return Line{}, false
	}
	return q.lines[q.pos], true
}

// Next consumes and returns the next line.
func (q *Queue) Next() (Line, bool) {
	l, ok := q.Peek()
	if ok {
		q.pos++
	}
	return l, ok
}

// Unread steps the cursor back by one line.
func (q *Queue) Unread() {
	if q.pos > 0 {
		q.pos--
	}
}

// Block consumes the contiguous run of lines indented deeper than indent.
func (q *Queue) Block(indent int) []Line {
	start := q.pos
	for q.pos < len(q.lines) && q.lines[q.pos].Indent() > indent {
		q.pos++
	}
	return q.lines[start:q.pos:q.pos]
}

// Entries splits a block into entries. Each entry starts with a line at the
// block's minimum indentation (the first line always starts one) and carries
// the deeper lines that follow it.
func Entries(block []Line) [][]Line {
	if len(block) == 0 {
		return nil
	}
	base := block[0].Indent()
	for _, l := range block[1:] {
		if n := l.Indent(); n < base {
			base = n
		}
	}
	var out [][]Line
	for i, l := range block {
		if i == 0 || l.Indent() <= base {
			out = append(out, []Line{l})
			continue
		}
		last := len(out) - 1
		out[last] = append(out[last], l)
	}
	return out
}
