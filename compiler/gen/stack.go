package gen

// frame is one level of count-driven repetition.
type frame struct {
	index int // 1-based
	count int
}

// stack tracks the context read by ${index}, ${count}, ${entity.name} and
// ${field.name}. Every push is paired with a deferred pop by its caller.
type stack struct {
	frames   []frame
	entities []string
	fields   []string
}

func (s *stack) pushIndex(index, count int) {
	s.frames = append(s.frames, frame{index: index, count: count})
}

func (s *stack) popIndex() { s.frames = s.frames[:len(s.frames)-1] }

func (s *stack) pushEntity(name string) { s.entities = append(s.entities, name) }

func (s *stack) popEntity() { s.entities = s.entities[:len(s.entities)-1] }

func (s *stack) pushField(name string) { s.fields = append(s.fields, name) }

func (s *stack) popField() { s.fields = s.fields[:len(s.fields)-1] }

// index returns the index of the depth-th frame from the top; depth 1 is
// the innermost.
func (s *stack) index(depth int) (int, bool) {
	if depth < 1 || depth > len(s.frames) {
		return 0, false
	}
	return s.frames[len(s.frames)-depth].index, true
}

// count returns the innermost count, 1 outside any repetition.
func (s *stack) count() int {
	if len(s.frames) == 0 {
		return 1
	}
	return s.frames[len(s.frames)-1].count
}

func (s *stack) entityName() string { return top(s.entities) }

func (s *stack) fieldName() string { return top(s.fields) }

// depth returns the number of index frames.
func (s *stack) depth() int { return len(s.frames) }

func top(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return names[len(names)-1]
}
