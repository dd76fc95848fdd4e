package unstruct

// Connectivity is the contract of the external element sink a conversion
// emits to, typically the connectivity table of an unstructured-mesh
// container.
//
// AddElement is called once per element with the ordered global node
// numbers of its corners; every call hands over a freshly allocated
// slice the sink may retain. Sync is called exactly once per conversion
// run, after all elements have been added, and lets the sink finalize
// the batch. A sink instance is driven by a single conversion at a
// time; it does not need to be safe for concurrent use.
type Connectivity interface {
	AddElement(nodes []int)
	Sync()
}

// ElementBatch is a minimal in-memory Connectivity, useful in tests and
// small tools that inspect the emitted topology directly.
type ElementBatch struct {
	Elements [][]int
	Syncs    int // number of Sync calls received
}

// AddElement appends a copy of the element's node numbers.
func (b *ElementBatch) AddElement(nodes []int) {
	element := make([]int, len(nodes))
	copy(element, nodes)
	b.Elements = append(b.Elements, element)
}

// Sync counts batch finalizations.
func (b *ElementBatch) Sync() {
	b.Syncs++
}
