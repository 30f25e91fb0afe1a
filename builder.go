package vecexpr

import (
	"strings"
	"sync/atomic"

	"github.com/hupe1980/vecexpr/internal/conv"
)

// Handle addresses an operand inside a Builder arena.
//
// A Handle packs the slot index (low 32 bits), the Builder generation at issue
// time (next 16 bits) and the id of the issuing Builder (high 16 bits). A
// Builder rejects handles issued by another Builder or before its last Reset.
// Ids and generations wrap after 65536 builders or resets.
//
// The zero Handle is reserved as null and never refers to an operand.
type Handle uint64

// NullHandle is the invalid handle.
const NullHandle Handle = 0

const (
	handleIndexBits = 32
	handleGenBits   = 16
	handleIndexMask = 1<<handleIndexBits - 1
	handleGenMask   = 1<<handleGenBits - 1
)

var lastBuilderID atomic.Uint32

// nextBuilderID returns a non-zero builder id.
func nextBuilderID() uint16 {
	for {
		if id := uint16(lastBuilderID.Add(1)); id != 0 {
			return id
		}
	}
}

func makeHandle(index uint32, gen uint64, owner uint16) Handle {
	return Handle(uint64(owner)<<(handleIndexBits+handleGenBits) |
		(gen&handleGenMask)<<handleIndexBits |
		uint64(index))
}

func (h Handle) index() uint32      { return uint32(h & handleIndexMask) }
func (h Handle) generation() uint16 { return uint16(h >> handleIndexBits) }
func (h Handle) owner() uint16      { return uint16(h >> (handleIndexBits + handleGenBits)) }

type slot[T Number, D Dim] struct {
	leaf  *Vector[T, D]
	op    Op
	left  int
	right int
}

// Builder assembles expression trees in an arena of operands addressed by
// Handle instead of by reference.
//
// Operands are always created before the nodes that use them, so every tree
// built this way is acyclic. After Reset the arena storage is reused and
// rebuilding a tree of the same shape allocates nothing.
//
// Example:
//
//	bld := vecexpr.NewBuilder[float64, vecexpr.D4](0)
//	ha, _ := bld.Leaf(a)
//	hb, _ := bld.Leaf(b)
//	root, _ := bld.Add(ha, hb)
//	p, _ := bld.Program(root)
//	vecexpr.Accumulate(sum, p)
//
// A Builder is not safe for concurrent use.
type Builder[T Number, D Dim] struct {
	slots    []slot[T, D]
	capacity int
	gen      uint64
	id       uint16
}

// NewBuilder creates a Builder holding at most capacity operands.
// A capacity of 0 or less lets the arena grow without bound.
func NewBuilder[T Number, D Dim](capacity int) *Builder[T, D] {
	mustLen[D]()

	size := 1
	if capacity > 0 {
		size += capacity
	} else {
		capacity = 0
	}

	b := &Builder[T, D]{
		slots:    make([]slot[T, D], 1, size),
		capacity: capacity,
		id:       nextBuilderID(),
	}
	return b
}

// Leaf registers v as an operand.
func (b *Builder[T, D]) Leaf(v *Vector[T, D]) (Handle, error) {
	if v == nil {
		return NullHandle, ErrNilVector
	}
	return b.alloc(slot[T, D]{leaf: v})
}

// Add registers the element-wise sum of the operands left and right.
func (b *Builder[T, D]) Add(left, right Handle) (Handle, error) {
	l, err := b.resolve(left)
	if err != nil {
		return NullHandle, err
	}
	r, err := b.resolve(right)
	if err != nil {
		return NullHandle, err
	}
	return b.alloc(slot[T, D]{op: OpAdd, left: l, right: r})
}

// Program returns an Evaluable rooted at root.
// The Program stays valid until the next call to Reset.
func (b *Builder[T, D]) Program(root Handle) (*Program[T, D], error) {
	idx, err := b.resolve(root)
	if err != nil {
		return nil, err
	}
	return &Program[T, D]{b: b, root: root, rootIdx: idx, gen: b.gen}, nil
}

// Len returns the number of operands in the arena.
func (b *Builder[T, D]) Len() int {
	return len(b.slots) - 1
}

// Cap returns the configured capacity, or 0 when unbounded.
func (b *Builder[T, D]) Cap() int {
	return b.capacity
}

// Reset drops all operands and invalidates every Handle and Program issued
// so far.
// The arena storage is kept for reuse.
func (b *Builder[T, D]) Reset() {
	clear(b.slots[1:])
	b.slots = b.slots[:1]
	b.gen++
}

func (b *Builder[T, D]) alloc(s slot[T, D]) (Handle, error) {
	if b.capacity > 0 && b.Len() >= b.capacity {
		return NullHandle, ErrArenaFull
	}

	idx, err := conv.IntToUint32(len(b.slots))
	if err != nil {
		return NullHandle, &ErrArenaOverflow{cause: err}
	}

	b.slots = append(b.slots, s)
	return makeHandle(idx, b.gen, b.id), nil
}

// resolve validates h and returns its slot index.
func (b *Builder[T, D]) resolve(h Handle) (int, error) {
	switch {
	case h == NullHandle:
		return 0, &ErrInvalidHandle{Handle: h, Reason: "null"}
	case h.owner() != b.id:
		return 0, &ErrInvalidHandle{Handle: h, Reason: "issued by another builder"}
	case h.generation() != uint16(b.gen&handleGenMask):
		return 0, &ErrInvalidHandle{Handle: h, Reason: "issued before reset"}
	}

	idx, err := conv.Uint64ToInt(uint64(h.index()))
	if err != nil || idx == 0 || idx >= len(b.slots) {
		return 0, &ErrInvalidHandle{Handle: h, Reason: "out of range"}
	}
	return idx, nil
}

func (b *Builder[T, D]) eval(h int, i int) T {
	s := &b.slots[h]
	if s.leaf != nil {
		return s.leaf.elems[i]
	}
	l := b.eval(s.left, i)
	r := b.eval(s.right, i)
	return Apply(s.op, l, r)
}

func (b *Builder[T, D]) depth(h int) int {
	s := &b.slots[h]
	if s.leaf != nil {
		return 0
	}
	return 1 + max(b.depth(s.left), b.depth(s.right))
}

func (b *Builder[T, D]) render(sb *strings.Builder, h int) {
	s := &b.slots[h]
	if s.leaf != nil {
		sb.WriteString(s.leaf.String())
		return
	}
	sb.WriteByte('(')
	b.render(sb, s.left)
	sb.WriteByte(' ')
	sb.WriteString(s.op.Symbol())
	sb.WriteByte(' ')
	b.render(sb, s.right)
	sb.WriteByte(')')
}

// Program is an expression tree stored in a Builder arena.
type Program[T Number, D Dim] struct {
	b       *Builder[T, D]
	root    Handle
	rootIdx int
	gen     uint64
}

// Eval returns the value of the tree at index i.
// It panics with ErrStaleProgram if the Builder was reset after the Program
// was created.
func (p *Program[T, D]) Eval(i int) T {
	if p.gen != p.b.gen {
		panic(ErrStaleProgram)
	}
	return p.b.eval(p.rootIdx, i)
}

// Dim implements Evaluable.
func (p *Program[T, D]) Dim() D {
	var d D
	return d
}

// Root returns the root handle.
func (p *Program[T, D]) Root() Handle {
	return p.root
}

// Valid reports whether the Program can still be evaluated.
func (p *Program[T, D]) Valid() bool {
	return p.gen == p.b.gen
}

// Depth returns the height of the tree.
func (p *Program[T, D]) Depth() int {
	if !p.Valid() {
		return 0
	}
	return p.b.depth(p.rootIdx)
}

// String renders the tree in fully parenthesized infix form.
func (p *Program[T, D]) String() string {
	if !p.Valid() {
		return "<stale>"
	}
	var sb strings.Builder
	p.b.render(&sb, p.rootIdx)
	return sb.String()
}
