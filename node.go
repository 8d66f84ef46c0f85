package eqscript

// Node is an element of the equation syntax tree. Both front-ends produce the
// same node types and the generator consumes them. The set of node types is
// closed, every node owns its children.
type Node interface {
	node()
}

type FractionStyle int

const (
	FractionPlain FractionStyle = iota
	FractionSmall
	FractionBinomial
)

func (s FractionStyle) String() string {
	switch s {
	case FractionSmall:
		return "small"
	case FractionBinomial:
		return "binom"
	default:
		return "plain"
	}
}

// Sequence is a concatenation of nodes
type Sequence struct {
	Children []Node
}

type Number struct {
	Value string
}

// Symbol is a variable, operator or named symbol (e.g. "x", "+", "alpha")
type Symbol struct {
	Name string
}

// Text is literal text, rendered in quotes
type Text struct {
	Value string
}

// Group is an explicit {...} group
type Group struct {
	Child Node
}

type Fraction struct {
	Num   Node
	Den   Node
	Style FractionStyle
}

// Root is a square root, or n-th root when Index is not nil
type Root struct {
	Radicand Node
	Index    Node
}

type Superscript struct {
	Base Node
	Sup  Node
}

type Subscript struct {
	Base Node
	Sub  Node
}

type SubSuper struct {
	Base Node
	Sub  Node
	Sup  Node
}

// BigOperator is a large operator such as sum or integral with optional limits
type BigOperator struct {
	Name  string
	Lower Node
	Upper Node
}

// Function is a named function (Arg is nil) or an accent applied to Arg
type Function struct {
	Name string
	Arg  Node
}

// Delimiter is content wrapped in stretchy delimiters (\left ... \right)
type Delimiter struct {
	Left    string
	Right   string
	Content Node
}

func (*Sequence) node()    {}
func (*Number) node()      {}
func (*Symbol) node()      {}
func (*Text) node()        {}
func (*Group) node()       {}
func (*Fraction) node()    {}
func (*Root) node()        {}
func (*Superscript) node() {}
func (*Subscript) node()   {}
func (*SubSuper) node()    {}
func (*BigOperator) node() {}
func (*Function) node()    {}
func (*Delimiter) node()   {}
