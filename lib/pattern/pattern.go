package pattern

// --------------------------------------------------------------------------
// Statistics
// --------------------------------------------------------------------------

// Stats holds the per-pattern statistics written by a cover pass
type Stats struct {
	Usage int  // number of committed occurrences
	Gap   int  // total slack cells consumed across occurrences (raw, may need clamping)
	Fill  int  // (span-1) * usage, the maximum slack capacity
	Valid bool // false until the first cover pass sets the statistics
}

// --------------------------------------------------------------------------
// Pattern
// --------------------------------------------------------------------------

// Pattern is an ordered list of sequence-tagged tokens
type Pattern struct {
	// ID is the slot index of the pattern in the table that owns it.
	// It is -1 while the pattern is not part of a table.
	ID     int
	Name   string
	Tokens []Token
	Span   int
	Stats  Stats
}

// New creates a detached pattern from the given tokens.
// The token slice is copied.
func New(tokens ...Token) *Pattern {
	toks := make([]Token, len(tokens))
	copy(toks, tokens)
	return &Pattern{
		ID:     -1,
		Name:   JoinTokens(toks),
		Tokens: toks,
		Span:   span(toks),
	}
}

// Concat creates a detached pattern whose tokens are the tokens of left followed by the tokens of right
func Concat(left, right *Pattern) *Pattern {
	tokens := make([]Token, 0, len(left.Tokens)+len(right.Tokens))
	tokens = append(tokens, left.Tokens...)
	tokens = append(tokens, right.Tokens...)
	return New(tokens...)
}

// Insert creates a detached pattern with tok inserted before position at.
// at == Len() appends the token.
func (p *Pattern) Insert(at int, tok Token) *Pattern {
	tokens := make([]Token, 0, len(p.Tokens)+1)
	tokens = append(tokens, p.Tokens[:at]...)
	tokens = append(tokens, tok)
	tokens = append(tokens, p.Tokens[at:]...)
	return New(tokens...)
}

// Clone returns a detached copy of the pattern including its statistics
func (p *Pattern) Clone() *Pattern {
	c := New(p.Tokens...)
	c.Stats = p.Stats
	return c
}

// Len returns the number of tokens of the pattern
func (p *Pattern) Len() int {
	return len(p.Tokens)
}

// IsSingleton reports whether the pattern consists of exactly one token
func (p *Pattern) IsSingleton() bool {
	return len(p.Tokens) == 1
}

// Usage returns the usage of the most recent cover pass (0 if never covered)
func (p *Pattern) Usage() int {
	return p.Stats.Usage
}

// SetStats stores the statistics of a cover pass
func (p *Pattern) SetStats(usage, gap int) {
	p.Stats = Stats{
		Usage: usage,
		Gap:   gap,
		Fill:  (p.Span - 1) * usage,
		Valid: true,
	}
}

func (p *Pattern) String() string {
	return p.Name
}

// span computes the maximum number of tokens attributed to one sequence
func span(tokens []Token) int {
	counts := make(map[int]int, len(tokens))
	maxCount := 0
	for _, t := range tokens {
		counts[t.Seq]++
		if counts[t.Seq] > maxCount {
			maxCount = counts[t.Seq]
		}
	}
	return maxCount
}

// --------------------------------------------------------------------------
// Ordering
// --------------------------------------------------------------------------

// CoverOrderLess reports whether a is claimed before b by the cover engine:
// longer patterns first, ties broken lexicographically by name.
func CoverOrderLess(a, b *Pattern) bool {
	if len(a.Tokens) != len(b.Tokens) {
		return len(a.Tokens) > len(b.Tokens)
	}
	return a.Name < b.Name
}
