package toydata

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"

	"github.com/axelroques/ditto/lib/pattern"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrParams is returned for invalid generator parameters
	ErrParams = errors.New("toydata: invalid parameters")
	// ErrExhausted is returned when the patterns or the support cannot be reached
	ErrExhausted = errors.New("toydata: gave up drawing")
)

// maxAttempts bounds the random draws per requested pattern or planted occurrence
const maxAttempts = 1000

var validate = validator.New()

// Params configures the generator
type Params struct {
	Steps       int     `validate:"gte=2"`                          // time steps per sequence
	Sequences   int     `validate:"gte=1,lte=256"`                  // number of sequences
	Patterns    int     `validate:"gte=0"`                          // number of planted patterns
	MinSize     int     `validate:"gte=1"`                          // smallest pattern, in tokens
	MaxSize     int     `validate:"gtefield=MinSize,ltfield=Steps"` // largest pattern, in tokens
	Support     float64 `validate:"gt=0,lte=1"`                     // fraction of all cells each pattern covers
	MaxModality int     `validate:"gte=1"`                          // most sequences one pattern may touch
	MinAlphabet int     `validate:"gte=1,lte=26"`                   // smallest alphabet of a sequence
	MaxAlphabet int     `validate:"gtefield=MinAlphabet,lte=26"`    // largest alphabet of a sequence
}

// DefaultParams returns a small three-sequence setup
func DefaultParams() Params {
	return Params{
		Steps:       100,
		Sequences:   3,
		Patterns:    2,
		MinSize:     2,
		MaxSize:     4,
		Support:     0.05,
		MaxModality: 2,
		MinAlphabet: 3,
		MaxAlphabet: 5,
	}
}

// Result is a generated database together with its planted patterns
type Result struct {
	Rows      []string   // one string per sequence
	Patterns  []string   // planted pattern names, by planted id
	Positions [][]string // planted id of every cell, "" where nothing was planted
}

// Generate draws a database and plants patterns in it
func Generate(p Params, seed uint64) (*Result, error) {
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParams, err)
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	cells := randomCells(rng, p)
	planted, err := drawPatterns(rng, p, singletons(cells))
	if err != nil {
		return nil, err
	}

	positions := make([][]string, p.Sequences)
	for seq := range positions {
		positions[seq] = make([]string, p.Steps)
	}
	for id, tokens := range planted {
		if err := plant(rng, p, cells, positions, id, tokens); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Rows:      make([]string, p.Sequences),
		Patterns:  make([]string, len(planted)),
		Positions: positions,
	}
	for seq, row := range cells {
		res.Rows[seq] = string(row)
	}
	for id, tokens := range planted {
		res.Patterns[id] = pattern.JoinTokens(tokens)
	}
	return res, nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func randomCells(rng *rand.Rand, p Params) [][]byte {
	cells := make([][]byte, p.Sequences)
	for seq := range cells {
		alphabet := p.MinAlphabet + rng.IntN(p.MaxAlphabet-p.MinAlphabet+1)
		cells[seq] = make([]byte, p.Steps)
		for step := range cells[seq] {
			cells[seq][step] = byte('a' + rng.IntN(alphabet))
		}
	}
	return cells
}

// singletons returns the distinct tokens of cells, by sequence then symbol
func singletons(cells [][]byte) []pattern.Token {
	var tokens []pattern.Token
	for seq, row := range cells {
		seen := make(map[byte]bool)
		for _, sym := range row {
			if !seen[sym] {
				seen[sym] = true
				tokens = append(tokens, pattern.Token{Symbol: sym, Seq: seq})
			}
		}
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Seq != tokens[j].Seq {
			return tokens[i].Seq < tokens[j].Seq
		}
		return tokens[i].Symbol < tokens[j].Symbol
	})
	return tokens
}

// drawPatterns draws distinct patterns of singletons touching at most MaxModality sequences
func drawPatterns(rng *rand.Rand, p Params, st []pattern.Token) ([][]pattern.Token, error) {
	var out [][]pattern.Token
	seen := make(map[string]bool)
	for attempt := 0; len(out) < p.Patterns; attempt++ {
		if attempt >= maxAttempts*p.Patterns {
			return nil, fmt.Errorf("%w: found %d of %d distinct patterns", ErrExhausted, len(out), p.Patterns)
		}
		size := p.MinSize + rng.IntN(p.MaxSize-p.MinSize+1)
		tokens := make([]pattern.Token, size)
		seqs := make(map[int]bool)
		for i := range tokens {
			tokens[i] = st[rng.IntN(len(st))]
			seqs[tokens[i].Seq] = true
		}
		name := pattern.JoinTokens(tokens)
		if seen[name] || len(seqs) > p.MaxModality {
			continue
		}
		seen[name] = true
		out = append(out, tokens)
	}
	return out, nil
}

// plant writes occurrences of tokens into cells until the pattern reaches the support
func plant(rng *rand.Rand, p Params, cells [][]byte, positions [][]string, id int, tokens []pattern.Token) error {
	label := strconv.Itoa(id)
	total := float64(p.Steps * p.Sequences)
	support := 0.0
	for attempt := 0; support < p.Support; attempt++ {
		if attempt >= maxAttempts {
			return fmt.Errorf("%w: pattern %s reached support %.3f of %.3f", ErrExhausted, pattern.JoinTokens(tokens), support, p.Support)
		}
		pos := rng.IntN(p.Steps - len(tokens) + 1)
		if !free(positions, pos, tokens) {
			continue
		}
		for i, tok := range tokens {
			positions[tok.Seq][pos+i] = label
			cells[tok.Seq][pos+i] = tok.Symbol
		}
		support += float64(len(tokens)) / total
	}
	return nil
}

func free(positions [][]string, pos int, tokens []pattern.Token) bool {
	for i, tok := range tokens {
		if positions[tok.Seq][pos+i] != "" {
			return false
		}
	}
	return true
}
