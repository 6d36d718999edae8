package pattern

import (
	"strconv"
	"strings"
)

// Token is a symbol tagged with its source sequence index
type Token struct {
	Symbol byte
	Seq    int
}

// String returns the display form of the token, e.g. "a0"
func (t Token) String() string {
	return string(t.Symbol) + strconv.Itoa(t.Seq)
}

// Code returns the fixed-width-2 code of the token as used by the occurrence index.
// The second byte holds the sequence index, which therefore must stay below 256.
func (t Token) Code() string {
	return string([]byte{t.Symbol, byte(t.Seq)})
}

// JoinTokens concatenates the display forms of the given tokens
func JoinTokens(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteByte(t.Symbol)
		sb.WriteString(strconv.Itoa(t.Seq))
	}
	return sb.String()
}

// ParseName parses a pattern name like "a0b0c1" back into tokens.
// Every token is one symbol byte followed by one or more decimal digits.
func ParseName(name string) ([]Token, bool) {
	var tokens []Token
	for i := 0; i < len(name); {
		symbol := name[i]
		i++
		start := i
		for i < len(name) && name[i] >= '0' && name[i] <= '9' {
			i++
		}
		if start == i {
			return nil, false
		}
		seq, err := strconv.Atoi(name[start:i])
		if err != nil {
			return nil, false
		}
		tokens = append(tokens, Token{Symbol: symbol, Seq: seq})
	}
	return tokens, len(tokens) > 0
}
