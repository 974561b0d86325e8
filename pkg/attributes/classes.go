package attributes

import "strings"

// ClassList is an ordered set of case sensitive class tokens. Copies of a
// ClassList never observe each other's mutations.
type ClassList struct {
	tokens []string
	index  map[string]int
}

// NewClassList builds a list from tokens, dropping duplicates and empty tokens.
func NewClassList(tokens ...string) ClassList {
	var list ClassList
	list.Add(tokens...)
	return list
}

// ParseClassList splits a space delimited class attribute into tokens.
func ParseClassList(s string) ClassList {
	if s == "" {
		return ClassList{}
	}
	return NewClassList(strings.Split(s, " ")...)
}

// Add appends tokens that are not yet present.
func (c *ClassList) Add(tokens ...string) {
	tokensOut := c.tokens[:len(c.tokens):len(c.tokens)]
	index := c.index
	copied := false
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if _, ok := index[token]; ok {
			continue
		}
		if !copied {
			index = copyIndex(c.index)
			copied = true
		}
		index[token] = len(tokensOut)
		tokensOut = append(tokensOut, token)
	}
	if copied {
		c.tokens, c.index = tokensOut, index
	}
}

// Remove deletes tokens, keeping the order of the remaining ones.
func (c *ClassList) Remove(tokens ...string) {
	drop := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if _, ok := c.index[token]; ok {
			drop[token] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return
	}

	kept := make([]string, 0, len(c.tokens)-len(drop))
	index := make(map[string]int, len(c.tokens)-len(drop))
	for _, token := range c.tokens {
		if _, ok := drop[token]; ok {
			continue
		}
		index[token] = len(kept)
		kept = append(kept, token)
	}
	c.tokens, c.index = kept, index
}

func copyIndex(src map[string]int) map[string]int {
	out := make(map[string]int, len(src)+1)
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Has reports whether token is in the list.
func (c ClassList) Has(token string) bool {
	_, ok := c.index[token]
	return ok
}

// Len returns the number of tokens.
func (c ClassList) Len() int { return len(c.tokens) }

// Tokens returns a copy of the tokens in insertion order.
func (c ClassList) Tokens() []string {
	out := make([]string, len(c.tokens))
	copy(out, c.tokens)
	return out
}

// String joins the tokens with single spaces.
func (c ClassList) String() string {
	return strings.Join(c.tokens, " ")
}

// Clone returns an independent copy.
func (c ClassList) Clone() ClassList {
	return NewClassList(c.tokens...)
}

// classTokens flattens the arguments accepted by AddClass and RemoveClass.
func classTokens(args []any) []string {
	var out []string
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			out = append(out, v)
		case []string:
			out = append(out, v...)
		case ClassList:
			out = append(out, v.tokens...)
		case *ClassList:
			if v != nil {
				out = append(out, v.tokens...)
			}
		case []any:
			out = append(out, classTokens(v)...)
		}
	}
	return out
}
