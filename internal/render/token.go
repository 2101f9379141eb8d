package render

import "strings"

// TokenKind distinguishes literal text from inline symbol references.
type TokenKind uint8

const (
	TextToken TokenKind = iota
	SymbolToken
)

// Token is one unit of rich card text: either a run of literal characters or
// a symbol identifier taken from {...} markup (for example "T" from "{T}").
// Tokens are built per render call and never persisted.
type Token struct {
	Kind TokenKind
	Text string
}

// Lex splits raw card text into text and symbol tokens. Every {...} span
// becomes a symbol token with the content between the braces, case preserved;
// everything else becomes maximal text runs. Braces do not nest. An unmatched
// "{" is treated as literal text from that point onward; Lex never fails.
func Lex(s string) []Token {
	var tokens []Token
	for len(s) > 0 {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			tokens = append(tokens, Token{Kind: TextToken, Text: s})
			break
		}
		end := strings.IndexByte(s[open:], '}')
		if end < 0 {
			// Malformed markup: the rest is literal text.
			tokens = append(tokens, Token{Kind: TextToken, Text: s})
			break
		}
		if open > 0 {
			tokens = append(tokens, Token{Kind: TextToken, Text: s[:open]})
		}
		tokens = append(tokens, Token{Kind: SymbolToken, Text: s[open+1 : open+end]})
		s = s[open+end+1:]
	}
	return tokens
}
