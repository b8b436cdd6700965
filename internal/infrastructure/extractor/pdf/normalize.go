package pdf

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// charReplacer maps private-use bullets, typographic dashes and quotes, and
// invisible separators onto plain ASCII-adjacent forms before any other
// cleanup runs.
var charReplacer = strings.NewReplacer(
	"\uf0b7", "\u2022", // private-use bullet
	"\uf0a7", "\u2022", // private-use bullet variant
	"\u2022", "\u2022", // bullet
	"\u2023", "\u2022", // triangular bullet
	"\u25cf", "\u2022", // black circle
	"\u25e6", "\u2022", // white bullet
	"\u2043", "-", // hyphen bullet
	"\uf02d", "-", // private-use dash
	"\u2013", "-", // en dash
	"\u2014", "-", // em dash
	"\u2018", "'", // left single quote
	"\u2019", "'", // right single quote
	"\u201c", `"`, // left double quote
	"\u201d", `"`, // right double quote
	"\u00a0", " ", // non-breaking space
	"\u200b", "", // zero-width space
	"\ufeff", "", // byte order mark
	"\t", " ",
)

// mojibakeReplacer undoes the common UTF-8-read-as-cp1252 damage: each entry
// is the byte sequence a real character turns into after the double decode,
// mapped back to that character. Runs before the glyph replacement so repaired
// punctuation still gets flattened to ASCII, and before control stripping
// because some sequences end in a control rune (U+009D).
var mojibakeReplacer = strings.NewReplacer(
	"\u00e2\u20ac\u2122", "\u2019", // right single quote
	"\u00e2\u20ac\u02dc", "\u2018", // left single quote
	"\u00e2\u20ac\u0153", "\u201c", // left double quote
	"\u00e2\u20ac\u009d", "\u201d", // right double quote
	"\u00e2\u20ac\u201c", "\u2013", // en dash
	"\u00e2\u20ac\u201d", "\u2014", // em dash
	"\u00e2\u20ac\u00a2", "\u2022", // bullet
	"\u00e2\u20ac\u00a6", "...", // ellipsis
	"\u00e2\u20ac", "\u201d", // bare right-quote remnant, after the longer forms
	"\u00c3\u00a9", "\u00e9", // e acute
	"\u00c3\u00a8", "\u00e8", // e grave
	"\u00c3\u00aa", "\u00ea", // e circumflex
	"\u00c3\u00a1", "\u00e1", // a acute
	"\u00c3\u00a4", "\u00e4", // a umlaut
	"\u00c3\u00b3", "\u00f3", // o acute
	"\u00c3\u00b6", "\u00f6", // o umlaut
	"\u00c3\u00ba", "\u00fa", // u acute
	"\u00c3\u00bc", "\u00fc", // u umlaut
	"\u00c3\u00b1", "\u00f1", // n tilde
	"\u00c3\u00a7", "\u00e7", // c cedilla
	"\u00c2\u00a0", " ", // non-breaking space
)

var (
	multiSpaceRe = regexp.MustCompile(` +`)
	blankRunsRe  = regexp.MustCompile(`\n{3,}`)
)

// Normalize repairs the damage PDF text extraction typically inflicts:
// decomposed Unicode, private-use bullets, letters split by stray spaces,
// and hard-wrapped lines that break sentences apart.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFC.String(text)
	text = mojibakeReplacer.Replace(text)
	text = charReplacer.Replace(text)
	text = stripControl(text)
	text = joinSpacedLetters(text)
	text = multiSpaceRe.ReplaceAllString(text, " ")
	text = rebuildLines(text)
	text = blankRunsRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// stripControl drops every control/format rune except line breaks.
func stripControl(text string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return r
		}
		if unicode.In(r, unicode.C) {
			return -1
		}
		return r
	}, text)
}

// joinSpacedLetters removes the single space in sequences like "J o h n":
// a space is dropped when the rune before it is a letter and the three
// runes after it are letter, space, letter. Positions are judged against
// the input, not the partially rebuilt output, so "a b c d" becomes
// "abc d" rather than collapsing entirely.
func joinSpacedLetters(text string) string {
	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))

	isASCIILetter := func(i int) bool {
		if i < 0 || i >= len(runes) {
			return false
		}
		r := runes[i]
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	isSpace := func(i int) bool {
		return i >= 0 && i < len(runes) && unicode.IsSpace(runes[i])
	}

	for i := 0; i < len(runes); i++ {
		if unicode.IsSpace(runes[i]) &&
			isASCIILetter(i-1) &&
			isASCIILetter(i+1) && isSpace(i+2) && isASCIILetter(i+3) {
			continue
		}
		sb.WriteRune(runes[i])
	}
	return sb.String()
}

// rebuildLines re-joins hard-wrapped lines: a line starting with a lowercase
// letter continues the previous line unless that line ended a sentence, and
// a trailing hyphen glues a split word back together. Blank lines collapse
// to single paragraph separators.
func rebuildLines(text string) string {
	lines := strings.Split(text, "\n")
	processed := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(processed) > 0 && processed[len(processed)-1] != "" {
				processed = append(processed, "")
			}
			continue
		}

		if len(processed) > 0 && processed[len(processed)-1] != "" {
			prev := processed[len(processed)-1]
			if !endsSentence(prev) && startsLower(line) {
				processed[len(processed)-1] = prev + " " + line
				continue
			}
			if strings.HasSuffix(prev, "-") {
				processed[len(processed)-1] = prev[:len(prev)-1] + line
				continue
			}
		}

		processed = append(processed, line)
	}

	return strings.Join(processed, "\n")
}

func endsSentence(line string) bool {
	switch line[len(line)-1] {
	case '.', '!', '?', ':', ';':
		return true
	}
	return false
}

func startsLower(line string) bool {
	for _, r := range line {
		return unicode.IsLower(r)
	}
	return false
}
