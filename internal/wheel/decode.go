package wheel

// Placeholder stands in for the answer word while the selection is
// incomplete. It matches the display width of a real word.
const Placeholder = "------"

// indexOffset keys the two disks the way the printed wheel is aligned: with
// both rings on symbol 0 and the first spiral, the window shows the word at
// index 2.
const indexOffset = 2

// wordIndex computes the table index for a fully specified lookup. The
// reduction uses Euclidean modulo so the index stays in range even for a
// negative ring position such as Translate.
func wordIndex(first, second Symbol, spiral Spiral) int {
	i := (indexOffset + int(first) + int(second) + int(spiral)*WordsPerSpiral) % WordsPerTable
	if i < 0 {
		i += WordsPerTable
	}
	return i
}

// Lookup returns the answer word for the given game, ring symbols, and
// spiral. It is pure and reads only immutable table data, so it is safe for
// any number of concurrent callers.
func Lookup(g Game, first, second Symbol, spiral Spiral) string {
	return Table(g).Word(wordIndex(first, second, spiral))
}

// Decode resolves a selection to its answer word. The second return is false
// while any field of the selection is unset; an incomplete selection is the
// normal state before the player has dialed all four choices, not an error.
func Decode(sel Selection) (string, bool) {
	if !sel.Complete() {
		return Placeholder, false
	}
	return Lookup(*sel.Game, *sel.First, *sel.Second, *sel.Spiral), true
}
