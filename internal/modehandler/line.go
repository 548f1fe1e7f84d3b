package modehandler

// lineBuffer is a single line of text with a cursor, edited by rune.
type lineBuffer struct {
	runes  []rune
	cursor int
}

// Set replaces the text and puts the cursor at the end.
func (l *lineBuffer) Set(s string) {
	l.runes = []rune(s)
	l.cursor = len(l.runes)
}

func (l *lineBuffer) String() string { return string(l.runes) }
func (l *lineBuffer) Len() int       { return len(l.runes) }
func (l *lineBuffer) Cursor() int    { return l.cursor }

// Insert adds r before the cursor.
func (l *lineBuffer) Insert(r rune) {
	l.runes = append(l.runes, 0)
	copy(l.runes[l.cursor+1:], l.runes[l.cursor:])
	l.runes[l.cursor] = r
	l.cursor++
}

// Backspace removes the rune before the cursor.
func (l *lineBuffer) Backspace() bool {
	if l.cursor == 0 {
		return false
	}
	l.runes = append(l.runes[:l.cursor-1], l.runes[l.cursor:]...)
	l.cursor--
	return true
}

// Delete removes the rune under the cursor.
func (l *lineBuffer) Delete() bool {
	if l.cursor >= len(l.runes) {
		return false
	}
	l.runes = append(l.runes[:l.cursor], l.runes[l.cursor+1:]...)
	return true
}

func (l *lineBuffer) Left() {
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *lineBuffer) Right() {
	if l.cursor < len(l.runes) {
		l.cursor++
	}
}

func (l *lineBuffer) Home() { l.cursor = 0 }
func (l *lineBuffer) End()  { l.cursor = len(l.runes) }
