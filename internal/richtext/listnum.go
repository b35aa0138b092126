package richtext

// DefaultBullets is the bullet glyph per nesting level. Nesting beyond the
// list clamps to the last glyph. Read-only static data.
var DefaultBullets = []string{"•", "◦", "▪"}

// Bullet picks the unordered-list glyph for a 1-based nesting level.
// An empty glyph list falls back to the plain bullet.
func Bullet(level int, glyphs []string) string {
	if len(glyphs) == 0 {
		return "•"
	}
	i := level - 1
	if i < 0 {
		i = 0
	}
	if i >= len(glyphs) {
		i = len(glyphs) - 1
	}
	return glyphs[i]
}

// Renumber walks the paragraph sequence and reassigns ordered-list
// numbers, tracking one counter per nesting level. Entering a level
// deeper than any seen in the current list block resets that level's
// counter to 1 (or the item's explicit starting number); returning to a
// shallower level resumes that level's counter. A non-list paragraph ends
// the block and forgets all counters.
func (d *Document) Renumber() {
	counters := make(map[int]int)
	maxLevel := 0

	for _, p := range d.paragraphs {
		if !p.Type.IsList() {
			if len(counters) > 0 {
				counters = make(map[int]int)
			}
			maxLevel = 0
			continue
		}

		if p.Type.Level < 1 {
			p.Type.Level = 1
		}
		lvl := p.Type.Level

		if p.Type.Kind == KindOrderedList {
			if lvl > maxLevel {
				start := 1
				if p.Type.Number > 1 {
					start = p.Type.Number
				}
				counters[lvl] = start
			} else {
				counters[lvl]++
				if counters[lvl] == 1 && p.Type.Number > 1 {
					counters[lvl] = p.Type.Number
				}
			}
			p.Type.Number = counters[lvl]
		}

		if lvl > maxLevel {
			maxLevel = lvl
		}
	}
}
