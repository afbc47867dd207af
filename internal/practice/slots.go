package practice

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Slot は綴りの1文字分の入力欄。Fixed の欄は表示済みで入力できません
type Slot struct {
	Char  string // 正解の文字
	Fixed bool
}

// IsInputChar は入力欄にする文字 (英字・アポストロフィ・ハイフン) かどうか
func IsInputChar(r rune) bool {
	return unicode.IsLetter(r) || r == '\'' || r == '-'
}

// BuildSlots は先頭文字と入力対象外の文字を固定し、残りを1文字ずつの入力欄にします
func BuildSlots(spelling string) []Slot {
	slots := make([]Slot, 0, utf8.RuneCountInString(spelling))
	for i, r := range []rune(spelling) {
		slots = append(slots, Slot{Char: string(r), Fixed: i == 0 || !IsInputChar(r)})
	}
	return slots
}

// InputCount は入力欄の数
func InputCount(slots []Slot) int {
	n := 0
	for _, s := range slots {
		if !s.Fixed {
			n++
		}
	}
	return n
}

// Mask は入力欄を "_" にした表示用の文字列
func Mask(slots []Slot) string {
	var b strings.Builder
	for _, s := range slots {
		if s.Fixed {
			b.WriteString(s.Char)
		} else {
			b.WriteString("_")
		}
	}
	return b.String()
}

// Assemble は固定文字と入力値を並べて解答文字列を作ります。
// 入力値が足りない欄は空、各入力値は先頭1文字だけを使い、余った入力値は末尾に付けます
func Assemble(slots []Slot, inputs []string) string {
	var b strings.Builder
	next := 0
	for _, s := range slots {
		if s.Fixed {
			b.WriteString(s.Char)
			continue
		}
		if next < len(inputs) {
			if r, size := utf8.DecodeRuneInString(inputs[next]); size > 0 {
				b.WriteRune(r)
			}
		}
		next++
	}
	for ; next < len(inputs); next++ {
		if r, size := utf8.DecodeRuneInString(inputs[next]); size > 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitInput は1行で打たれた解答を入力欄ごとの値に分けます。
// 空白などの固定文字は打っても打たなくても構いません。
// 先頭の固定文字は、打たれた文字数が入力欄より多い (綴り全体を打った) 場合に読み飛ばします。
// 文字数が入力欄と同じで先頭が一致するときは、入力欄だけを打った解釈で正解になる場合を優先します
func SplitInput(slots []Slot, line string) []string {
	letters := make([]string, 0, len(slots))
	for _, r := range strings.TrimSpace(line) {
		if IsInputChar(r) {
			letters = append(letters, string(r))
		}
	}
	if len(letters) == 0 || len(slots) == 0 {
		return letters
	}

	lead := slots[0]
	if !lead.Fixed || !IsInputChar([]rune(lead.Char)[0]) || !strings.EqualFold(letters[0], lead.Char) {
		return letters
	}
	n := InputCount(slots)
	if len(letters) == n && matchesSlots(slots, letters) {
		return letters
	}
	return letters[1:]
}

func matchesSlots(slots []Slot, inputs []string) bool {
	var spelling strings.Builder
	for _, s := range slots {
		spelling.WriteString(s.Char)
	}
	return Matches(Assemble(slots, inputs), spelling.String())
}

// Matches は大文字小文字を区別せずに比較します
func Matches(answer, spelling string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(spelling))
}
