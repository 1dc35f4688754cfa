package view

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLine 左右两列的一行
type DiffLine struct {
	Left  string
	Right string
	Mark  string // "|" 相同, "-" 只在左边, "+" 只在右边, "~" 有改动
}

// CompareReports 按行比较两个设备的报告
func CompareReports(before, after string) []DiffLine {
	dmp := diffmatchpatch.New()
	text1, text2, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(text1, text2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var result []DiffLine
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		// 删除后紧跟插入，视为同一位置的改动，左右并排
		if d.Type == diffmatchpatch.DiffDelete &&
			i+1 < len(diffs) &&
			diffs[i+1].Type == diffmatchpatch.DiffInsert {

			delLines := splitLines(d.Text)
			insLines := splitLines(diffs[i+1].Text)
			for j := range max(len(delLines), len(insLines)) {
				l, r := "", ""
				if j < len(delLines) {
					l = delLines[j]
				}
				if j < len(insLines) {
					r = insLines[j]
				}
				result = append(result, DiffLine{Left: l, Right: r, Mark: "~"})
			}
			i++
			continue
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				result = append(result, DiffLine{Left: line, Right: line, Mark: "|"})
			case diffmatchpatch.DiffDelete:
				result = append(result, DiffLine{Left: line, Mark: "-"})
			case diffmatchpatch.DiffInsert:
				result = append(result, DiffLine{Right: line, Mark: "+"})
			}
		}
	}
	return result
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// HasChanges 是否存在不同的行
func HasChanges(diff []DiffLine) bool {
	for _, d := range diff {
		if d.Mark != "|" {
			return true
		}
	}
	return false
}

// FormatSideBySide 左右并排，左列按显示宽度补齐
// fmt 的宽度按字符数计算，所以补齐宽度 = 字符数 + (最大显示宽度 - 当前显示宽度)
func FormatSideBySide(leftTitle, rightTitle string, diff []DiffLine) string {
	cond := runewidth.NewCondition()
	// 模糊宽度字符按 1 计算
	cond.EastAsianWidth = false

	maxWidth := cond.StringWidth(leftTitle)
	for _, d := range diff {
		maxWidth = max(maxWidth, cond.StringWidth(d.Left))
	}

	pad := func(s string) int {
		return utf8.RuneCountInString(s) + maxWidth - cond.StringWidth(s)
	}

	var out []string
	header := fmt.Sprintf("%-*s  %s  %s", pad(leftTitle), leftTitle, " ", rightTitle)
	out = append(out, header)
	out = append(out, strings.Repeat("-", cond.StringWidth(header)))

	for _, d := range diff {
		out = append(out, fmt.Sprintf("%-*s  %s  %s", pad(d.Left), d.Left, d.Mark, d.Right))
	}
	return strings.Join(out, "\n") + "\n"
}
