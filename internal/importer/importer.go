// Package importer は単語一覧の表計算ファイル (.xlsx / .csv) を読み込みます
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go_5_vocab_drill/internal/model"

	"github.com/xuri/excelize/v2"
)

// MaxRows は1ファイルから読み込む最大行数 (ヘッダー除く)
const MaxRows = 5000

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMissingColumns    = errors.New("spelling and meaning columns are required")
	ErrEmptyFile         = errors.New("file has no data rows")
	ErrTooManyRows       = errors.New("too many rows")
)

type column int

const (
	colSpelling column = iota
	colMeaning
	colSentence
	colPhonics
	colRoot
)

// headerAliases はヘッダー名 (小文字化・前後空白除去後) と列の対応
var headerAliases = map[string]column{
	"spelling": colSpelling,
	"单词":       colSpelling,
	"word":     colSpelling,
	"単語":       colSpelling,

	"meaning": colMeaning,
	"释义":      colMeaning,
	"中文":      colMeaning,
	"意味":      colMeaning,

	"sentence": colSentence,
	"例句":       colSentence,
	"例文":       colSentence,

	"phonics_data": colPhonics,
	"phonics":      colPhonics,
	"自然拼读":         colPhonics,

	"root_info": colRoot,
	"root":      colRoot,
	"词根":        colRoot,
}

// Parse はファイル名の拡張子で形式を判定して行を読み込みます。
// 1行目はヘッダーとして扱い、列の並びはヘッダー名で決めます
func Parse(filename string, r io.Reader) ([]model.ImportWordRow, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		records, err = readXLSX(r)
	case ".csv":
		records, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	return toRows(records)
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		// Excel が付ける UTF-8 BOM を除去
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return records, nil
}

func toRows(records [][]string) ([]model.ImportWordRow, error) {
	if len(records) < 2 {
		return nil, ErrEmptyFile
	}

	index := make(map[column]int)
	for i, h := range records[0] {
		if c, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := index[c]; !dup {
				index[c] = i
			}
		}
	}
	if _, ok := index[colSpelling]; !ok {
		return nil, ErrMissingColumns
	}
	if _, ok := index[colMeaning]; !ok {
		return nil, ErrMissingColumns
	}

	rows := make([]model.ImportWordRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		if len(rows) >= MaxRows {
			return nil, fmt.Errorf("%w: max %d", ErrTooManyRows, MaxRows)
		}
		cell := func(c column) string {
			i, ok := index[c]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		rows = append(rows, model.ImportWordRow{
			Spelling:    cell(colSpelling),
			Meaning:     cell(colMeaning),
			Sentence:    cell(colSentence),
			PhonicsData: cell(colPhonics),
			RootInfo:    cell(colRoot),
		})
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
