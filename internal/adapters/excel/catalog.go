package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"shootlist/internal/application"
	"shootlist/internal/config"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

// Loader implements ports.CatalogLoader over an Excel workbook
type Loader struct {
	cols config.Columns
}

// Ensure Loader implements CatalogLoader
var _ ports.CatalogLoader = (*Loader)(nil)

// NewLoader creates a catalog loader using the configured column headers
func NewLoader(cols config.Columns) *Loader {
	return &Loader{cols: cols}
}

// Load parses the workbook's active sheet into a catalog. Rows above
// the header row and blank rows are skipped; each data row yields a
// front variation and, when the back-position cell is marked, a back
// variation as well.
func (l *Loader) Load(path string) (*domain.Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &application.LoadError{Path: path, Reason: "cannot open workbook", Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &application.LoadError{Path: path, Reason: fmt.Sprintf("cannot read sheet %q", sheet), Err: err}
	}

	headerIdx, colIdx, err := l.findHeader(rows)
	if err != nil {
		return nil, &application.LoadError{Path: path, Reason: err.Error()}
	}

	var variations []domain.Variation
	for _, row := range rows[headerIdx+1:] {
		articleNo := cell(row, colIdx[l.cols.ArticleNo])
		if articleNo == "" {
			continue
		}

		article := domain.Article{
			Number:      articleNo,
			Description: cell(row, colIdx[l.cols.Description]),
			Collection:  cell(row, colIdx[l.cols.Collection]),
			ColorCode:   cell(row, colIdx[l.cols.ColorCode]),
			ColorName:   cell(row, colIdx[l.cols.ColorName]),
			Category:    cell(row, colIdx[l.cols.Category]),
		}

		variations = append(variations, domain.Variation{Article: article, Position: domain.PositionFront})
		if marked(cell(row, colIdx[l.cols.PositionBack])) {
			variations = append(variations, domain.Variation{Article: article, Position: domain.PositionBack})
		}
	}

	return domain.NewCatalog(variations), nil
}

// findHeader locates the row containing the article-number header and
// maps every configured header name to its column index. Headers that
// never appear map to -1.
func (l *Loader) findHeader(rows [][]string) (int, map[string]int, error) {
	required := []string{l.cols.ArticleNo, l.cols.Description, l.cols.ColorCode, l.cols.PositionBack}
	optional := []string{l.cols.Collection, l.cols.ColorName, l.cols.Category, l.cols.PositionFront}

	for i, row := range rows {
		if !containsHeader(row, l.cols.ArticleNo) {
			continue
		}

		colIdx := make(map[string]int)
		for _, name := range append(required, optional...) {
			colIdx[name] = indexOfHeader(row, name)
		}
		for _, name := range required {
			if colIdx[name] < 0 {
				return 0, nil, fmt.Errorf("header row is missing column %q", name)
			}
		}
		return i, colIdx, nil
	}

	return 0, nil, fmt.Errorf("no header row containing %q found", l.cols.ArticleNo)
}

func containsHeader(row []string, name string) bool {
	return indexOfHeader(row, name) >= 0
}

func indexOfHeader(row []string, name string) int {
	if name == "" {
		return -1
	}
	for i, c := range row {
		if strings.TrimSpace(c) == name {
			return i
		}
	}
	return -1
}

// cell returns the trimmed value at idx, tolerating short rows (GetRows
// truncates trailing empty cells)
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// marked reports whether a position cell selects the variation
func marked(value string) bool {
	return strings.EqualFold(value, "x")
}
