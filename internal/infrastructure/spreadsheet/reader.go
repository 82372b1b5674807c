package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/fast-api/internal/domain"
	"github.com/jhoicas/fast-api/internal/domain/report"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile lee un archivo de importación según su extensión (.xlsx o .csv).
func ReadFile(name string, data []byte) (report.Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return ReadXLSX(bytes.NewReader(data), "")
	case ".csv":
		return ReadCSV(data)
	}
	return report.Table{}, domain.NewValidationError("file", "formato no soportado, use .xlsx o .csv")
}

// ReadXLSX lee la hoja sheet (o la primera si sheet es "") como tabla. La primera fila no
// vacía es el encabezado; las filas vacías se descartan y las cortas se completan con "".
func ReadXLSX(r io.Reader, sheet string) (report.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return report.Table{}, domain.NewValidationError("file", "no se pudo leer el archivo Excel: "+err.Error())
	}
	defer f.Close()

	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return report.Table{}, domain.NewValidationError("file", "el archivo Excel no tiene hojas")
		}
		sheet = list[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return report.Table{}, domain.NewValidationError("file", fmt.Sprintf("hoja %q: %v", sheet, err))
	}
	return tableFromRows(rows), nil
}

// ReadCSV lee un CSV con separador "," o ";" (el que aparezca más en el encabezado).
// Acepta BOM UTF-8; si el contenido no es UTF-8 válido se decodifica como Windows-1252.
func ReadCSV(data []byte) (report.Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		src = transform.NewReader(src, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return report.Table{}, domain.NewValidationError("file", "CSV mal formado: "+err.Error())
	}
	return tableFromRows(rows), nil
}

func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte(";")) > bytes.Count(line, []byte(",")) {
		return ';'
	}
	return ','
}

func tableFromRows(rows [][]string) report.Table {
	var t report.Table
	header := true
	for _, row := range rows {
		if blank(row) {
			continue
		}
		if header {
			cols := make([]string, len(row))
			for i, c := range row {
				cols[i] = strings.TrimSpace(c)
			}
			t = report.NewTable(cols...)
			header = false
			continue
		}
		cells := make([]any, len(t.Columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = strings.TrimSpace(row[i])
			} else {
				cells[i] = ""
			}
		}
		t.Append(cells...)
	}
	return t
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
