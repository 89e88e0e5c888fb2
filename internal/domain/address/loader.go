package address

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"

	"kma-forecast/pkg/log"
	"kma-forecast/pkg/msg"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadFile reads the address table at path (.csv or .xlsx) and builds the Index.
func LoadFile(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open address table: %w", err)
	}
	defer func() { _ = file.Close() }()

	var rows [][]string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = ReadCSV(file)
	case ".xlsx":
		rows, err = ReadXLSX(file)
	default:
		return nil, fmt.Errorf("unsupported address table format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read address table %s: %w", path, err)
	}

	idx := Build(rows)
	log.Info(msg.GetMessage("address.loaded", path, len(idx.Provinces()), idx.Len()))
	return idx, nil
}

// ReadCSV reads every record of a CSV table. Input that is not valid UTF-8 is decoded
// as EUC-KR, the encoding spreadsheet tools use for Korean CSV exports.
func ReadCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) {
		data, err = korean.EUCKR.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("table is neither UTF-8 nor EUC-KR: %w", err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

// ReadXLSX reads the rows of the first sheet of a workbook, using raw cell values
// so that numeric cells are not altered by their display format.
func ReadXLSX(r io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = workbook.Close() }()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheet")
	}
	return workbook.GetRows(sheets[0], excelize.Options{RawCellValue: true})
}
