// Package common provides the shared CSV reading and writing used by the
// report pipeline.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"fjacquet/capex-csv/internal/fileutils"
	"fjacquet/capex-csv/internal/logging"
	"fjacquet/capex-csv/internal/models"
	"fjacquet/capex-csv/internal/reporterror"
)

var log = logrus.New()

// Delimiter is the global CSV delimiter, configurable via config or the
// CSV_DELIMITER environment variable.
var Delimiter rune = ','

func init() {
	if val := os.Getenv("CSV_DELIMITER"); val != "" {
		SetDelimiter([]rune(val)[0])
	}
}

// SetDelimiter sets the delimiter used for CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ReadRows reads a CSV file with a header row into the header slice and a
// slice of rows keyed by column name. Fields beyond the header length are
// dropped; short records leave the remaining columns empty.
func ReadRows(filePath string) ([]string, []models.Row, error) {
	log.WithField(logging.FieldInputFile, filePath).Info("Reading CSV file")

	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return nil, nil, &reporterror.InputError{Path: filePath, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close input file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1 // allow ragged records

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, &reporterror.InputError{
			Path: filePath,
			Err:  fmt.Errorf("file has no header row"),
		}
	}
	if err != nil {
		return nil, nil, &reporterror.InputError{Path: filePath, Err: err}
	}

	var rows []models.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &reporterror.InputError{Path: filePath, Err: err}
		}

		row := make(models.Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	log.WithField(logging.FieldCount, len(rows)).Info("Successfully read CSV data")
	return header, rows, nil
}

// WriteSummaryToCSV writes summary rows to a CSV file. The rows are
// marshalled to memory first so the output file is never left behind
// half-written; it is only created once the full report rendered cleanly.
func WriteSummaryToCSV(rows []models.SummaryRow, csvFile string) error {
	if rows == nil {
		rows = []models.SummaryRow{}
	}

	log.WithFields(logrus.Fields{
		logging.FieldOutputFile: csvFile,
		logging.FieldCount:      len(rows),
	}).Info("Writing summary to CSV file")

	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return &reporterror.OutputError{Path: csvFile, Err: err}
	}

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		return &reporterror.OutputError{Path: csvFile, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close output file")
		}
	}()

	if _, err := file.Write(buf.Bytes()); err != nil {
		return &reporterror.OutputError{Path: csvFile, Err: err}
	}

	log.WithFields(logrus.Fields{
		logging.FieldOutputFile: csvFile,
		logging.FieldCount:      len(rows),
	}).Info("Successfully wrote summary to CSV file")

	return nil
}
