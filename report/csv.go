package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/nlsolve/iterate"
)

// Header is the first CSV row.
var Header = []string{"iter", "x_n", "y_n", "x_next", "y_next", "error_norm"}

var csvFileNames = map[iterate.Method]string{
	iterate.MethodJacobi: "IT_Jacobi_g2A_g1B.csv",
	iterate.MethodSeidel: "IT_Seidel_g2A_g1B.csv",
	iterate.MethodNewton: "Newton_Raphson.csv",
	iterate.MethodSecant: "Secant.csv",
}

// CSVFileName returns the conventional export file name for m.
func CSVFileName(m iterate.Method) string {
	if name, ok := csvFileNames[m]; ok {
		return name
	}

	return m.String() + ".csv"
}

// WriteCSV writes Header followed by one row per record. Floats use the
// shortest representation that round-trips.
func WriteCSV(w io.Writer, log []iterate.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	row := make([]string, len(Header))
	for _, rec := range log {
		row[0] = strconv.Itoa(rec.Iter)
		row[1] = formatFloat(rec.X)
		row[2] = formatFloat(rec.Y)
		row[3] = formatFloat(rec.XNext)
		row[4] = formatFloat(rec.YNext)
		row[5] = formatFloat(rec.Err)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("WriteCSV: iter %d: %w", rec.Iter, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveCSV writes log to path, creating or truncating the file.
func SaveCSV(path string, log []iterate.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveCSV: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("SaveCSV: close: %w", cerr)
		}
	}()

	return WriteCSV(f, log)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
