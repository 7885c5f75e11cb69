package local

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pricelab/pricelab/client"
)

// FromCSV loads samples from a csv file with a price,rating pair per row.
// A header row is detected and skipped.
func FromCSV(path string) (client.Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open '%s': %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse '%s': %w", path, err)
	}

	samples := make(client.Samples, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("row %d of '%s' has %d columns", i+1, path, len(row))
		}
		price, perr := strconv.ParseFloat(row[0], 64)
		rating, rerr := strconv.ParseFloat(row[1], 64)
		if perr != nil || rerr != nil {
			if i == 0 {
				// header row
				continue
			}
			return nil, fmt.Errorf("could not parse row %d of '%s'", i+1, path)
		}
		samples = append(samples, client.Sample{Price: price, Rating: rating})
	}
	return samples.Impute(), nil
}
