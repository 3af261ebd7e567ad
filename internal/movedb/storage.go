package movedb

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Save writes records to the file at path, replacing it.
func Save(path string, records []uint32) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create move database: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("could not close move database: %w", closeErr))
		}
	}()

	if err = WriteRecords(file, records); err != nil {
		return fmt.Errorf("could not save move database: %w", err)
	}

	return nil
}

// Load reads the whole file at path into a Table.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open move database: %w", err)
	}
	defer file.Close()

	records, err := ReadRecords(file)
	if err != nil {
		return nil, fmt.Errorf("could not read move database %s: %w", path, err)
	}

	table, err := NewTable(records)
	if err != nil {
		return nil, fmt.Errorf("could not load move database %s: %w", path, err)
	}

	return table, nil
}

// BuildFile builds the database and saves it to path. It returns the number of records written.
func BuildFile(logger *slog.Logger, path string) (int, error) {
	records := Build(logger)

	logger.Info("Saving move database", "component", "movedb.builder", "path", path, "records", len(records))
	if err := Save(path, records); err != nil {
		return 0, err
	}

	return len(records), nil
}
