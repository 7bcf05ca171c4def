package report

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// snapshotData is the on-disk form of a results snapshot. Only completed experiments
// are saved; an interrupted evolution run cannot be resumed from it.
type snapshotData struct {
	Experiments []ExperimentResult
}

// SaveSnapshot writes the completed experiments to a gzip-compressed gob file.
// The file is written to a temporary name and renamed, so a crash keeps the previous snapshot.
func SaveSnapshot(filePath string, experiments []ExperimentResult) error {
	tmp := filePath + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file '%s': %w", tmp, err)
	}
	defer os.Remove(tmp)
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(snapshotData{Experiments: experiments}); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to compress snapshot: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot file: %w", err)
	}
	if err := os.Rename(tmp, filePath); err != nil {
		return fmt.Errorf("failed to move snapshot into place: %w", err)
	}
	return nil
}

// LoadSnapshot reads experiments saved by SaveSnapshot.
func LoadSnapshot(filePath string) ([]ExperimentResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for snapshot: %w", err)
	}
	defer gzReader.Close()

	var data snapshotData
	if err := gob.NewDecoder(gzReader).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return data.Experiments, nil
}
