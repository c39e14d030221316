package storage

import (
	json "github.com/goccy/go-json"
	"os"
	"shorecrew/internal/models"
	"shorecrew/internal/providers"
	"shorecrew/internal/services"
	"shorecrew/internal/storage/interfaces"
)

// FileManager owns the single persistence slot: one file holding the
// serialized crew+events envelope, zstd-compressed, written atomically.
type FileManager struct {
	service    services.RosterServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.RosterServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) error {
	state := f.service.GetSnapshot()

	jsonData, err := json.Marshal(state)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile hydrates the roster from the slot. A missing file means a
// fresh start. A blob that cannot be decompressed is retried as plain JSON
// (slots written before compression was introduced); a blob that cannot be
// parsed at all resets the roster to empty rather than aborting startup.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	jsonData, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "Stored roster is not compressed, trying plain JSON")
		jsonData = data
	}

	var state models.StateV2
	if err := json.Unmarshal(jsonData, &state); err != nil {
		f.logger.Warnf(providers.TypeApp, "Stored roster is unreadable, starting from empty collections: %s", err)
		f.service.PutState(nil, nil)
		return nil
	}

	// Missing fields default to empty collections independently, so legacy
	// blobs without a version field (or with only one collection) still load.
	f.service.PutState(state.Crew, state.Events)
	return nil
}
