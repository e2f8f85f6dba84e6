package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/choicedata/dataset"
	"github.com/katalvlaran/choicedata/draws"
	log "github.com/sirupsen/logrus"
)

// readDatabase loads a CSV file, naming the database after the file unless
// name is given.
func readDatabase(path, name string, reg *draws.Registry, opts ...dataset.Option) (*dataset.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	opts = append([]dataset.Option{dataset.WithLogger(log.StandardLogger()), dataset.WithRegistry(reg)}, opts...)
	db, err := dataset.ReadCSV(name, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("read %d observations from %s", db.NumberOfObservations(), path)

	return db, nil
}
