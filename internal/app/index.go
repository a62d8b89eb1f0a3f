// internal/app/index.go
package app

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"ebony/internal/genomeindex"
)

var (
	indexDBFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "SQLite index file to create or update (default from config)",
	}

	indexCmd = &cli.Command{
		Name:      "index",
		Usage:     "Index genome FASTA records into SQLite for fast extraction",
		ArgsUsage: "FASTA...",
		Flags:     []cli.Flag{indexDBFlag},
		Action:    runIndex,
	}
)

func runIndex(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("at least one FASTA file is required")
	}
	dbPath := c.String(indexDBFlag.Name)
	if dbPath == "" {
		dbPath = getConfig(c).DB
	}

	x, err := genomeindex.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = x.Close() }()

	for _, path := range c.Args().Slice() {
		n, err := x.IndexFasta(c.Context, path)
		if err != nil {
			return errors.Wrapf(err, "indexing %s", path)
		}
		log.Infof("indexed %d records from %s", n, path)
	}

	total, err := x.Count(c.Context)
	if err != nil {
		return err
	}
	log.Infof("index %s now holds %d records", dbPath, total)
	return nil
}
