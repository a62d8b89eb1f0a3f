// internal/genomeindex/index.go

// Package genomeindex stores genome FASTA records in a local SQLite file so
// repeated region extractions skip rescanning multi-gigabyte inputs.
package genomeindex

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"ebony/core/fasta"
	"ebony/core/region"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	name        TEXT PRIMARY KEY,
	length      INTEGER NOT NULL,
	source_file TEXT NOT NULL,
	seq         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_length ON records(length);
`

const insertBatchSize = 1000

// Index is a handle on the SQLite record store.
type Index struct {
	db *sql.DB
}

// Open opens (creating if needed) the index at path.
func Open(path string) (*Index, error) {
	if path == "" {
		return nil, errors.New("index path not specified")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening index %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating index schema")
	}
	return &Index{db: db}, nil
}

func (x *Index) Close() error { return x.db.Close() }

// IndexFasta streams every record of path into the store in transactional
// batches. Re-indexing a file replaces its records. Returns the number of
// records written.
func (x *Index) IndexFasta(ctx context.Context, path string) (n int, err error) {
	tx, stmt, err := x.beginBatch(ctx)
	if err != nil {
		return 0, err
	}
	// tx is nil exactly while no transaction is open (just committed, or
	// beginBatch failed mid-stream); only a live one may be rolled back.
	defer func() {
		if err != nil && tx != nil {
			_ = tx.Rollback()
		}
	}()

	batched := 0
	err = fasta.StreamPathCtx(ctx, path, func(r fasta.Record) error {
		if _, ierr := stmt.ExecContext(ctx, r.ID, len(r.Seq), path, string(r.Seq)); ierr != nil {
			return errors.Wrapf(ierr, "inserting record %s", r.ID)
		}
		n++
		batched++
		if batched >= insertBatchSize {
			cerr := tx.Commit()
			tx, stmt = nil, nil
			if cerr != nil {
				return errors.Wrap(cerr, "committing batch")
			}
			var berr error
			if tx, stmt, berr = x.beginBatch(ctx); berr != nil {
				return berr
			}
			batched = 0
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	cerr := tx.Commit()
	tx = nil
	if cerr != nil {
		return 0, errors.Wrap(cerr, "committing final batch")
	}
	return n, nil
}

// beginBatch opens a transaction with its insert statement prepared.
func (x *Index) beginBatch(ctx context.Context) (*sql.Tx, *sql.Stmt, error) {
	tx, err := x.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "beginning transaction")
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO records (name, length, source_file, seq) VALUES (?, ?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return nil, nil, errors.Wrap(err, "preparing insert")
	}
	return tx, stmt, nil
}

// Match resolves a chromosome hint to a stored record using the same rules
// as region extraction: exact name first, then hint matching over all
// stored names.
func (x *Index) Match(ctx context.Context, hint string) (fasta.Record, error) {
	if rec, err := x.lookup(ctx, hint); err == nil {
		return rec, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fasta.Record{}, err
	}

	rows, err := x.db.QueryContext(ctx, "SELECT name FROM records ORDER BY name")
	if err != nil {
		return fasta.Record{}, errors.Wrap(err, "listing record names")
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fasta.Record{}, errors.Wrap(err, "scanning record name")
		}
		if region.MatchHint(name, hint) {
			return x.lookup(ctx, name)
		}
	}
	if err := rows.Err(); err != nil {
		return fasta.Record{}, errors.Wrap(err, "iterating record names")
	}
	return fasta.Record{}, errors.Errorf("no indexed record matching hint %q", hint)
}

// Count returns the number of stored records.
func (x *Index) Count(ctx context.Context) (int, error) {
	var n int
	if err := x.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, errors.Wrap(err, "counting records")
	}
	return n, nil
}

func (x *Index) lookup(ctx context.Context, name string) (fasta.Record, error) {
	var seq string
	err := x.db.QueryRowContext(ctx, "SELECT seq FROM records WHERE name = ?", name).Scan(&seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fasta.Record{}, err
		}
		return fasta.Record{}, errors.Wrapf(err, "looking up record %s", name)
	}
	return fasta.Record{ID: name, Seq: []byte(seq)}, nil
}
