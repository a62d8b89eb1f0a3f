// internal/app/score.go
package app

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"ebony/core/alignment"
	"ebony/core/classify"
	"ebony/core/fasta"
	"ebony/internal/output"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var (
	scoreModelFlag = &cli.StringFlag{
		Name:  "model",
		Usage: "model JSON from the train step (default from config)",
	}
	scoreSeqFlag = &cli.StringSliceFlag{
		Name:     "sequences",
		Usage:    "aligned FASTA file(s) with queries (repeatable, '-' = stdin)",
		Required: true,
	}
	scoreOutputFlag = &cli.StringFlag{
		Name:  "output",
		Usage: "output format: text | json",
		Value: formatText,
	}
	scoreLastFlag = &cli.BoolFlag{
		Name:  "last",
		Usage: "score only the last record (the reference appended to the alignment)",
	}
	scoreThreadsFlag = &cli.IntFlag{
		Name:  "threads",
		Usage: "scoring workers (0 = all CPUs)",
	}
	noHeaderFlag = &cli.BoolFlag{
		Name:  "no-header",
		Usage: "suppress header line in text output",
	}

	scoreCmd = &cli.Command{
		Name:  "score",
		Usage: "Score aligned query sequences against a trained model",
		Flags: []cli.Flag{
			scoreModelFlag, scoreSeqFlag, scoreOutputFlag,
			scoreLastFlag, scoreThreadsFlag, noHeaderFlag,
		},
		Action: runScore,
	}
)

func runScore(c *cli.Context) error {
	cfg := getConfig(c)

	format := c.String(scoreOutputFlag.Name)
	if format != formatText && format != formatJSON {
		return errors.Errorf("invalid --output %q", format)
	}
	modelPath := c.String(scoreModelFlag.Name)
	if modelPath == "" {
		modelPath = cfg.Model
	}
	threads := cfg.Threads
	if c.IsSet(scoreThreadsFlag.Name) {
		threads = c.Int(scoreThreadsFlag.Name)
	}

	model, err := classify.LoadModel(modelPath)
	if err != nil {
		return err
	}
	log.Debugf("model %s: length %d, %d informative sites", modelPath, model.Length, len(model.Sites))

	var queries []alignment.Sequence
	for _, path := range c.StringSlice(scoreSeqFlag.Name) {
		records, err := fasta.ReadAllCtx(c.Context, path)
		if err != nil {
			return errors.Wrapf(err, "reading %s", path)
		}
		for _, rec := range records {
			q, err := alignment.NewSequence(rec.ID, rec.Seq)
			if err != nil {
				return err
			}
			queries = append(queries, q)
		}
	}
	if len(queries) == 0 {
		return errors.New("no sequences to score")
	}
	if c.Bool(scoreLastFlag.Name) {
		queries = queries[len(queries)-1:]
	}

	results, err := classify.ScoreAll(c.Context, model, queries, threads)
	if err != nil {
		return err
	}

	if format == formatJSON {
		return output.WriteScoreJSON(c.App.Writer, results)
	}
	return output.WriteScoreText(c.App.Writer, results, !c.Bool(noHeaderFlag.Name))
}
