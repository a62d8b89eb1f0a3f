// internal/app/train.go
package app

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"ebony/core/alignment"
	"ebony/core/classify"
	"ebony/core/fasta"
	"ebony/core/labels"
)

var (
	trainFastaFlag = &cli.StringFlag{
		Name:     "fasta",
		Usage:    "aligned multi-FASTA training set ('-' = stdin, .gz ok)",
		Required: true,
	}
	trainLabelsFlag = &cli.StringFlag{
		Name:     "labels",
		Usage:    "CSV label table: first column id, last column dark|light",
		Required: true,
	}
	trainOutFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "output model JSON path (default from config)",
	}
	minFreqFlag = &cli.Float64Flag{
		Name:  "min-freq",
		Usage: "minimum dominant-allele frequency per group, 0 disables",
	}

	trainCmd = &cli.Command{
		Name:   "train",
		Usage:  "Train a dark/light model from an aligned FASTA and a label table",
		Flags:  []cli.Flag{trainFastaFlag, trainLabelsFlag, trainOutFlag, minFreqFlag},
		Action: runTrain,
	}
)

func runTrain(c *cli.Context) error {
	cfg := getConfig(c)

	out := c.String(trainOutFlag.Name)
	if out == "" {
		out = cfg.Model
	}
	minFreq := cfg.MinFreq
	if c.IsSet(minFreqFlag.Name) {
		minFreq = c.Float64(minFreqFlag.Name)
	}
	if minFreq < 0 || minFreq > 1 {
		return errors.Errorf("--min-freq %v outside [0,1]", minFreq)
	}

	records, err := fasta.ReadAllCtx(c.Context, c.String(trainFastaFlag.Name))
	if err != nil {
		return errors.Wrap(err, "reading training FASTA")
	}
	aln, err := alignment.New(records)
	if err != nil {
		return err
	}
	table, err := labels.ReadFile(c.String(trainLabelsFlag.Name))
	if err != nil {
		return err
	}

	model, sum, err := classify.Build(aln, table, classify.BuildOptions{MinFreq: minFreq})
	for _, id := range sum.Unlabeled {
		log.Warnf("sequence %s has no label; ignored", id)
	}
	if err != nil {
		return err
	}

	log.Infof("loaded %d dark and %d light sequences", sum.DarkSeqs, sum.LightSeqs)
	log.Infof("found %d informative positions", sum.Informative)

	if err := model.Save(out); err != nil {
		return err
	}
	log.Infof("model written to %s", out)
	return nil
}
