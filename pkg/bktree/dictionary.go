package bktree

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/fahmi-a-r/typo-corrector/pkg/metric"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewFromFile reads `<word> <priority>` records from the dictionary file,
// lowercases every word, shuffles the list and inserts it in shuffled
// order. The shuffle matters: alphabetically sorted dictionaries inserted
// in order degenerate into a spine under edit-distance metrics.
func NewFromFile(dictionaryPath string, m metric.Metric, log *zap.Logger) (*BKTree, error) {
	dictionaryFile, err := os.Open(dictionaryPath)
	if err != nil {
		return nil, fmt.Errorf("dictionary file %q can't be opened: %w", dictionaryPath, err)
	}
	defer dictionaryFile.Close()

	log.Info("reading dictionary", zap.String("path", dictionaryPath))

	type entry struct {
		word     []rune
		priority uint32
	}
	var entries []entry

	lower := cases.Lower(language.Und)
	scanner := bufio.NewScanner(dictionaryFile)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		word := lower.String(fields[0])
		if word == "" {
			continue
		}
		priority, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			// malformed record, skip the line but keep loading
			log.Warn("skipping malformed dictionary record",
				zap.String("record", scanner.Text()), zap.Error(err))
			continue
		}
		entries = append(entries, entry{word: []rune(word), priority: uint32(priority)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error when reading dictionary file %q: %w", dictionaryPath, err)
	}

	rand.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	bar := progressbar.NewOptions(len(entries),
		progressbar.OptionSetWriter(ansi.NewAnsiStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]Building bk-tree...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	tree := New(m)
	for _, e := range entries {
		tree.Insert(e.word, e.priority)
		_ = bar.Add(1)
	}

	log.Info("bk-tree built",
		zap.Int("records", len(entries)),
		zap.Int("words", tree.Len()))
	return tree, nil
}
