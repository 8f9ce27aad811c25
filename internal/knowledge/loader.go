package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"campuschat/internal/models"

	"go.uber.org/zap"
)

// Sources holds the static knowledge inputs loaded at process start.
type Sources struct {
	Intents     []models.Intent
	FAQ         map[string]models.FAQDetails
	Institution any
}

type intentsFile struct {
	Intents []models.Intent `json:"intents"`
}

// LoadSources reads intents.json, faq.json and college.json from dir. A
// missing file is tolerated (logged, treated as empty) so partial knowledge
// sets still serve.
func LoadSources(dir string, logger *zap.Logger) (*Sources, error) {
	sources := &Sources{FAQ: map[string]models.FAQDetails{}}

	var intents intentsFile
	if err := readJSON(filepath.Join(dir, "intents.json"), &intents); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load intents: %w", err)
		}
		logger.Warn("Intents file not found", zap.String("dir", dir))
	}
	sources.Intents = intents.Intents

	if err := readJSON(filepath.Join(dir, "faq.json"), &sources.FAQ); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load faq: %w", err)
		}
		logger.Warn("FAQ file not found", zap.String("dir", dir))
	}

	if err := readJSON(filepath.Join(dir, "college.json"), &sources.Institution); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load institution records: %w", err)
		}
		logger.Warn("Institution records file not found", zap.String("dir", dir))
	}

	logger.Info("Knowledge sources loaded",
		zap.Int("intents", len(sources.Intents)),
		zap.Int("faq", len(sources.FAQ)),
	)

	return sources, nil
}

// StaticEntries flattens the static sources into corpus entries: intents
// first, then FAQ records, then the institutional record walk.
func StaticEntries(sources *Sources) []models.CorpusEntry {
	var entries []models.CorpusEntry

	for _, intent := range sources.Intents {
		text := strings.Join([]string{
			intent.Intent,
			strings.Join(intent.Keywords, " "),
			strings.Join(intent.Questions, " "),
		}, " ")
		entries = append(entries, models.CorpusEntry{Text: text, Answer: intent.Answer})
	}

	// FAQ map iteration is randomized; sort questions for a stable corpus.
	questions := make([]string, 0, len(sources.FAQ))
	for question := range sources.FAQ {
		questions = append(questions, question)
	}
	sort.Strings(questions)
	for _, question := range questions {
		details := sources.FAQ[question]
		text := question + " " + strings.Join(details.Tags, " ")
		entries = append(entries, models.CorpusEntry{Text: text, Answer: details.Answer})
	}

	entries = append(entries, WalkRecords(sources.Institution)...)
	return entries
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
