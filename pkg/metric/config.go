package metric

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type defaultCostsSection struct {
	InsertDelete  *uint32 `json:"insert_delete"`
	Replace       *uint32 `json:"replace"`
	CaseSensitive *bool   `json:"case_sensitive"`
}

type insertDeleteSection struct {
	Group string  `json:"group"`
	Cost  *uint32 `json:"cost"`
}

type replaceSection struct {
	FirstGroup  string  `json:"first_group"`
	SecondGroup string  `json:"second_group"`
	Cost        *uint32 `json:"cost"`
}

// The custom sections are kept raw so failure diagnostics can echo the
// offending element verbatim.
type metricConfig struct {
	Default            *defaultCostsSection `json:"default"`
	CustomInsertDelete []json.RawMessage    `json:"custom_insert_delete"`
	CustomReplace      []json.RawMessage    `json:"custom_replace"`
}

// NewWeightedLevenshteinFromFile builds a weighted metric from a JSON
// config document. A missing file, malformed JSON or missing required
// field is a hard error; the caller decides whether to fall back to the
// uniform metric or abort startup.
func NewWeightedLevenshteinFromFile(configPath string) (*WeightedLevenshtein, error) {
	configFile, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("metric config file %q can't be opened: %w", configPath, err)
	}
	defer configFile.Close()

	var config metricConfig
	if err := json.NewDecoder(configFile).Decode(&config); err != nil {
		return nil, fmt.Errorf("error when parsing metric config file %q: %w", configPath, err)
	}

	wm := NewWeightedLevenshtein()

	if config.Default == nil {
		return nil, fmt.Errorf("metric config file %q is missing the \"default\" section", configPath)
	}
	if config.Default.InsertDelete == nil || config.Default.Replace == nil {
		return nil, fmt.Errorf("metric config file %q: \"default\" section requires insert_delete and replace", configPath)
	}
	wm.defaultInsertDelete = *config.Default.InsertDelete
	wm.defaultReplace = *config.Default.Replace
	if config.Default.CaseSensitive != nil {
		wm.caseSensitive = *config.Default.CaseSensitive
	}

	lower := cases.Lower(language.Und)

	for index, raw := range config.CustomInsertDelete {
		var section insertDeleteSection
		err := json.Unmarshal(raw, &section)
		if err == nil && section.Cost == nil {
			err = fmt.Errorf("missing cost field")
		}
		if err == nil && section.Group == "" {
			err = fmt.Errorf("missing group field")
		}
		if err != nil {
			return nil, fmt.Errorf("error while parsing custom insert-delete section %d:\n%s\n%w", index, string(raw), err)
		}

		group := section.Group
		if !wm.caseSensitive {
			group = lower.String(group)
		}
		for _, elem := range group {
			wm.insertDeleteCosts[elem] = *section.Cost
			wm.insertDeleteCache.Add(runeHash(elem))
		}
	}

	for index, raw := range config.CustomReplace {
		var section replaceSection
		err := json.Unmarshal(raw, &section)
		if err == nil && section.Cost == nil {
			err = fmt.Errorf("missing cost field")
		}
		if err == nil && (section.FirstGroup == "" || section.SecondGroup == "") {
			err = fmt.Errorf("missing first_group or second_group field")
		}
		if err != nil {
			return nil, fmt.Errorf("error while parsing custom replace section %d:\n%s\n%w", index, string(raw), err)
		}

		firstGroup, secondGroup := section.FirstGroup, section.SecondGroup
		if !wm.caseSensitive {
			firstGroup = lower.String(firstGroup)
			secondGroup = lower.String(secondGroup)
		}
		// both orientations get the cost, so the resulting function is
		// symmetric no matter how the groups were written
		for _, first := range firstGroup {
			for _, second := range secondGroup {
				wm.replaceCosts[[2]rune{first, second}] = *section.Cost
				wm.replaceCosts[[2]rune{second, first}] = *section.Cost
				wm.replaceCache.Add(runePairHash(first, second))
				wm.replaceCache.Add(runePairHash(second, first))
			}
		}
	}

	return wm, nil
}
