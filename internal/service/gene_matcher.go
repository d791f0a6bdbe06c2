package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alsftd-research/datasync/internal/domain"
)

// GeneMatcher resolves gene associations from a trial's free-text
// fields. Symbol matches use boundary-aware patterns so short symbols
// never match inside longer words ("ALS" must not hit "ALSO"); name
// matches are whole-word. Symbols are tried before names within each
// token, and manual overrides are applied last and win outright.
type GeneMatcher struct {
	symbols        []string
	names          []string
	symbolPatterns map[string]*regexp.Regexp
	namePatterns   map[string]*regexp.Regexp
	nameToSymbol   map[string]string
	overrides      map[string][]string
	log            *logrus.Logger
}

// NewGeneMatcher compiles matching patterns for the given dictionary
func NewGeneMatcher(genes []domain.Gene, overrides map[string][]string, logger *logrus.Logger) (*GeneMatcher, error) {
	m := &GeneMatcher{
		symbolPatterns: make(map[string]*regexp.Regexp, len(genes)),
		namePatterns:   make(map[string]*regexp.Regexp, len(genes)),
		nameToSymbol:   make(map[string]string, len(genes)),
		overrides:      overrides,
		log:            logger,
	}

	for _, gene := range genes {
		if gene.Symbol == "" {
			continue
		}
		sym := regexp.QuoteMeta(gene.Symbol)
		symPattern, err := regexp.Compile(`(?i)\b` + sym + `\b|\b` + sym + `[^A-Za-z0-9_]|[^A-Za-z0-9_]` + sym + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compiling symbol pattern for %s: %w", gene.Symbol, err)
		}
		m.symbols = append(m.symbols, gene.Symbol)
		m.symbolPatterns[gene.Symbol] = symPattern

		if gene.Name == "" {
			continue
		}
		namePattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(gene.Name) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("compiling name pattern for %s: %w", gene.Name, err)
		}
		m.names = append(m.names, gene.Name)
		m.namePatterns[gene.Name] = namePattern
		m.nameToSymbol[gene.Name] = gene.Symbol
	}

	return m, nil
}

// Match returns the deduplicated gene symbols found in the combined
// keyword text. The text is comma-split into tokens; within each token
// the first symbol match wins, and names are only consulted when no
// symbol hits.
func (m *GeneMatcher) Match(combinedKeywords string) []string {
	matched := make(map[string]struct{})

	if strings.TrimSpace(combinedKeywords) == "" {
		return []string{}
	}

	for _, token := range strings.Split(combinedKeywords, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		found := false
		for _, symbol := range m.symbols {
			if m.symbolPatterns[symbol].MatchString(token) {
				matched[symbol] = struct{}{}
				found = true
				break
			}
		}
		if found {
			continue
		}
		for _, name := range m.names {
			if m.namePatterns[name].MatchString(token) {
				matched[m.nameToSymbol[name]] = struct{}{}
				break
			}
		}
	}

	symbols := make([]string, 0, len(matched))
	for symbol := range matched {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Resolve runs Match and then applies any manual override for the
// trial. An override replaces the matched set entirely, including with
// an empty list for known false positives.
func (m *GeneMatcher) Resolve(nctID, combinedKeywords string) []string {
	if override, ok := m.overrides[nctID]; ok {
		m.log.WithFields(logrus.Fields{
			"nct_id": nctID,
			"genes":  override,
		}).Debug("Applied manual gene override")
		if override == nil {
			return []string{}
		}
		return override
	}
	return m.Match(combinedKeywords)
}

// CombineKeywords builds the matcher input the way trial records feed
// it: keyword tags, condition tags, study population and brief title,
// comma-joined.
func CombineKeywords(trial *domain.TrialRecord) string {
	parts := make([]string, 0, len(trial.Keywords)+len(trial.Conditions)+2)
	parts = append(parts, trial.Keywords...)
	parts = append(parts, trial.Conditions...)
	parts = append(parts, trial.StudyPopulation, trial.BriefTitle)
	return strings.Join(parts, ",")
}
