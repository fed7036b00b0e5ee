package classifier

import (
	"regexp"
	"strings"

	"ai-memoire-be/pkg/memoire"
)

// sectionPatterns pairs a section with its detailed detection patterns.
// The table is data, ordered by the canonical outline: the first section
// whose first matching pattern fires wins, so the tie-break between
// overlapping patterns is the outline order itself.
type sectionPatterns struct {
	Section  memoire.SectionID
	Patterns []*regexp.Regexp
}

var sectionTable = []sectionPatterns{
	{
		Section: memoire.SectionIntroduction,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bintroduction\b`),
			regexp.MustCompile(`(?i)\bprobl[ée]matique\b`),
			regexp.MustCompile(`(?i)d[ée]but du m[ée]moire`),
			regexp.MustCompile(`(?i)annonce du plan`),
		},
	},
	{
		Section: memoire.SectionCadreTheorique,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)cadre th[ée]orique`),
			regexp.MustCompile(`(?i)\b1\.1\b`),
			regexp.MustCompile(`(?i)partie th[ée]orique`),
			regexp.MustCompile(`(?i)concepts? cl[ée]s?`),
			regexp.MustCompile(`(?i)chapitre\s*1\b.*th[ée]or`),
		},
	},
	{
		Section: memoire.SectionSyntheseLitterature,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)synth[èe]se de (?:la )?litt[ée]rature`),
			regexp.MustCompile(`(?i)\b1\.2\b`),
			regexp.MustCompile(`(?i)revue de (?:la )?litt[ée]rature`),
			regexp.MustCompile(`(?i)[ée]tat de l['’]art`),
			regexp.MustCompile(`(?i)chapitre\s*1\b.*litt[ée]rature`),
		},
	},
	{
		Section: memoire.SectionAnalyseCritique,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)analyse critique`),
			regexp.MustCompile(`(?i)\b1\.3\b`),
			regexp.MustCompile(`(?i)critique de (?:la )?litt[ée]rature`),
			regexp.MustCompile(`(?i)limites? des travaux`),
			regexp.MustCompile(`(?i)chapitre\s*1\b.*critique`),
		},
	},
	{
		Section: memoire.SectionMateriauxTerrain,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)mat[ée]riaux`),
			regexp.MustCompile(`(?i)\b2\.1\b`),
			regexp.MustCompile(`(?i)terrain d['’][ée]tude`),
			regexp.MustCompile(`(?i)pr[ée]sentation du terrain`),
			regexp.MustCompile(`(?i)chapitre\s*2\b.*terrain`),
		},
	},
	{
		Section: memoire.SectionMethodologie,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)m[ée]thodologie`),
			regexp.MustCompile(`(?i)\b2\.2\b`),
			regexp.MustCompile(`(?i)d[ée]marche m[ée]thodologique`),
			regexp.MustCompile(`(?i)collecte des? donn[ée]es`),
			regexp.MustCompile(`(?i)chapitre\s*2\b.*m[ée]thod`),
		},
	},
	{
		Section: memoire.SectionResultats,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)pr[ée]sente?r?\s+(?:les\s+|des\s+)?r[ée]sultats`),
			regexp.MustCompile(`(?i)\b3\.1\b`),
			regexp.MustCompile(`(?i)r[ée]sultats de l['’]enqu[êe]te`),
			regexp.MustCompile(`(?i)expose\w*\s+les\s+r[ée]sultats`),
		},
	},
	{
		Section: memoire.SectionDiscussion,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bdiscussion\b`),
			regexp.MustCompile(`(?i)\b3\.2\b`),
			regexp.MustCompile(`(?i)interpr[ée]t\w+\s+(?:les\s+|des\s+)?r[ée]sultats`),
			regexp.MustCompile(`(?i)discute\w*`),
		},
	},
	{
		Section: memoire.SectionConclusion,
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bconclusion\b`),
			regexp.MustCompile(`(?i)terminer?\s+(?:le|mon)\s+m[ée]moire`),
			regexp.MustCompile(`(?i)perspectives? de recherche`),
		},
	},
}

// coarseBucket is the second, broader pass: single-keyword tests mapped
// to the five structural anchors of the outline.
type coarseBucket struct {
	Section  memoire.SectionID
	Keywords []string
}

var coarseBuckets = []coarseBucket{
	{memoire.SectionIntroduction, []string{"commenc", "démarr", "demarr", "début", "debut", "contexte"}},
	{memoire.SectionCadreTheorique, []string{"chapitre 1", "litt", "théor", "theor", "auteur"}},
	{memoire.SectionMethodologie, []string{"chapitre 2", "méthod", "method", "enquête", "enquete", "questionnaire", "terrain"}},
	{memoire.SectionResultats, []string{"chapitre 3", "résultat", "resultat", "données", "donnees", "analyse"}},
	{memoire.SectionConclusion, []string{"conclu", "terminer", "achever", "fin du"}},
}

// DetectSection maps a message onto the outline. It never fails: the
// detailed pattern table is tried first, then the coarse keyword
// buckets, and the introduction is the final default.
func DetectSection(message string) memoire.SectionID {
	for _, entry := range sectionTable {
		for _, pattern := range entry.Patterns {
			if pattern.MatchString(message) {
				return entry.Section
			}
		}
	}

	normalized := strings.ToLower(message)
	for _, bucket := range coarseBuckets {
		for _, keyword := range bucket.Keywords {
			if strings.Contains(normalized, keyword) {
				return bucket.Section
			}
		}
	}

	return memoire.SectionIntroduction
}
