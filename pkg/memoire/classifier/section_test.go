package classifier

import (
	"testing"

	"ai-memoire-be/pkg/memoire"
)

func TestDetectSection(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    memoire.SectionID
	}{
		{
			name:    "explicit introduction",
			message: "Rédige l'introduction",
			want:    memoire.SectionIntroduction,
		},
		{
			name:    "problematique maps to introduction",
			message: "Aide-moi à formuler la problématique",
			want:    memoire.SectionIntroduction,
		},
		{
			name:    "cadre theorique",
			message: "Thème : la transition énergétique. Commence par le cadre théorique.",
			want:    memoire.SectionCadreTheorique,
		},
		{
			name:    "synthese with outline number",
			message: "Passe à la synthèse de la littérature (1.2)",
			want:    memoire.SectionSyntheseLitterature,
		},
		{
			name:    "etat de l'art",
			message: "Fais un état de l'art",
			want:    memoire.SectionSyntheseLitterature,
		},
		{
			name:    "analyse critique",
			message: "Passe à l'analyse critique des travaux existants",
			want:    memoire.SectionAnalyseCritique,
		},
		{
			name:    "terrain d'etude",
			message: "Présentation du terrain d'étude",
			want:    memoire.SectionMateriauxTerrain,
		},
		{
			name:    "methodologie du chapitre 2",
			message: "Rédige maintenant la méthodologie du chapitre 2",
			want:    memoire.SectionMethodologie,
		},
		{
			name:    "presentation des resultats",
			message: "Présente les résultats de l'enquête au chapitre 3",
			want:    memoire.SectionResultats,
		},
		{
			name:    "interpretation with outline number",
			message: "Interprète les résultats (3.2)",
			want:    memoire.SectionDiscussion,
		},
		{
			name:    "conclusion",
			message: "Écris la conclusion du mémoire",
			want:    memoire.SectionConclusion,
		},
		{
			name:    "coarse chapter 3 bucket",
			message: "On attaque le chapitre 3 maintenant",
			want:    memoire.SectionResultats,
		},
		{
			name:    "coarse start bucket",
			message: "Aide-moi à commencer",
			want:    memoire.SectionIntroduction,
		},
		{
			name:    "coarse ending bucket",
			message: "C'est la fin du travail",
			want:    memoire.SectionConclusion,
		},
		{
			name:    "unknown message defaults to introduction",
			message: "blabla quelconque",
			want:    memoire.SectionIntroduction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSection(tt.message); got != tt.want {
				t.Errorf("DetectSection(%q) = %s, want %s", tt.message, got, tt.want)
			}
		})
	}
}

func TestDetectSectionOutlineOrderWins(t *testing.T) {
	// Both the resultats and conclusion patterns match; the earlier
	// outline position wins.
	message := "Présente les résultats avant la conclusion"
	if got := DetectSection(message); got != memoire.SectionResultats {
		t.Errorf("DetectSection(%q) = %s, want %s", message, got, memoire.SectionResultats)
	}
}

func TestDetectSectionDeterministic(t *testing.T) {
	for _, message := range []string{
		"Rédige l'introduction",
		"cadre théorique et revue de littérature",
		"On attaque le chapitre 3 maintenant",
	} {
		first := DetectSection(message)
		for i := 0; i < 5; i++ {
			if got := DetectSection(message); got != first {
				t.Fatalf("DetectSection(%q) not deterministic: %s then %s", message, first, got)
			}
		}
	}
}
