package memoire

// SectionID identifies one of the nine fixed parts of the canonical
// mémoire outline. The set is closed; the order below defines succession.
type SectionID string

const (
	SectionIntroduction        SectionID = "introduction"
	SectionCadreTheorique      SectionID = "chapitre1_cadre_theorique"
	SectionSyntheseLitterature SectionID = "chapitre1_synthese_litterature"
	SectionAnalyseCritique     SectionID = "chapitre1_analyse_critique"
	SectionMateriauxTerrain    SectionID = "chapitre2_materiaux_terrain"
	SectionMethodologie        SectionID = "chapitre2_methodologie"
	SectionResultats           SectionID = "chapitre3_resultats"
	SectionDiscussion          SectionID = "chapitre3_discussion"
	SectionConclusion          SectionID = "conclusion"
)

// Order is the canonical document outline. It is never reordered at
// runtime: succession, detection priority and prompt transitions all
// iterate over this slice.
var Order = []SectionID{
	SectionIntroduction,
	SectionCadreTheorique,
	SectionSyntheseLitterature,
	SectionAnalyseCritique,
	SectionMateriauxTerrain,
	SectionMethodologie,
	SectionResultats,
	SectionDiscussion,
	SectionConclusion,
}

var labels = map[SectionID]string{
	SectionIntroduction:        "Introduction",
	SectionCadreTheorique:      "Chapitre 1 — Cadre théorique",
	SectionSyntheseLitterature: "Chapitre 1 — Synthèse de la littérature",
	SectionAnalyseCritique:     "Chapitre 1 — Analyse critique",
	SectionMateriauxTerrain:    "Chapitre 2 — Matériaux et terrain",
	SectionMethodologie:        "Chapitre 2 — Méthodologie",
	SectionResultats:           "Chapitre 3 — Résultats",
	SectionDiscussion:          "Chapitre 3 — Discussion",
	SectionConclusion:          "Conclusion",
}

var descriptions = map[SectionID]string{
	SectionIntroduction:        "Contexte général, problématique, objectifs et annonce du plan.",
	SectionCadreTheorique:      "Concepts clés, théories mobilisées et définitions opératoires.",
	SectionSyntheseLitterature: "État de l'art : synthèse organisée des travaux existants.",
	SectionAnalyseCritique:     "Limites et débats de la littérature, positionnement de la recherche.",
	SectionMateriauxTerrain:    "Présentation du terrain d'étude, des matériaux et des sources de données.",
	SectionMethodologie:        "Démarche méthodologique, outils de collecte et protocole d'analyse.",
	SectionResultats:           "Présentation structurée des résultats obtenus.",
	SectionDiscussion:          "Interprétation des résultats et mise en regard avec la littérature.",
	SectionConclusion:          "Bilan, réponses à la problématique, limites et perspectives.",
}

// Label returns the human-readable French title for a section.
func Label(s SectionID) string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// Description returns the one-line outline description for a section.
func Description(s SectionID) string {
	return descriptions[s]
}

// Next returns the successor of s in the canonical order. The second
// return value is false when s is the last section (or unknown).
func Next(s SectionID) (SectionID, bool) {
	for i, id := range Order {
		if id == s && i+1 < len(Order) {
			return Order[i+1], true
		}
	}
	return "", false
}
