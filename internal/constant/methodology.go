package constant

import "ai-memoire-be/pkg/memoire"

// MethodologyText is the fixed methodology document embedded in every
// generation prompt. It describes the canonical nine-section structure
// of the mémoire and the expectations attached to each part.
const MethodologyText = `MÉTHODOLOGIE DE RÉDACTION DU MÉMOIRE

Le document suit une structure canonique en neuf sections, dans cet ordre :

1. INTRODUCTION
   - Contexte général du sujet et justification du choix du thème
   - Problématique formulée sous forme de question centrale
   - Objectifs de recherche (objectif général, objectifs spécifiques)
   - Hypothèses de travail
   - Annonce du plan

2. CHAPITRE 1 — CADRE THÉORIQUE (1.1)
   - Définition des concepts clés du sujet
   - Présentation des théories mobilisées et de leurs auteurs
   - Articulation des concepts avec la problématique

3. CHAPITRE 1 — SYNTHÈSE DE LA LITTÉRATURE (1.2)
   - Recension organisée des travaux antérieurs (thématique ou chronologique)
   - Mise en évidence des convergences et divergences entre auteurs
   - Identification des acquis de la recherche sur le sujet

4. CHAPITRE 1 — ANALYSE CRITIQUE (1.3)
   - Limites méthodologiques et conceptuelles des travaux recensés
   - Lacunes et zones d'ombre de la littérature
   - Positionnement de la présente recherche par rapport à ces limites

5. CHAPITRE 2 — MATÉRIAUX ET TERRAIN (2.1)
   - Présentation du terrain d'étude (localisation, caractéristiques, population)
   - Description des matériaux et des sources de données
   - Justification du choix du terrain au regard de la problématique

6. CHAPITRE 2 — MÉTHODOLOGIE (2.2)
   - Démarche adoptée (qualitative, quantitative ou mixte) et justification
   - Outils de collecte (questionnaire, entretien, observation, corpus documentaire)
   - Échantillonnage, déroulement de la collecte et méthode d'analyse des données

7. CHAPITRE 3 — RÉSULTATS (3.1)
   - Présentation structurée des résultats, sans interprétation
   - Organisation par hypothèse ou par axe d'analyse
   - Renvoi explicite aux données collectées

8. CHAPITRE 3 — DISCUSSION (3.2)
   - Interprétation des résultats au regard des hypothèses
   - Confrontation avec la littérature présentée au chapitre 1
   - Portée et limites des résultats obtenus

9. CONCLUSION
   - Rappel de la problématique et de la démarche
   - Synthèse des principaux résultats et réponse à la question centrale
   - Limites de l'étude et perspectives de recherche

Exigences transversales : registre académique soutenu, paragraphes argumentés,
transitions explicites entre les idées, ancrage systématique dans le thème
traité, citations d'auteurs plausibles introduites dans le corps du texte.`

// SectionInstructions carries the per-section drafting instruction
// injected by the prompt builder. GenericSectionInstruction covers any
// id outside the map; the section set is closed so it should never be
// needed, but the builder falls back to it all the same.
var SectionInstructions = map[memoire.SectionID]string{
	memoire.SectionIntroduction: `Rédige l'INTRODUCTION du mémoire : amène le sujet à partir d'un contexte
général, formule une problématique claire sous forme de question, énonce
l'objectif général puis deux ou trois objectifs spécifiques, propose des
hypothèses de travail et termine par l'annonce du plan en trois chapitres.`,

	memoire.SectionCadreTheorique: `Rédige la section 1.1 CADRE THÉORIQUE : définis précisément les concepts
clés du thème, présente les théories qui permettent de les articuler avec
la problématique et attribue chaque théorie à ses auteurs de référence.`,

	memoire.SectionSyntheseLitterature: `Rédige la section 1.2 SYNTHÈSE DE LA LITTÉRATURE : organise la recension
des travaux antérieurs par axes thématiques, fais dialoguer les auteurs en
soulignant convergences et divergences, et dégage les acquis de la
recherche sur le thème.`,

	memoire.SectionAnalyseCritique: `Rédige la section 1.3 ANALYSE CRITIQUE : relève les limites
méthodologiques et conceptuelles des travaux recensés, identifie les
lacunes de la littérature et montre en quoi la présente recherche entend
les combler.`,

	memoire.SectionMateriauxTerrain: `Rédige la section 2.1 MATÉRIAUX ET TERRAIN : décris le terrain d'étude
(localisation, caractéristiques, population concernée), présente les
matériaux et sources de données mobilisés et justifie ces choix au regard
de la problématique.`,

	memoire.SectionMethodologie: `Rédige la section 2.2 MÉTHODOLOGIE : expose la démarche retenue
(qualitative, quantitative ou mixte) et justifie-la, détaille les outils de
collecte, l'échantillonnage, le déroulement de la collecte et la méthode
d'analyse des données.`,

	memoire.SectionResultats: `Rédige la section 3.1 RÉSULTATS : présente les résultats de manière
structurée, par hypothèse ou par axe d'analyse, en renvoyant explicitement
aux données collectées et sans les interpréter à ce stade.`,

	memoire.SectionDiscussion: `Rédige la section 3.2 DISCUSSION : interprète les résultats au regard des
hypothèses, confronte-les aux travaux présentés au chapitre 1 et discute la
portée comme les limites de ce qui a été obtenu.`,

	memoire.SectionConclusion: `Rédige la CONCLUSION : rappelle la problématique et la démarche suivie,
synthétise les principaux résultats en répondant à la question centrale,
puis ouvre sur les limites de l'étude et les perspectives de recherche.`,
}

const GenericSectionInstruction = `Développe cette section du mémoire de façon structurée et argumentée, en
cohérence avec la méthodologie ci-dessus.`

// BrainstormDirective precedes the writing itself.
const BrainstormDirective = `Avant de rédiger, réfléchis (sans l'écrire) aux idées directrices de la
section : arguments principaux, enchaînement logique, exemples concrets
liés au thème. Rédige ensuite directement le texte final.`

// QualityRequirements are the explicit writing-quality constraints.
const QualityRequirements = `Exigences de rédaction :
- registre académique soutenu, à la troisième personne ;
- paragraphes développés et articulés par des transitions explicites ;
- contenu concret, ancré dans le thème traité, jamais générique ;
- longueur substantielle (la section doit être exploitable telle quelle).`
