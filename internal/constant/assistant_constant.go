package constant

// Placeholders returned on the conversational path, where no document
// workflow is involved.
const (
	ChatThemePlaceholder   = "Conversation"
	ChatSectionPlaceholder = "chat"

	// ThemeUnspecified is the sentinel returned when no theme can be
	// extracted from the message.
	ThemeUnspecified = "Thème non précisé"
)

// Greetings are the short salutation tokens that mark a message as
// casual chat when the whole message stays under four words.
var Greetings = []string{
	"bonjour",
	"bonsoir",
	"salut",
	"coucou",
	"hello",
	"hey",
	"hi",
	"yo",
	"merci",
	"ça va",
	"ca va",
	"bonne nuit",
	"bonne journée",
	"à bientôt",
	"au revoir",
}

// DocumentTriggers are multi-word phrases that unambiguously ask for
// document work, whatever else the message contains.
var DocumentTriggers = []string{
	"rédiger un mémoire",
	"rédiger une thèse",
	"écrire un mémoire",
	"écrire une thèse",
	"rédaction de mémoire",
	"rédaction du mémoire",
	"mon mémoire",
	"ma thèse",
	"partie théorique",
	"cadre théorique",
	"revue de littérature",
	"analyse critique",
	"travail de fin d'études",
	"projet de recherche",
}

// DocumentKeywords is the fixed academic vocabulary used by the
// keyword-count rule of the intent classifier: two or more hits mean
// the message is a document request.
var DocumentKeywords = []string{
	"mémoire",
	"memoire",
	"thèse",
	"these",
	"introduction",
	"conclusion",
	"chapitre",
	"section",
	"méthodologie",
	"methodologie",
	"littérature",
	"litterature",
	"revue",
	"synthèse",
	"synthese",
	"problématique",
	"problematique",
	"hypothèse",
	"hypothese",
	"cadre",
	"théorique",
	"theorique",
	"analyse",
	"critique",
	"résultats",
	"resultats",
	"discussion",
	"terrain",
	"matériaux",
	"materiaux",
	"enquête",
	"enquete",
	"questionnaire",
	"entretien",
	"bibliographie",
	"recherche",
	"académique",
	"academique",
	"scientifique",
	"corpus",
	"données",
	"donnees",
	"rédaction",
	"redaction",
}

// StopWords are dropped before the theme-extraction token fallback.
var StopWords = []string{
	"je", "tu", "il", "elle", "on", "nous", "vous", "ils", "elles",
	"le", "la", "les", "un", "une", "des", "du", "de", "d",
	"mon", "ma", "mes", "ton", "ta", "tes", "son", "sa", "ses",
	"ce", "cet", "cette", "ces", "que", "qui", "quoi", "dont",
	"et", "ou", "mais", "donc", "or", "ni", "car",
	"à", "a", "au", "aux", "en", "dans", "sur", "sous", "avec",
	"pour", "par", "sans", "vers", "chez", "entre",
	"est", "sont", "suis", "es", "être", "etre", "avoir", "ai", "as",
	"dois", "doit", "veux", "veut", "peux", "peut", "faut",
	"faire", "fais", "fait", "rédiger", "rediger", "écrire", "ecrire",
	"rédige", "redige", "aide", "aider", "moi", "me", "te", "se",
	"mémoire", "memoire", "thèse", "these", "sujet", "thème", "theme",
	"bonjour", "salut", "merci", "stp", "svp",
}

// ExamplePrompts is the fixed list served by the examples endpoint.
var ExamplePrompts = []string{
	"Je dois rédiger un mémoire sur l'intelligence artificielle, rédige l'introduction",
	"Thème : la transition énergétique en Afrique de l'Ouest. Commence par le cadre théorique.",
	"Passe à la synthèse de la littérature (1.2)",
	"Rédige maintenant la méthodologie du chapitre 2",
	"Présente les résultats de l'enquête au chapitre 3",
	"Écris la conclusion du mémoire",
	"Bonjour, comment ça va ?",
}
