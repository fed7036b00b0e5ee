package prompt

import (
	"fmt"
	"strings"

	"ai-memoire-be/internal/constant"
	"ai-memoire-be/pkg/memoire"
)

// ArchiveReader is the read-only view of the document archive the
// builder consumes. The builder never writes.
type ArchiveReader interface {
	GetAll(theme string) map[memoire.SectionID]string
}

// Builder assembles the full generation request for one section:
// prior section texts, the fixed methodology, the section instruction,
// user-supplied context and the closing directives. Deterministic
// string assembly, no I/O.
type Builder struct {
	archive ArchiveReader
}

func NewBuilder(archive ArchiveReader) *Builder {
	return &Builder{archive: archive}
}

func (b *Builder) Build(theme string, section memoire.SectionID, userContext string) string {
	var prompt strings.Builder

	b.writePriorSections(&prompt, theme)
	b.writeMethodology(&prompt)
	b.writeSectionInstruction(&prompt, section, theme)
	b.writeUserContext(&prompt, userContext)
	b.writeDirectives(&prompt, theme, section)

	return prompt.String()
}

func (b *Builder) writePriorSections(prompt *strings.Builder, theme string) {
	archived := b.archive.GetAll(theme)
	if len(archived) == 0 {
		return
	}

	prompt.WriteString("<sections_deja_redigees>\n")
	// Outline order keeps the context readable and the output stable
	for _, section := range memoire.Order {
		text, ok := archived[section]
		if !ok {
			continue
		}
		prompt.WriteString(fmt.Sprintf("--- %s ---\n", memoire.Label(section)))
		prompt.WriteString(text)
		prompt.WriteString("\n\n")
	}
	prompt.WriteString("</sections_deja_redigees>\n\n")
}

func (b *Builder) writeMethodology(prompt *strings.Builder) {
	prompt.WriteString("<methodologie>\n")
	prompt.WriteString(constant.MethodologyText)
	prompt.WriteString("\n</methodologie>\n\n")
}

func (b *Builder) writeSectionInstruction(prompt *strings.Builder, section memoire.SectionID, theme string) {
	instruction, ok := constant.SectionInstructions[section]
	if !ok {
		// Unreachable with the closed section set, handled all the same
		instruction = constant.GenericSectionInstruction
	}

	prompt.WriteString("<consigne>\n")
	prompt.WriteString(fmt.Sprintf("Thème du mémoire : %s\n\n", theme))
	prompt.WriteString(instruction)
	prompt.WriteString("\n</consigne>\n\n")
}

func (b *Builder) writeUserContext(prompt *strings.Builder, userContext string) {
	if strings.TrimSpace(userContext) == "" {
		return
	}
	prompt.WriteString("<contexte_utilisateur>\n")
	prompt.WriteString(userContext)
	prompt.WriteString("\n</contexte_utilisateur>\n\n")
}

func (b *Builder) writeDirectives(prompt *strings.Builder, theme string, section memoire.SectionID) {
	prompt.WriteString(constant.BrainstormDirective)
	prompt.WriteString("\n\n")
	prompt.WriteString(constant.QualityRequirements)
	prompt.WriteString("\n\nDirectives finales :\n")
	prompt.WriteString(fmt.Sprintf("- rédige uniquement la section demandée (%s), sans déborder sur les autres ;\n", memoire.Label(section)))
	prompt.WriteString(fmt.Sprintf("- fais référence au thème « %s » de manière concrète tout au long du texte ;\n", theme))
	if next, ok := memoire.Next(section); ok {
		prompt.WriteString(fmt.Sprintf("- termine par une phrase de transition vers la section suivante (%s).\n", memoire.Label(next)))
	} else {
		prompt.WriteString("- termine par une phrase qui clôt définitivement le document.\n")
	}
}
