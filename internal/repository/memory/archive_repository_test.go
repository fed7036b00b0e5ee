package memory

import (
	"testing"

	"ai-memoire-be/pkg/memoire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRepository_SaveAndGet(t *testing.T) {
	repo := NewArchiveRepository()

	repo.Save("Intelligence artificielle", memoire.SectionIntroduction, "texte d'introduction")

	text, ok := repo.Get("Intelligence artificielle", memoire.SectionIntroduction)
	require.True(t, ok)
	assert.Equal(t, "texte d'introduction", text)

	_, ok = repo.Get("Intelligence artificielle", memoire.SectionConclusion)
	assert.False(t, ok)
	_, ok = repo.Get("Autre thème", memoire.SectionIntroduction)
	assert.False(t, ok)
}

func TestArchiveRepository_SaveOverwrites(t *testing.T) {
	repo := NewArchiveRepository()

	repo.Save("Intelligence artificielle", memoire.SectionIntroduction, "première version")
	repo.Save("Intelligence artificielle", memoire.SectionIntroduction, "seconde version")

	text, ok := repo.Get("Intelligence artificielle", memoire.SectionIntroduction)
	require.True(t, ok)
	assert.Equal(t, "seconde version", text)

	assert.Len(t, repo.GetAll("Intelligence artificielle"), 1)
}

func TestArchiveRepository_GetAllReturnsCopy(t *testing.T) {
	repo := NewArchiveRepository()
	repo.Save("Intelligence artificielle", memoire.SectionIntroduction, "texte")

	all := repo.GetAll("Intelligence artificielle")
	all[memoire.SectionConclusion] = "injecté"

	assert.Len(t, repo.GetAll("Intelligence artificielle"), 1)
}

func TestArchiveRepository_GetAllEmptyTheme(t *testing.T) {
	repo := NewArchiveRepository()
	assert.Empty(t, repo.GetAll("thème inconnu"))
}
