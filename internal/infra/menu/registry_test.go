package menu

import (
	"testing"

	"github.com/runoshun/jira-clean-copy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndRun(t *testing.T) {
	r := NewRegistry()
	var ran []string

	require.NoError(t, r.Register("Copy as Markdown", func() { ran = append(ran, "md") }))
	require.NoError(t, r.Register("Copy as Summary", func() { ran = append(ran, "plain") }))

	assert.Equal(t, []string{"Copy as Markdown", "Copy as Summary"}, r.Commands())

	require.NoError(t, r.Run("Copy as Summary"))
	require.NoError(t, r.Run("Copy as Markdown"))
	assert.Equal(t, []string{"plain", "md"}, ran)
}

func TestRegistry_DuplicateLabel(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("Copy as Markdown", func() {}))

	err := r.Register("Copy as Markdown", func() {})

	require.ErrorIs(t, err, domain.ErrDuplicateLabel)
	assert.Len(t, r.Commands(), 1)
}

func TestRegistry_NilCallback(t *testing.T) {
	r := NewRegistry()

	err := r.Register("x", nil)

	require.Error(t, err)
	assert.Empty(t, r.Commands())
}

func TestRegistry_RunUnknown(t *testing.T) {
	r := NewRegistry()

	err := r.Run("Copy as Branch")

	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
}

func TestRegistry_CommandsReturnsCopy(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("a", func() {}))

	cmds := r.Commands()
	cmds[0] = "mutated"

	assert.Equal(t, []string{"a"}, r.Commands())
}

func TestRegistry_CallbackMayReenter(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("list", func() { _ = r.Commands() }))

	assert.NoError(t, r.Run("list"))
}
