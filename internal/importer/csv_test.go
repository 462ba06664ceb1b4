package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStudentNames(t *testing.T) {
	csv := "Nome,Telefone\nMarina Souza,21999990000\nJoão Pedro,\n"

	names, err := ParseStudentNames(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, []string{"Marina Souza", "João Pedro"}, names)
}

func TestParseStudentNamesSkipsBlankRows(t *testing.T) {
	csv := "Telefone,Nome\n111,  Ana Clara  \n222,\n333,   \n444,Bruno\n"

	names, err := ParseStudentNames(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, []string{"Ana Clara", "Bruno"}, names)
}

func TestParseStudentNamesMissingColumn(t *testing.T) {
	csv := "Name,Phone\nMarina,123\n"

	names, err := ParseStudentNames(strings.NewReader(csv))

	assert.ErrorIs(t, err, ErrMissingNameColumn)
	assert.Nil(t, names)
}

func TestParseStudentNamesEmptyFile(t *testing.T) {
	names, err := ParseStudentNames(strings.NewReader(""))

	assert.ErrorIs(t, err, ErrEmptyFile)
	assert.Nil(t, names)
}

func TestParseStudentNamesHeaderOnly(t *testing.T) {
	names, err := ParseStudentNames(strings.NewReader("Nome\n"))

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestParseStudentNamesShortRows(t *testing.T) {
	// Rows narrower than the header must not panic nor yield names.
	csv := "Telefone,Nome\n111\n222,Carla\n"

	names, err := ParseStudentNames(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, []string{"Carla"}, names)
}
