package messages

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/provide-io/folder-opener/pkg/errors"
)

const twoLanguages = `$language_id 'EN'
$message1 'Invalid input!'
$message2 'Folder does not exist:'
$message3 'Opened folder:'
$message4 'Could not open folder:'
$message5 'Unrecognized argument:'
$message6 'Folder list not found.'
$message7 'No folders found.'

$language_id 'DE'
$message1 'Ungültige Eingabe!'
$message2 'Ordner existiert nicht:'
$message3 'Ordner geöffnet:'
$message4 'Ordner konnte nicht geöffnet werden:'
$message5 'Unbekanntes Argument:'
$message6 'Ordnerliste nicht gefunden.'
$message7 'Keine Ordner gefunden.'
`

func testLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "messages_test",
		Level: hclog.Trace,
	})
}

func texts(c *Catalog) []string {
	out := make([]string, 0, MessageCount)
	for i := 0; i < MessageCount; i++ {
		out = append(out, c.Text(MessageID(i)))
	}
	return out
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		language string
		expected []string
	}{
		{
			name:     "first block",
			input:    twoLanguages,
			language: "EN",
			expected: []string{
				"Invalid input!",
				"Folder does not exist:",
				"Opened folder:",
				"Could not open folder:",
				"Unrecognized argument:",
				"Folder list not found.",
				"No folders found.",
			},
		},
		{
			name:     "second block",
			input:    twoLanguages,
			language: "DE",
			expected: []string{
				"Ungültige Eingabe!",
				"Ordner existiert nicht:",
				"Ordner geöffnet:",
				"Ordner konnte nicht geöffnet werden:",
				"Unbekanntes Argument:",
				"Ordnerliste nicht gefunden.",
				"Keine Ordner gefunden.",
			},
		},
		{
			name: "text between first and last quote",
			input: "$language_id 'EN'\n" +
				"$message1 'it's fine'\n" +
				"$message2 'b'\n$message3 'c'\n$message4 'd'\n$message5 'e'\n$message6 'f'\n$message7 'g'\n",
			language: "EN",
			expected: []string{"it's fine", "b", "c", "d", "e", "f", "g"},
		},
		{
			name: "later line wins within a block",
			input: "$language_id 'EN'\n" +
				"$message1 'old'\n$message1 'new'\n" +
				"$message2 'b'\n$message3 'c'\n$message4 'd'\n$message5 'e'\n$message6 'f'\n$message7 'g'\n",
			language: "EN",
			expected: []string{"new", "b", "c", "d", "e", "f", "g"},
		},
		{
			name: "later block for the same id overwrites",
			input: "$language_id 'EN'\n" +
				"$message1 'a'\n$message2 'b'\n$message3 'c'\n$message4 'd'\n$message5 'e'\n$message6 'f'\n$message7 'g'\n" +
				"$language_id 'FR'\n$message1 'ignored'\n" +
				"$language_id 'EN'\n$message7 'last'\n",
			language: "EN",
			expected: []string{"a", "b", "c", "d", "e", "f", "last"},
		},
		{
			name: "windows line endings",
			input: strings.ReplaceAll(
				"$language_id 'EN'\n$message1 'a'\n$message2 'b'\n$message3 'c'\n$message4 'd'\n$message5 'e'\n$message6 'f'\n$message7 'g'\n",
				"\n", "\r\n"),
			language: "EN",
			expected: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
		{
			name: "language id matched as substring",
			input: "$language_id 'EN-US'\n" +
				"$message1 'a'\n$message2 'b'\n$message3 'c'\n$message4 'd'\n$message5 'e'\n$message6 'f'\n$message7 'g'\n",
			language: "EN",
			expected: []string{"a", "b", "c", "d", "e", "f", "g"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := Load(strings.NewReader(tt.input), tt.language, testLogger())
			require.NoError(t, err)
			assert.Equal(t, tt.language, catalog.Language)
			if diff := cmp.Diff(tt.expected, texts(catalog)); diff != "" {
				t.Errorf("Load(%s) mismatch (-want +got):\n%s", tt.language, diff)
			}
		})
	}
}

func TestLoadMissingMessages(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		language  string
		wantIndex int
	}{
		{
			name:      "unknown language",
			input:     twoLanguages,
			language:  "BOGUS",
			wantIndex: 0,
		},
		{
			name: "one message absent",
			input: "$language_id 'EN'\n" +
				"$message1 'a'\n$message2 'b'\n$message3 'c'\n$message5 'e'\n$message6 'f'\n$message7 'g'\n",
			language:  "EN",
			wantIndex: 3,
		},
		{
			name: "messages outside the active block are ignored",
			input: "$message1 'stray'\n" +
				"$language_id 'EN'\n" +
				"$message2 'b'\n$message3 'c'\n$message4 'd'\n$message5 'e'\n$message6 'f'\n$message7 'g'\n",
			language:  "EN",
			wantIndex: 0,
		},
		{
			name: "empty quoted text counts as missing",
			input: "$language_id 'EN'\n" +
				"$message1 'a'\n$message2 ''\n$message3 'c'\n$message4 'd'\n$message5 'e'\n$message6 'f'\n$message7 'g'\n",
			language:  "EN",
			wantIndex: 1,
		},
		{
			name: "unquoted message line skipped",
			input: "$language_id 'EN'\n" +
				"$message1 'a'\n$message2 'b'\n$message3 'c'\n$message4 'd'\n$message5 'e'\n$message6 'f'\n$message7 no quotes\n",
			language:  "EN",
			wantIndex: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := Load(strings.NewReader(tt.input), tt.language, testLogger())
			require.Error(t, err)
			assert.Nil(t, catalog)
			assert.ErrorIs(t, err, ferrors.ErrMessageMissing)

			var missing *MissingMessageError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.wantIndex, missing.Index)
			assert.Equal(t, tt.language, missing.Language)
		})
	}
}

func TestMissingMessageErrorText(t *testing.T) {
	err := &MissingMessageError{Index: 4, Language: "FR"}
	assert.Equal(t, "Error! Missing message 5 for language FR.", err.Error())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folder_opener.languages")
	require.NoError(t, os.WriteFile(path, []byte(twoLanguages), 0644))

	catalog, err := LoadFile(path, "DE", testLogger())
	require.NoError(t, err)
	assert.Equal(t, "Keine Ordner gefunden.", catalog.Text(MsgNoFolders))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.languages"), "EN", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ferrors.ErrLanguageFileMissing)
}

func TestCatalogTextOutOfRange(t *testing.T) {
	catalog := NewCatalog("EN", [MessageCount]string{"a", "b", "c", "d", "e", "f", "g"})
	assert.Equal(t, "", catalog.Text(MessageID(-1)))
	assert.Equal(t, "", catalog.Text(MessageID(MessageCount)))
	assert.Equal(t, "g", catalog.Text(MsgNoFolders))
}
