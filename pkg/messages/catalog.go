// Package messages loads and prints the localized user-facing notices.
//
// A language file holds one block per language:
//
//	$language_id 'EN'
//	$message1 'Invalid input!'
//	...
//	$message7 'No folders found.'
//
// Only the lines following a declaration that mentions the requested id are
// read, up to the next declaration. Message text is whatever lies between the
// first and last single quote on the line.
package messages

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	ferrors "github.com/provide-io/folder-opener/pkg/errors"
	"github.com/provide-io/folder-opener/pkg/utils/lines"
)

// MessageID indexes a slot of the catalog.
type MessageID int

const (
	MsgInvalidInput MessageID = iota
	MsgFolderMissing
	MsgOpened
	MsgOpenFailed // required in the file, never printed
	MsgUnknownArgument
	MsgFolderListMissing
	MsgNoFolders

	// MessageCount is the number of slots every language must define.
	MessageCount = 7
)

const (
	languagePrefix = "$language_id"
	messagePrefix  = "$message"
)

// Catalog holds the messages of a single language.
type Catalog struct {
	Language string
	texts    [MessageCount]string
}

// NewCatalog builds a catalog from already known texts.
func NewCatalog(language string, texts [MessageCount]string) *Catalog {
	return &Catalog{Language: language, texts: texts}
}

// Text returns the message for id.
func (c *Catalog) Text(id MessageID) string {
	if id < 0 || int(id) >= MessageCount {
		return ""
	}
	return c.texts[id]
}

// MissingMessageError reports a slot left empty after loading.
type MissingMessageError struct {
	Index    int // zero-based slot
	Language string
}

func (e *MissingMessageError) Error() string {
	return fmt.Sprintf("Error! Missing message %d for language %s.", e.Index+1, e.Language)
}

func (e *MissingMessageError) Unwrap() error { return ferrors.ErrMessageMissing }

// LoadFile opens path and loads the messages for languageID.
func LoadFile(path, languageID string, logger hclog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Debug("Language file could not be opened", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s", ferrors.ErrLanguageFileMissing, path)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Debug("Failed to close language file", "path", path, "error", err)
		}
	}()

	return Load(file, languageID, logger)
}

// Load parses a language file from r and returns the catalog for languageID.
func Load(r io.Reader, languageID string, logger hclog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	catalog := &Catalog{Language: languageID}
	active := false
	lineNo := 0

	for line, err := range lines.Read(r) {
		if err != nil {
			return nil, fmt.Errorf("failed to read language file: %w", err)
		}
		lineNo++

		if strings.HasPrefix(line, languagePrefix) {
			active = strings.Contains(line, languageID)
			logger.Trace("Language declaration", "line", lineNo, "active", active)
			continue
		}
		if !active {
			continue
		}

		slot, ok := messageSlot(line)
		if !ok {
			continue
		}
		text, ok := quoted(line)
		if !ok {
			logger.Debug("Skipping message line without quoted text", "line", lineNo)
			continue
		}
		catalog.texts[slot] = text
	}

	for i, text := range catalog.texts {
		if text == "" {
			return nil, &MissingMessageError{Index: i, Language: languageID}
		}
	}

	logger.Debug("Messages loaded", "language", languageID)
	return catalog, nil
}

// messageSlot matches "$message<N>" at the start of line for N in 1..7.
func messageSlot(line string) (int, bool) {
	for n := 1; n <= MessageCount; n++ {
		if strings.HasPrefix(line, messagePrefix+strconv.Itoa(n)) {
			return n - 1, true
		}
	}
	return 0, false
}

// quoted returns the text between the first and last single quote.
func quoted(line string) (string, bool) {
	first := strings.IndexByte(line, '\'')
	last := strings.LastIndexByte(line, '\'')
	if first < 0 || last <= first {
		return "", false
	}
	return line[first+1 : last], true
}
