package cmd

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	dqerrors "github.com/docuflow/docquery/internal/errors"
	"github.com/docuflow/docquery/internal/expand"
)

// documentExtensions are the plain-text files picked up from a corpus
// directory.
var documentExtensions = map[string]string{
	".txt": "text",
	".md":  "markdown",
}

// loadDocuments reads a corpus from path: either a JSON file holding an
// array of documents, or a directory of .txt/.md files where the file name
// becomes the title.
func loadDocuments(path string) ([]expand.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, dqerrors.New(dqerrors.ErrCodeFileNotFound,
			fmt.Sprintf("corpus path %s not found", path), err).
			WithSuggestion("pass a JSON documents file or a directory of .txt/.md files")
	}

	if info.IsDir() {
		return loadDocumentDir(path)
	}
	return loadDocumentFile(path)
}

func loadDocumentFile(path string) ([]expand.Document, error) {
	if strings.ToLower(filepath.Ext(path)) != ".json" {
		return nil, dqerrors.ValidationError(
			fmt.Sprintf("unsupported corpus file %s: expected .json or a directory", path), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dqerrors.Wrap(dqerrors.ErrCodeFileUnreadable, err).WithDetail("path", path)
	}

	var docs []expand.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, dqerrors.New(dqerrors.ErrCodeDocumentParse,
			fmt.Sprintf("invalid documents JSON in %s: %v", path, err), err)
	}
	return docs, nil
}

func loadDocumentDir(dir string) ([]expand.Document, error) {
	var docs []expand.Document

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}

		docType, ok := documentExtensions[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return dqerrors.Wrap(dqerrors.ErrCodeFileUnreadable, err).WithDetail("path", path)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		name := d.Name()
		title := strings.TrimSuffix(name, filepath.Ext(name))

		docs = append(docs, expand.Document{
			ID:      rel,
			Title:   title,
			Content: string(data),
			Type:    docType,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, dqerrors.New(dqerrors.ErrCodeEmptyCorpus,
			fmt.Sprintf("no .txt or .md documents under %s", dir), nil)
	}
	return docs, nil
}
