package moderation

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/samber/lo"
)

//go:embed censored/*.txt
var censoredFolder embed.FS

// CensoredData carries the result of the loading process including metadata for logging.
type CensoredData struct {
	Words     []string
	Languages []string
}

// LoadEmbedded reads the word lists shipped with the binary.
func LoadEmbedded() (*CensoredData, error) {
	return LoadAll(censoredFolder, "censored")
}

// LoadAll reads every .txt file of the directory as one language list.
// Words are lower-cased and deduplicated across languages, lines starting with # are comments.
func LoadAll(fsys fs.FS, path string) (*CensoredData, error) {
	entries, err := fs.ReadDir(fsys, path)
	if err != nil {
		return nil, err
	}

	var languages []string
	uniqueWords := make(map[string]struct{})

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		// "fr.txt" -> "fr"
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, path+"/"+entry.Name())
		if err != nil {
			return nil, err
		}

		// The scanner handles \n and \r\n alike
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			uniqueWords[strings.ToLower(line)] = struct{}{}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	if len(uniqueWords) == 0 {
		return nil, fmt.Errorf("no censored words found in %s", path)
	}

	words := lo.Keys(uniqueWords)
	sort.Strings(words)
	sort.Strings(languages)
	return &CensoredData{Words: words, Languages: languages}, nil
}
