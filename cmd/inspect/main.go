package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const previewLength = 80

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	// Empty prefix walks the whole store, "user:" or "post:" narrows it down
	prefix := flag.String("prefix", "", "Prefix to scan")
	withIndexes := flag.Bool("indexes", false, "Also print secondary index keys")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	if *noColor {
		color.Disable()
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Size", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	counts := map[string]int{}
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())
			kind := kindOf(rawKey)

			// Index keys carry no value, the key itself is the payload
			if item.ValueSize() == 0 {
				if !*withIndexes {
					continue
				}
				counts["index"]++
				table.Append([]string{rawKey, colorKind("index"), "0", ""})
				continue
			}

			err := item.Value(func(v []byte) error {
				counts[kind]++
				table.Append([]string{rawKey, colorKind(kind), fmt.Sprint(len(v)), preview(v)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	fmt.Println()
	for kind, count := range counts {
		fmt.Printf("%s %d\n", colorKind(kind), count)
	}
}

func kindOf(key string) string {
	kind, _, found := strings.Cut(key, ":")
	if !found {
		return "unknown"
	}
	return kind
}

func colorKind(kind string) string {
	switch kind {
	case "user":
		return color.FgGreen.Render(kind)
	case "post":
		return color.FgCyan.Render(kind)
	case "view", "click":
		return color.FgYellow.Render(kind)
	case "msg":
		return color.FgMagenta.Render(kind)
	case "setting", "release":
		return color.FgBlue.Render(kind)
	case "index":
		return color.FgGray.Render(kind)
	default:
		return color.FgRed.Render(kind)
	}
}

// preview compacts a JSON value on one line and cuts it for the terminal.
func preview(v []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, v); err != nil {
		return color.FgRed.Render("<not json>")
	}
	out := buf.String()
	if r := []rune(out); len(r) > previewLength {
		return string(r[:previewLength]) + "..."
	}
	return out
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
