package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"xdao.co/hashid/hashid"
)

// vectors is the conformance corpus: the RFC 1321 appendix suite plus
// project phrases.
var vectors = []struct {
	name  string
	input string
}{
	{"empty", ""},
	{"single_a", "a"},
	{"abc", "abc"},
	{"message_digest", "message digest"},
	{"alphabet", "abcdefghijklmnopqrstuvwxyz"},
	{"alphanumeric", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"},
	{"digits", strings.Repeat("1234567890", 8)},
	{"quick_fox", "The quick brown fox jumps over the lazy dog"},
	{"banana", "I'm a banana"},
	{"bugger_all", "Bugger all"},
	{"plonker", "You plonker"},
}

func main() {
	outDir := flag.String("out", filepath.Join("testdata", "conformance", "hashid", "v1"), "Output directory")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}
	for _, v := range vectors {
		// Inputs carry no trailing newline so the digest covers exactly the
		// vector text.
		if err := os.WriteFile(filepath.Join(*outDir, v.name+".txt"), []byte(v.input), 0644); err != nil {
			panic(err)
		}
		digest := hashid.Sum([]byte(v.input)).Hex()
		if err := os.WriteFile(filepath.Join(*outDir, v.name+".md5"), []byte(digest+"\n"), 0644); err != nil {
			panic(err)
		}
		fmt.Printf("%s  %s\n", digest, v.name)
	}
}
