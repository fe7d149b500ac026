//go:build ci

package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
)

const dist = "/tmp/umldraw"

func main() {
	args := givenArgs()
	for _, target := range args {
		switch target {
		case "build":
			sh("go", "build", "./...")

		case "test":
			sh("go", "test", "./...")

		case "docs":
			// writes svg files next to the docs package
			sh("go", "test", "-run", "Test_generateDiagram", "./docs")

		case "dist":
			os.MkdirAll(dist, 0755)
			f := filepath.Join(dist, "release_notes.txt")
			os.WriteFile(f, releaseNotes(), 0644)
			for _, svg := range []string{"design.svg", "draw_sequence.svg", "palette.svg"} {
				copyFile(filepath.Join(dist, svg), filepath.Join("docs", svg))
			}

		case "clear":
			os.RemoveAll(dist)

		case "release-notes":
			fmt.Println(string(releaseNotes()))

		default:
			fmt.Fprint(os.Stderr, "unknown target:", target)
			os.Exit(1)
		}
	}
}

func givenArgs() []string {
	args := slices.Clone(os.Args[1:])
	if len(args) == 0 {
		args = append(args, "build", "test", "docs")
	}
	return args
}

func sh(app string, args ...string) {
	c := exec.Command(app, args...)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		os.Exit(1)
	}
}

func copyFile(dst, src string) {
	data, err := os.ReadFile(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	os.WriteFile(dst, data, 0644)
}

// releaseNotes returns top changelog section
func releaseNotes() []byte {
	h2 := []byte("## [")
	from := bytes.Index(changelog, h2)
	to := bytes.Index(changelog[from+len(h2):], h2) + len(h2)
	notes := changelog[from:]
	if to > 0 {
		notes = changelog[from : from+to]
	}
	return bytes.TrimSpace(notes)
}

//go:embed changelog.md
var changelog []byte
