package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudcentricdev/coursecli/cli"

	"github.com/go-faker/faker/v4"
)

const demoFile = "demo/courses.txt"

var shouldSeed *bool
var seedNumRecords *int

func main() {
	setupFlags()

	if *shouldSeed {
		seedDemoCourseFile()
	}

	scanner := bufio.NewScanner(os.Stdin)
	shell := cli.NewCLI(scanner, os.Stdout)
	shell.Start()
}

func setupFlags() {
	shouldSeed = flag.Bool("seed", false, "Write a demo course file using records created with go-faker.")
	seedNumRecords = flag.Int("records", 20, "Amount of records to write into the demo course file.")
	flag.Usage = func() {
		fmt.Println("\nCourse Catalog CLI\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}

// seedDemoCourseFile writes a course file whose prerequisites only reference
// earlier records, so the generated catalog always validates cleanly.
func seedDemoCourseFile() {
	if err := os.MkdirAll(filepath.Dir(demoFile), 0o755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(demoFile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	defined := make([]string, 0, *seedNumRecords)
	for i := 0; i < *seedNumRecords; i++ {
		number := fmt.Sprintf("CS%d", 100+i*5)
		record := append([]string{number, faker.Word() + " " + faker.Word()}, pickPrerequisites(defined)...)
		if _, err = fmt.Fprintln(f, strings.Join(record, ",")); err != nil {
			log.Fatal(err)
		}
		defined = append(defined, number)
	}
	log.Printf(`Seeded "%s" with %d records.`, demoFile, *seedNumRecords)
}

func pickPrerequisites(defined []string) []string {
	count := rand.Intn(3) // up to two prerequisites per course
	if count > len(defined) {
		count = len(defined)
	}
	if count == 0 {
		return nil
	}

	prereqs := make([]string, 0, count)
	for _, idx := range rand.Perm(len(defined))[:count] {
		prereqs = append(prereqs, defined[idx])
	}
	return prereqs
}
