// Package catalog implements an in-memory course catalog keyed by course
// number, loaded from comma-delimited text files.
package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
)

var ErrCourseNotFound = errors.New("course not found")

// DanglingPrerequisiteError reports a prerequisite that no course defines.
type DanglingPrerequisiteError struct {
	Course       string
	Prerequisite string
}

func (e *DanglingPrerequisiteError) Error() string {
	return fmt.Sprintf(`prerequisite "%s" does not exist as a course`, e.Prerequisite)
}

type Course struct {
	Number        string
	Title         string
	Prerequisites []string
}

// Catalog maps course numbers to courses. Iteration order is undefined;
// ordering is applied at display time only.
type Catalog map[string]Course

func NewCatalog() Catalog {
	return Catalog{}
}

// Load reads one course record per line from r. Fields are the exact
// substrings between commas, kept verbatim (no quoting, no trimming).
// A line with fewer than 2 fields is logged and skipped. A duplicate
// course number silently overwrites the earlier record.
func Load(r io.Reader) Catalog {
	c := NewCatalog()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ",")
		if len(fields) < 2 {
			log.Printf("Error: skipping line with fewer than 2 fields: %q", scanner.Text())
			continue
		}
		c[fields[0]] = Course{
			Number:        fields[0],
			Title:         fields[1],
			Prerequisites: fields[2:],
		}
	}
	return c
}

// LoadFile loads the course file at path. An unreadable path is reported
// and yields an empty catalog rather than an error.
func LoadFile(path string) Catalog {
	f, err := os.Open(path)
	if err != nil {
		log.Printf(`Error: unable to open course file "%s".`, path)
		return NewCatalog()
	}
	defer f.Close()

	return Load(f)
}

// Validate checks that every prerequisite of every course resolves to a
// course defined in the catalog. It stops at the first dangling reference;
// which one that is depends on map iteration order.
func (c Catalog) Validate() error {
	numbers := make(map[string]struct{}, len(c))
	for number := range c {
		numbers[number] = struct{}{}
	}

	for _, course := range c {
		for _, prereq := range course.Prerequisites {
			if _, ok := numbers[prereq]; !ok {
				return &DanglingPrerequisiteError{Course: course.Number, Prerequisite: prereq}
			}
		}
	}
	return nil
}

// Get performs an exact-match lookup by course number.
func (c Catalog) Get(number string) (Course, error) {
	course, ok := c[number]
	if !ok {
		return Course{}, fmt.Errorf(`%w: "%s"`, ErrCourseNotFound, number)
	}
	return course, nil
}

// SortedNumbers returns every course number in lexicographic order.
func (c Catalog) SortedNumbers() []string {
	numbers := make([]string, 0, len(c))
	for number := range c {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	return numbers
}
