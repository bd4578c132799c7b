package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/cloudcentricdev/coursecli/catalog"

	"github.com/fatih/color"
)

var (
	menuColor = color.New(color.FgHiCyan)
	rowColor  = color.New(color.FgHiYellow)
)

type CLI struct {
	scanner *bufio.Scanner
	out     io.Writer
	courses catalog.Catalog
}

// NewCLI returns a shell reading from s and writing to out. The catalog
// starts empty until the user loads a file.
func NewCLI(s *bufio.Scanner, out io.Writer) *CLI {
	return &CLI{scanner: s, out: out, courses: catalog.NewCatalog()}
}

// Start runs the menu loop until the user exits or input is exhausted.
func (c *CLI) Start() {
	for {
		c.printMenu()
		if !c.scanner.Scan() {
			return
		}
		if !c.processChoice(c.scanner.Text()) {
			return
		}
	}
}

func (c *CLI) printMenu() {
	menuColor.Fprintln(c.out, "Menu:")
	fmt.Fprintln(c.out, "  1. Load file")
	fmt.Fprintln(c.out, "  2. Print course list")
	fmt.Fprintln(c.out, "  3. Search for course")
	fmt.Fprintln(c.out, "  9. Exit")
	fmt.Fprint(c.out, "Enter your choice: ")
}

// processChoice dispatches a single menu selection. It returns false when
// the session should end.
func (c *CLI) processChoice(line string) bool {
	choice, ok := parseChoice(line)
	if !ok {
		c.printInvalidChoice()
		return true
	}

	switch choice {
	case 1:
		c.processLoadCommand()
	case 2:
		c.processListCommand()
	case 3:
		c.processSearchCommand()
	case 9:
		fmt.Fprintln(c.out, "Goodbye!")
		return false
	default:
		c.printInvalidChoice()
	}
	return true
}

// parseChoice converts one line of menu input into an integer choice.
// Anything that does not parse as an integer is an invalid choice.
func parseChoice(line string) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	return choice, true
}

func (c *CLI) printInvalidChoice() {
	fmt.Fprintln(c.out, "Invalid choice. Please try again.")
}

// processLoadCommand replaces the current catalog with the contents of a
// user-supplied file, then reports any dangling prerequisite. The catalog
// stays loaded and usable even when validation fails.
func (c *CLI) processLoadCommand() {
	fmt.Fprint(c.out, "Enter file path to load: ")
	if !c.scanner.Scan() {
		return
	}
	c.courses = catalog.LoadFile(c.scanner.Text())

	if err := c.courses.Validate(); err != nil {
		log.Printf("Error: %v.", err)
	}
}

func (c *CLI) processListCommand() {
	fmt.Fprintln(c.out, "Courses in the Computer Science department:")
	for _, number := range c.courses.SortedNumbers() {
		course := c.courses[number]
		rowColor.Fprintf(c.out, "%s: %s\n", course.Number, course.Title)
	}
}

func (c *CLI) processSearchCommand() {
	fmt.Fprint(c.out, "Enter course number to search: ")
	if !c.scanner.Scan() {
		return
	}
	fields := strings.Fields(c.scanner.Text())
	if len(fields) < 1 {
		log.Print("Error: no course number given.")
		return
	}

	course, err := c.courses.Get(fields[0])
	if err != nil {
		log.Printf(`Error: course "%s" not found.`, fields[0])
		return
	}

	prereqs := "None"
	if len(course.Prerequisites) > 0 {
		prereqs = strings.Join(course.Prerequisites, " ")
	}
	fmt.Fprintf(c.out, "Course Number: %s\n", course.Number)
	fmt.Fprintf(c.out, "Course Title: %s\n", course.Title)
	fmt.Fprintf(c.out, "Prerequisites: %s\n", prereqs)
}
