package panel

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/carmegar/blogpage/pkg/cli"
	"github.com/carmegar/blogpage/pkg/portal"
)

const menuWidth = 44

type Menu struct {
	Reader    *bufio.Reader
	Validator *portal.Validator
	choice    int
}

// PostInput carries the remote markdown location captured from the panel.
// Only https sources are accepted.
type PostInput struct {
	Url string `validate:"required,url,startswith=https"`
}

func MakeMenu() Menu {
	return Menu{
		Reader:    bufio.NewReader(os.Stdin),
		Validator: portal.GetDefaultValidator(),
	}
}

func (m Menu) GetChoice() int {
	return m.choice
}

func (m Menu) Print() {
	cli.Cyanln("╔" + strings.Repeat("═", menuWidth+1) + "╗")
	cli.Cyanln("║" + m.CenterText("blogpage admin panel", menuWidth+1) + "║")
	cli.Cyanln("╠" + strings.Repeat("═", menuWidth+1) + "╣")

	m.PrintOption("1. Import a post from a markdown URL.", menuWidth)
	m.PrintOption("2. Create an account.", menuWidth)
	m.PrintOption("3. Promote an account.", menuWidth)
	m.PrintOption("4. Seed demo content.", menuWidth)
	m.PrintOption("5. Truncate the local database.", menuWidth)
	m.PrintOption("0. Exit.", menuWidth)

	cli.Cyanln("╚" + strings.Repeat("═", menuWidth+1) + "╝")
}

func (m Menu) PrintOption(text string, width int) {
	fmt.Printf("║ %-*s║\n", width-1, text)
}

func (m Menu) CenterText(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}

	left := (width - len(text)) / 2
	right := width - len(text) - left

	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func (m *Menu) PrintLine() {
	_, _ = m.Reader.ReadString('\n')
}

func (m *Menu) CaptureInput() error {
	m.Print()

	fmt.Print("\n  Choose an option: ")

	line, err := m.Reader.ReadString('\n')

	if err != nil && line == "" {
		return fmt.Errorf("could not read the option: %v", err)
	}

	line = strings.TrimSpace(line)

	if line == "" {
		m.choice = 0
		return nil
	}

	choice, err := strconv.Atoi(line)

	if err != nil {
		return fmt.Errorf("the given option [%s] is not a number", line)
	}

	m.choice = choice

	return nil
}

func (m Menu) CaptureAccountName() (string, error) {
	return m.capture("Account name")
}

func (m Menu) CaptureEmail() (string, error) {
	return m.capture("Email")
}

func (m Menu) CapturePassword() (string, error) {
	return m.capture("Password")
}

func (m Menu) CaptureRole() (string, error) {
	return m.capture("Role [ADMIN, WRITER, USER]")
}

func (m Menu) CapturePostURL() (PostInput, error) {
	url, err := m.capture("Markdown URL")

	if err != nil {
		return PostInput{}, err
	}

	input := PostInput{Url: url}

	if rejected, err := m.Validator.Rejects(input); rejected {
		return PostInput{}, fmt.Errorf("the given URL [%s] is invalid: %v", url, err)
	}

	return input, nil
}

func (m Menu) capture(prompt string) (string, error) {
	fmt.Printf("  %s: ", prompt)

	line, err := m.Reader.ReadString('\n')

	if err != nil && line == "" {
		return "", fmt.Errorf("could not read the %s: %v", strings.ToLower(prompt), err)
	}

	line = strings.TrimSpace(line)

	if line == "" {
		return "", fmt.Errorf("the %s cannot be empty", strings.ToLower(prompt))
	}

	return line, nil
}
