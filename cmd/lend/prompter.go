package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/lend-network/lend-daemon/internal/core/ports"
)

type terminalPrompter struct {
	reader *bufio.Reader
}

func newTerminalPrompter() ports.SecretPrompter {
	return &terminalPrompter{reader: bufio.NewReader(os.Stdin)}
}

func (p *terminalPrompter) Secret(label string) (string, error) {
	fmt.Printf("Enter %s: ", label)

	// Secrets are read without echo when stdin is a real terminal.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(secret)), nil
	}

	line, err := p.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *terminalPrompter) RecoveryPhrase() ([]string, error) {
	fmt.Print("Enter recovery phrase: ")
	line, err := p.reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

func (p *terminalPrompter) Choose(label string, options []string) (int, error) {
	fmt.Println(label)
	for i, option := range options {
		fmt.Printf("  %d) %s\n", i+1, option)
	}

	for {
		fmt.Print("> ")
		line, err := p.reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Println("pick one of the listed options")
			continue
		}
		return choice - 1, nil
	}
}

func (p *terminalPrompter) Show(message string) {
	fmt.Println()
	fmt.Println(message)
	fmt.Println()
}
