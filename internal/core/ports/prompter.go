package ports

// SecretPrompter is the terminal boundary of the credential session flow.
// Implementations read user input, the flow never touches the terminal
// directly.
type SecretPrompter interface {
	// Secret reads a secret labelled as given, without echo.
	Secret(label string) (string, error)
	// RecoveryPhrase reads a whitespace separated recovery phrase.
	RecoveryPhrase() ([]string, error)
	// Choose presents the given options and returns the index of the one
	// picked by the user.
	Choose(label string, options []string) (int, error)
	// Show prints a message for the user, out of the logging stream.
	Show(message string)
}
