package main

import (
	"bufio"
	"os"
	"strings"
)

// readLines reads one name per line, skipping blank lines and # comments.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

// inputNames returns args, or the lines of the --file flag when it is set.
func inputNames(file string, args []string) ([]string, error) {
	if file == "" {
		return args, nil
	}
	names, err := readLines(file)
	if err != nil {
		return nil, err
	}
	return append(names, args...), nil
}
