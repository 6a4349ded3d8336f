// Package listfile reads the line-oriented input files feeding a batch run:
// one private key or one domain candidate per line.
package listfile

import (
	"bufio"
	"context"
	"os"
	"strings"

	"soulclaim/internal/domain/repository"

	"github.com/pkg/errors"
)

// Private keys are 64 hex characters, optionally 0x-prefixed.
const minKeyLength = 64

type credentialRepository struct {
	path string
}

// NewCredentialRepository reads private keys from the file at path.
func NewCredentialRepository(path string) repository.CredentialRepository {
	return &credentialRepository{path: path}
}

func (r *credentialRepository) LoadKeys(_ context.Context) ([]string, error) {
	lines, err := readLines(r.path)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) >= minKeyLength {
			keys = append(keys, line)
		}
	}

	return keys, nil
}

type domainPoolRepository struct {
	path string
}

// NewDomainPoolRepository reads domain candidates from the file at path.
func NewDomainPoolRepository(path string) repository.DomainPoolRepository {
	return &domainPoolRepository{path: path}
}

func (r *domainPoolRepository) LoadDomains(_ context.Context) ([]string, error) {
	return readLines(r.path)
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return lines, nil
}
