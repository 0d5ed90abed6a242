// Command hash-generator prints bcrypt hashes for seeding users directly in
// the database. Passwords come from the arguments, or one per line on stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/books-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if err := run(os.Stdout, os.Stdin, *cost, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "hash-generator: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, r io.Reader, cost int, passwords []string) error {
	hasher := auth.NewBcryptHasher(cost)

	if len(passwords) == 0 {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				passwords = append(passwords, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read passwords: %w", err)
		}
	}

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := fmt.Fprintln(w, hash); err != nil {
			return err
		}
	}
	return nil
}
