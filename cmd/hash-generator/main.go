// Command hash-generator prints bcrypt digests for the given passwords, for
// seeding databases by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phrazzld/blog-api/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", auth.DefaultBcryptCost, "bcrypt cost factor")
	flag.Parse()

	passwords := flag.Args()
	if len(passwords) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost n] password...")
		os.Exit(2)
	}

	hasher, err := auth.NewBcryptHasher(*cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid cost: %v\n", err)
		os.Exit(1)
	}

	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}
}
