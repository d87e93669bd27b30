// One-off: go run scripts/genkey.go [password]
// With no argument it prints a random API key; with an argument it
// prints the bcrypt hash of that password.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) > 1 {
		h, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), 10)
		if err != nil {
			panic(err)
		}
		fmt.Print(string(h))
		return
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	fmt.Print(hex.EncodeToString(b))
}
