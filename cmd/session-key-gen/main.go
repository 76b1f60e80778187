package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
)

// Generates a fresh AES-256 session encryption key for
// SESSION_ENCRYPTION_KEY.
func main() {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate key: %v", err)
	}
	fmt.Println(hex.EncodeToString(key))
}
