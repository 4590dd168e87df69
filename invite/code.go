// Package invite issues and redeems the short codes that let a counterparty
// join an agreement they were not preselected for.
package invite

import (
	"crypto/rand"
	"fmt"
)

// codeAlphabet omits visually ambiguous characters (I, L, O, 0, 1) since
// codes are passed along verbally or retyped.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// Generator produces invite codes from crypto/rand. It satisfies the code
// issuer hook on the agreement lifecycle service.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

func (Generator) NewCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("invite: read random: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
