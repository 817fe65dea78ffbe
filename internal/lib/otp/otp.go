// Package otp генерирует одноразовые числовые коды для восстановления пароля.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeLength — длина одноразового кода в цифрах.
const CodeLength = 6

// Generate возвращает случайный шестизначный код из криптографического
// источника случайности. Код может начинаться с нуля.
func Generate() (string, error) {
	const op = "otp.Generate"
	var limit big.Int
	limit.Exp(big.NewInt(10), big.NewInt(CodeLength), nil)
	n, err := rand.Int(rand.Reader, &limit)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Sprintf("%0*d", CodeLength, n), nil
}
