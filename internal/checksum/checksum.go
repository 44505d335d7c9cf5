package checksum

import (
	"crypto/sha256"
	"fmt"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateContentHash генерирует SHA256 хеш статьи
// Формула: SHA256(url|header|content)
func (g *Generator) GenerateContentHash(url, header, content string) string {
	// Конкатенируем: url|header|content
	payload := fmt.Sprintf("%s|%s|%s", url, header, content)

	// Вычисляем SHA256
	hash := sha256.Sum256([]byte(payload))

	// Возвращаем hex
	return fmt.Sprintf("%x", hash)
}

// VerifyContentHash проверяет соответствие хеша
func (g *Generator) VerifyContentHash(expectedHash, url, header, content string) bool {
	computed := g.GenerateContentHash(url, header, content)
	return computed == expectedHash
}
