package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInvoiceNumber gera um número no formato INV-AAAAMM-XXXXXXXX
func GenerateInvoiceNumber(now time.Time) (string, error) {
	id, err := gonanoid.Generate(characters, 8)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("INV-%s-%s", now.UTC().Format("200601"), id), nil
}
