// Package idgenerator builds reference codes made of a prefix, the business
// date and a base64-encoded UUID, for example TRF-20250210-3q2+7w.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/erpcore/go-fin-ledger/internal/common"
)

//go:generate mockgen -source=id_generator.go -destination=mock/id_generator.go -package=mock
type Generator interface {
	Generate(prefixes ...string) string
	GenerateReference(prefix string, date time.Time) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

// Generate returns prefix-<epoch millis><uuid>, without the prefix part when
// no prefix is given.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	epocTime := common.Now().UnixMilli()
	encodedUUID := rawURLEncodedUUID(uuid.New())

	if prefix == "" {
		return fmt.Sprintf("%d%s", epocTime, encodedUUID)
	}
	return fmt.Sprintf("%s-%d%s", prefix, epocTime, encodedUUID)
}

// GenerateReference is used for transfer references shared by both legs.
func (g *IDGenerator) GenerateReference(prefix string, date time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, date.Format(common.DateFormatYYYYMMDDWithoutDash), rawURLEncodedUUID(uuid.New()))
}

func rawURLEncodedUUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}
