// Package ordernum generates human-readable order numbers.
package ordernum

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"souq/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultPrefix = "SQ"

// generator produces order numbers of the form PREFIX-YYYYMMDD-XXXXXXXX where
// the suffix is four crypto-random bytes. Uniqueness is not guaranteed here;
// the database's unique index is the arbiter and callers retry on collision.
type generator struct {
	prefix string
	now    func() time.Time
}

// NewGenerator is the constructor for generator.
func NewGenerator(prefix string) service.OrderNumberGenerator {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &generator{
		prefix: prefix,
		now:    time.Now,
	}
}

// Next returns a new candidate order number.
func (g *generator) Next() (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return fmt.Sprintf("%s-%s-%s",
		g.prefix,
		g.now().UTC().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(suffix)),
	), nil
}
