package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-ageclock/internal/config"
)

// ErrNoBirthDate is returned when a vCard stream carries no usable BDAY.
var ErrNoBirthDate = errors.New(config.ErrNoBirthDate)

// Profile is the subject extracted from a vCard stream: a display name and
// a full-year birth date.
type Profile struct {
	Name      string
	BirthDate time.Time
}

// ProfileFromVCard scans a vCard stream and returns the first card carrying
// a parseable BDAY. Malformed cards are skipped rather than failing the
// whole stream, to maximize data recovery.
func ProfileFromVCard(ctx context.Context, r io.Reader) (*Profile, error) {
	decoder := vcard.NewDecoder(r)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, err := ParseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		return &Profile{Name: name, BirthDate: birthDate}, nil
	}

	return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, ErrNoBirthDate)
}
