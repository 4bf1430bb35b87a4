// Package snapshot reads and writes player save files. A save file is a JSON
// object keyed by player id:
//
//	{"1234": {"money": 100, "items": {"Basic Rod": 1}, "current_rod": "Basic Rod",
//	          "fish_caught": {}, "total_catches": 0}}
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FishingBot_Go/internal/domain"
)

// Indent matches the layout of existing save files.
const Indent = "    "

// record is the wire form of one player. Pointers distinguish a missing field
// from a zero value.
type record struct {
	Money        *int           `json:"money" validate:"required,min=0"`
	Items        map[string]int `json:"items" validate:"required,dive,keys,required,endkeys,min=0"`
	CurrentRod   *string        `json:"current_rod" validate:"required,min=1"`
	FishCaught   map[string]int `json:"fish_caught" validate:"required,dive,keys,required,endkeys,min=0"`
	TotalCatches *int           `json:"total_catches" validate:"required,min=0"`
	TotalCasts   int            `json:"total_casts,omitempty" validate:"min=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Export renders a single player's save file.
func Export(p *domain.Player) ([]byte, error) {
	if p == nil || p.ID == "" {
		return nil, domain.ErrPlayerIDMissing
	}

	doc := map[string]*domain.Player{p.ID: p}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode save file: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Import extracts playerID's record from a save file. Each way the file can
// be unusable maps to its own error: ErrMalformedSnapshot when the content is
// not a JSON object, ErrSnapshotMissingPlayer when the id is absent, and
// ErrSnapshotIncomplete when a required field is missing or invalid.
func Import(playerID string, data []byte) (*domain.Player, error) {
	if playerID == "" {
		return nil, domain.ErrPlayerIDMissing
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSnapshot, err)
	}

	raw, ok := doc[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSnapshotMissingPlayer, playerID)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, fmt.Errorf("%w: field %s has the wrong type", domain.ErrSnapshotIncomplete, typeErr.Field)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSnapshotIncomplete, err)
	}
	if err := validate.Struct(rec); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSnapshotIncomplete, describe(err))
	}

	p := &domain.Player{
		ID:           playerID,
		Money:        *rec.Money,
		Items:        nonZero(rec.Items),
		CurrentRod:   *rec.CurrentRod,
		FishCaught:   nonZero(rec.FishCaught),
		TotalCatches: *rec.TotalCatches,
		TotalCasts:   rec.TotalCasts,
	}
	return p, nil
}

// nonZero drops zero counts; an absent key already means zero.
func nonZero(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}

// describe lists the offending fields in a stable order.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	seen := make(map[string]string, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "record.")
		if e.Tag() == "required" {
			seen[field] = field + " is missing"
		} else {
			seen[field] = field + " is invalid"
		}
	}

	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, seen[f])
	}
	return strings.Join(msgs, ", ")
}
