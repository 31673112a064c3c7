package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PartsKind tags the shape of a word's parts
type PartsKind string

const (
	PartsNone      PartsKind = "none"
	PartsVerb      PartsKind = "verb"
	PartsAdjective PartsKind = "adjective"
	PartsNoun      PartsKind = "noun"
	PartsUnknown   PartsKind = "unknown"
)

// VerbParts holds present-tense conjugation forms
type VerbParts struct {
	Je   string `json:"je"`
	Tu   string `json:"tu"`
	Il   string `json:"il"`
	Nous string `json:"nous"`
	Vous string `json:"vous"`
	Ils  string `json:"ils"`
}

// AdjectiveParts holds agreement forms
type AdjectiveParts struct {
	Feminine        string `json:"feminine"`
	MasculinePlural string `json:"masculine_plural,omitempty"`
	FemininePlural  string `json:"feminine_plural,omitempty"`
}

// NounParts holds the article and plural form
type NounParts struct {
	Article string `json:"article,omitempty"`
	Plural  string `json:"plural,omitempty"`
}

// WordParts is a tagged union over the part-of-speech variants.
// Shapes that match none of the known variants are quarantined in Raw
// rather than dropped, so they round-trip through the store unchanged.
type WordParts struct {
	Kind      PartsKind
	Verb      *VerbParts
	Adjective *AdjectiveParts
	Noun      *NounParts
	Raw       json.RawMessage
}

// DecodeParts classifies a raw parts object by its key shape.
func DecodeParts(raw []byte) (WordParts, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return WordParts{Kind: PartsNone}, nil
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return WordParts{}, fmt.Errorf("parts must be a JSON object: %w", err)
	}
	if len(keys) == 0 {
		return WordParts{Kind: PartsNone}, nil
	}

	switch {
	case hasKey(keys, "je"):
		var v VerbParts
		if err := json.Unmarshal(raw, &v); err != nil {
			return WordParts{Kind: PartsUnknown, Raw: cloneRaw(raw)}, nil
		}
		return WordParts{Kind: PartsVerb, Verb: &v}, nil
	case hasKey(keys, "feminine"):
		var a AdjectiveParts
		if err := json.Unmarshal(raw, &a); err != nil {
			return WordParts{Kind: PartsUnknown, Raw: cloneRaw(raw)}, nil
		}
		return WordParts{Kind: PartsAdjective, Adjective: &a}, nil
	case hasKey(keys, "article") || hasKey(keys, "plural"):
		var n NounParts
		if err := json.Unmarshal(raw, &n); err != nil {
			return WordParts{Kind: PartsUnknown, Raw: cloneRaw(raw)}, nil
		}
		return WordParts{Kind: PartsNoun, Noun: &n}, nil
	}

	return WordParts{Kind: PartsUnknown, Raw: cloneRaw(raw)}, nil
}

func hasKey(keys map[string]json.RawMessage, k string) bool {
	_, ok := keys[k]
	return ok
}

func cloneRaw(raw []byte) json.RawMessage {
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}

// MarshalJSON emits the active variant as a plain object
func (p WordParts) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PartsVerb:
		return json.Marshal(p.Verb)
	case PartsAdjective:
		return json.Marshal(p.Adjective)
	case PartsNoun:
		return json.Marshal(p.Noun)
	case PartsUnknown:
		return p.Raw, nil
	default:
		return []byte("{}"), nil
	}
}

// UnmarshalJSON decodes through the same classification as DecodeParts
func (p *WordParts) UnmarshalJSON(raw []byte) error {
	decoded, err := DecodeParts(raw)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

// Value implements driver.Valuer for the JSONB parts column
func (p WordParts) Value() (driver.Value, error) {
	b, err := p.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for the JSONB parts column
func (p *WordParts) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = WordParts{Kind: PartsNone}
		return nil
	case []byte:
		return p.UnmarshalJSON(v)
	case string:
		return p.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported parts column type %T", src)
	}
}
