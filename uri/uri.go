// Package uri encodes catalog entities into opaque navigation tokens and back.
//
// A token has the shape "atres:{kind}:{json}". Only this package looks inside a token;
// everything else passes tokens around as plain strings.
package uri

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/atres-cli/atres/constant"
	"github.com/atres-cli/atres/source"
)

// Kind identifies the entity carried by a token.
type Kind string

const (
	KindStart    Kind = "start"
	KindCategory Kind = "category"
	KindProgram  Kind = "program"
	KindEpisode  Kind = "episode"
)

// Prefix is the literal every token starts with.
const Prefix = constant.Atres

const separator = ":"

var (
	ErrForeignPrefix = errors.New("token does not belong to this catalog")
	ErrUnknownKind   = errors.New("unknown token kind")
	ErrMalformed     = errors.New("malformed token")
)

// Entity is a decoded token. Exactly one of the pointers is set, matching Kind,
// except for KindStart which carries nothing.
type Entity struct {
	Kind     Kind
	Category *source.Category
	Program  *source.Program
	Episode  *source.Episode
}

// Start returns the token of the root page.
func Start() string {
	return Prefix + separator + string(KindStart)
}

// CategoryURI returns the token of a category page.
func CategoryURI(category *source.Category) (string, error) {
	return encode(KindCategory, category)
}

// ProgramURI returns the token of a program page.
func ProgramURI(program *source.Program) (string, error) {
	return encode(KindProgram, program)
}

// EpisodeURI returns the token of an episode page.
func EpisodeURI(episode *source.Episode) (string, error) {
	return encode(KindEpisode, episode)
}

// Encode serializes an entity into its token.
func Encode(e Entity) (string, error) {
	switch e.Kind {
	case KindStart:
		return Start(), nil
	case KindCategory:
		if e.Category == nil {
			return "", fmt.Errorf("%w: empty %s", ErrMalformed, e.Kind)
		}
		return CategoryURI(e.Category)
	case KindProgram:
		if e.Program == nil {
			return "", fmt.Errorf("%w: empty %s", ErrMalformed, e.Kind)
		}
		return ProgramURI(e.Program)
	case KindEpisode:
		if e.Episode == nil {
			return "", fmt.Errorf("%w: empty %s", ErrMalformed, e.Kind)
		}
		return EpisodeURI(e.Episode)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
}

// Decode parses a token back into the entity it was encoded from.
func Decode(token string) (Entity, error) {
	rest, ok := strings.CutPrefix(token, Prefix+separator)
	if !ok {
		return Entity{}, fmt.Errorf("%w: %q", ErrForeignPrefix, token)
	}

	kind, payload, _ := strings.Cut(rest, separator)
	e := Entity{Kind: Kind(kind)}

	var err error
	switch e.Kind {
	case KindStart:
		return e, nil
	case KindCategory:
		e.Category = &source.Category{}
		err = decode(payload, e.Category)
	case KindProgram:
		e.Program = &source.Program{}
		err = decode(payload, e.Program)
	case KindEpisode:
		e.Episode = &source.Episode{}
		err = decode(payload, e.Episode)
	default:
		return Entity{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	if err != nil {
		return Entity{}, fmt.Errorf("%w: %s: %w", ErrMalformed, kind, err)
	}

	return e, nil
}

// MustEncode is Encode for entities built in code, where a failure is a programming error.
func MustEncode(e Entity) string {
	token, err := Encode(e)
	if err != nil {
		panic(err)
	}
	return token
}

func encode(kind Kind, v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", kind, err)
	}
	return Prefix + separator + string(kind) + separator + string(payload), nil
}

func decode(payload string, v any) error {
	if payload == "" {
		return errors.New("empty payload")
	}
	return json.Unmarshal([]byte(payload), v)
}
