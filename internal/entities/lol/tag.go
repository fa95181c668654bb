// Package lol holds the League of Legends domain types used by the lobby:
// champions and their role tags, the champion catalog, players and teams.
package lol

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

// Tag is a champion role as published by Data Dragon
type Tag string

// Role tags
const (
	TagMarksman Tag = "Marksman"
	TagTank     Tag = "Tank"
	TagFighter  Tag = "Fighter"
	TagSupport  Tag = "Support"
	TagAssassin Tag = "Assassin"
	TagMage     Tag = "Mage"
)

var allTags = []Tag{TagMarksman, TagTank, TagFighter, TagSupport, TagAssassin, TagMage}

// AllTags returns every known tag in a fixed order.
func AllTags() []Tag {
	out := make([]Tag, len(allTags))
	copy(out, allTags)
	return out
}

// ParseTag matches a tag name case-insensitively.
func ParseTag(s string) (Tag, error) {
	trimmed := strings.TrimSpace(s)
	for _, t := range allTags {
		if strings.EqualFold(trimmed, string(t)) {
			return t, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown champion tag %q", s)
}

// String returns the tag name
func (t Tag) String() string {
	return string(t)
}

// RoleTargets maps a tag to the exact number of pool slots that must carry it
type RoleTargets map[Tag]int

// DefaultRoleTargets is the ARAM distribution for a ten champion pool.
func DefaultRoleTargets() RoleTargets {
	return RoleTargets{
		TagMarksman: 4,
		TagAssassin: 2,
		TagMage:     3,
		TagFighter:  2,
		TagSupport:  2,
		TagTank:     4,
	}
}

// ParseRoleTargets reads "Tank=4,Mage=3" style pairs.
func ParseRoleTargets(pairs map[string]int) (RoleTargets, error) {
	out := make(RoleTargets, len(pairs))
	for name, count := range pairs {
		tag, err := ParseTag(name)
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return nil, errors.InvalidArgumentf("role %s: count must not be negative, got %d", tag, count)
		}
		if _, dup := out[tag]; dup {
			return nil, errors.InvalidArgumentf("role %s is given more than once", tag)
		}
		out[tag] = count
	}
	return out, nil
}

// Tags returns the constrained tags sorted by name.
func (r RoleTargets) Tags() []Tag {
	tags := make([]Tag, 0, len(r))
	for t := range r {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// String renders the targets in a stable order, e.g. "Mage=3,Tank=4"
func (r RoleTargets) String() string {
	parts := make([]string, 0, len(r))
	for _, t := range r.Tags() {
		parts = append(parts, string(t)+"="+strconv.Itoa(r[t]))
	}
	return strings.Join(parts, ",")
}
