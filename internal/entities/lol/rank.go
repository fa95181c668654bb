package lol

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/custom-lobby/internal/errors"
)

// Tier is a ranked ladder tier; the zero value is Unranked
type Tier int

// Ladder tiers in ascending order
const (
	TierUnranked Tier = iota
	TierIron
	TierBronze
	TierSilver
	TierGold
	TierPlatinum
	TierEmerald
	TierDiamond
	TierMaster
	TierGrandmaster
	TierChallenger
)

var tierNames = map[Tier]string{
	TierUnranked:    "Unranked",
	TierIron:        "Iron",
	TierBronze:      "Bronze",
	TierSilver:      "Silver",
	TierGold:        "Gold",
	TierPlatinum:    "Platinum",
	TierEmerald:     "Emerald",
	TierDiamond:     "Diamond",
	TierMaster:      "Master",
	TierGrandmaster: "Grandmaster",
	TierChallenger:  "Challenger",
}

// tierAliases accepts the spellings players actually type
var tierAliases = map[string]Tier{
	"u":            TierUnranked,
	"ur":           TierUnranked,
	"unranked":     TierUnranked,
	"i":            TierIron,
	"iron":         TierIron,
	"b":            TierBronze,
	"bronze":       TierBronze,
	"s":            TierSilver,
	"silver":       TierSilver,
	"g":            TierGold,
	"gold":         TierGold,
	"p":            TierPlatinum,
	"plat":         TierPlatinum,
	"platinum":     TierPlatinum,
	"e":            TierEmerald,
	"emerald":      TierEmerald,
	"d":            TierDiamond,
	"diamond":      TierDiamond,
	"m":            TierMaster,
	"master":       TierMaster,
	"gr":           TierGrandmaster,
	"grandmaster":  TierGrandmaster,
	"grand master": TierGrandmaster,
	"c":            TierChallenger,
	"challenger":   TierChallenger,
}

// String returns the display name of the tier
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "Tier(" + strconv.Itoa(int(t)) + ")"
}

// Ranked tiers are split into divisions 4 (lowest) to 1
const (
	minDivision = 1
	maxDivision = 4
)

// Rank is a tier plus an optional division. Division 0 means none was given.
type Rank struct {
	Tier     Tier
	Division int
}

// ParseRank reads "platinum 4", "gr 1", "unranked" and similar.
func ParseRank(s string) (Rank, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return Rank{}, errors.InvalidArgument("rank is required")
	}

	name := raw
	division := 0
	if last := raw[len(raw)-1]; last >= '0' && last <= '9' {
		name = strings.TrimSpace(raw[:len(raw)-1])
		division = int(last - '0')
	}

	tier, ok := tierAliases[name]
	if !ok {
		return Rank{}, errors.InvalidArgumentf("unknown rank %q", s)
	}
	if tier != TierUnranked {
		// Every ranked tier is entered with a division, apex tiers use 1
		if name == raw {
			return Rank{}, errors.InvalidArgumentf("rank %q is missing a division", s)
		}
		vb := errors.NewValidationBuilder()
		errors.ValidateRange("division", division, minDivision, maxDivision, vb)
		if err := vb.Build(); err != nil {
			return Rank{}, errors.Wrapf(err, "invalid rank %q", s)
		}
	}

	return Rank{Tier: tier, Division: division}, nil
}

// String renders the rank as shown in the team listing, e.g. "Gold 2"
func (r Rank) String() string {
	if r.Division == 0 {
		return r.Tier.String()
	}
	return r.Tier.String() + " " + strconv.Itoa(r.Division)
}
