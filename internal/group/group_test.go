package group

import (
	"reflect"
	"testing"

	"github.com/alexanderjkslfj/nicebot/internal/directive"
)

func pairs(kvs ...string) []directive.Pair {
	if len(kvs)%2 != 0 {
		panic("pairs expects key, value, key, value, ...")
	}
	ps := make([]directive.Pair, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		ps = append(ps, directive.Pair{Key: kvs[i], Value: kvs[i+1]})
	}
	return ps
}

func TestS4_SpecificAgentSuppressesStarGroup(t *testing.T) {
	input := pairs(
		"user-agent", "specificbot",
		"disallow", "/x",
		"user-agent", "*",
		"allow", "/",
	)

	got := Select(input, "specificbot", false)
	want := []Rule{{Allow: false, Pattern: "/x"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select(specific) = %+v, want %+v", got, want)
	}
}

func TestS4_UnattunedOnlyConsidersStarGroup(t *testing.T) {
	input := pairs(
		"user-agent", "specificbot",
		"disallow", "/x",
		"user-agent", "*",
		"allow", "/",
	)

	got := Select(input, "", false)
	want := []Rule{{Allow: true, Pattern: "/"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select(unattuned) = %+v, want %+v", got, want)
	}
}

func TestSelect_StarGroupOnlyWhenNoSpecificMatch(t *testing.T) {
	input := pairs(
		"user-agent", "*",
		"disallow", "/a",
		"user-agent", "otherbot",
		"allow", "/b",
	)

	got := Select(input, "mybot", false)
	want := []Rule{{Allow: false, Pattern: "/a"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select() = %+v, want %+v", got, want)
	}
}

func TestSelect_AgentMatchIsSubstring(t *testing.T) {
	input := pairs(
		"user-agent", "SpecificBot/2.0",
		"disallow", "/x",
	)

	got := Select(input, "specificbot", false)
	want := []Rule{{Allow: false, Pattern: "/x"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select() = %+v, want %+v", got, want)
	}
}

func TestNormalize_DollarBecomesEndAnchor(t *testing.T) {
	input := pairs("user-agent", "*", "disallow", "/x$")
	got := Select(input, "", false)
	if len(got) != 1 || got[0].Pattern != "/x\x00" {
		t.Fatalf("Select() = %+v, want pattern ending in end-anchor", got)
	}
}

func TestNormalize_PercentDecodeOptIn(t *testing.T) {
	input := pairs("user-agent", "*", "disallow", "/a%20b")

	decoded := Select(input, "", true)
	if len(decoded) != 1 || decoded[0].Pattern != "/a b" {
		t.Errorf("Select(decodePercent=true) = %+v, want pattern '/a b'", decoded)
	}

	raw := Select(input, "", false)
	if len(raw) != 1 || raw[0].Pattern != "/a%20b" {
		t.Errorf("Select(decodePercent=false) = %+v, want pattern '/a%%20b'", raw)
	}
}

func TestNormalize_InvalidPercentEscapeKeepsRawValue(t *testing.T) {
	input := pairs("user-agent", "*", "disallow", "/a%zzb")

	got := Select(input, "", true)
	if len(got) != 1 || got[0].Pattern != "/a%zzb" {
		t.Errorf("Select() = %+v, want raw pattern on decode failure", got)
	}
}

func TestSelect_RulesBeforeAnyGroupAreIgnored(t *testing.T) {
	input := pairs("disallow", "/orphan", "user-agent", "*", "allow", "/")
	got := Select(input, "", false)
	want := []Rule{{Allow: true, Pattern: "/"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select() = %+v, want %+v", got, want)
	}
}
