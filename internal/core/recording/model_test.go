package recording

import (
	"encoding/json"
	"testing"
)

func TestParseFlag(t *testing.T) {
	cases := map[string]Flag{"true": FlagTrue, "false": FlagFalse, "": FlagUnknown, "TRUE": FlagUnknown, "1": FlagUnknown}
	for in, want := range cases {
		if got := ParseFlag(in); got != want {
			t.Errorf("ParseFlag(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestFlagJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A, B, C Flag
	}{FlagTrue, FlagFalse, FlagUnknown})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"A":true,"B":false,"C":null}`; got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}

	var v struct{ A, B, C Flag }
	if err := json.Unmarshal([]byte(`{"A":"true","B":false,"C":"yes"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.A != FlagTrue || v.B != FlagFalse || v.C != FlagUnknown {
		t.Fatalf("unmarshal = %+v", v)
	}
}
