package tradebook

import "testing"

func TestParseSecurityType(t *testing.T) {
	testCases := []struct {
		in      string
		want    SecurityType
		wantErr bool
	}{
		{in: "STOCK", want: SecStock},
		{in: "stock", want: SecStock},
		{in: " etf ", want: SecETF},
		{in: "Option", want: SecOption},
		{in: "DIVIDEND", want: SecDividend},
		{in: "BOND", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseSecurityType(tc.in)
		if tc.wantErr != (err != nil) {
			t.Errorf("ParseSecurityType(%q): err = %v, wantErr = %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseSecurityType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAction(t *testing.T) {
	testCases := []struct {
		in      string
		want    Action
		wantErr bool
	}{
		{in: "BUY", want: ActBuy},
		{in: "sell", want: ActSell},
		{in: "OPTION EXPIRED", want: ActExpired},
		{in: "OPTION_EXPIRED", want: ActExpired},
		{in: "option_assigned", want: ActAssigned},
		{in: "OPTION EXERCISED", want: ActExercised},
		{in: "dividend", want: ActDividend},
		{in: "SHORT", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseAction(tc.in)
		if tc.wantErr != (err != nil) {
			t.Errorf("ParseAction(%q): err = %v, wantErr = %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseAction(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseSubAction(t *testing.T) {
	if got, err := ParseSubAction(""); err != nil || got != SubNone {
		t.Errorf("empty sub-action should parse to SubNone, got %q err %v", got, err)
	}
	if got, err := ParseSubAction("open"); err != nil || got != SubOpen {
		t.Errorf("ParseSubAction(open) = %q err %v", got, err)
	}
	if _, err := ParseSubAction("HALF"); err == nil {
		t.Error("ParseSubAction(HALF): want error")
	}
}

func TestValidActionSets(t *testing.T) {
	testCases := []struct {
		security SecurityType
		action   Action
		want     bool
	}{
		{SecStock, ActBuy, true},
		{SecStock, ActSell, true},
		{SecStock, ActDividend, false},
		{SecStock, ActAssigned, false},
		{SecETF, ActBuy, true},
		{SecETF, ActExpired, false},
		{SecDividend, ActDividend, true},
		{SecDividend, ActBuy, false},
		{SecOption, ActBuy, true},
		{SecOption, ActSell, true},
		{SecOption, ActExpired, true},
		{SecOption, ActAssigned, true},
		{SecOption, ActExercised, true},
		{SecOption, ActDividend, false},
	}
	for _, tc := range testCases {
		if got := tc.security.Allows(tc.action); got != tc.want {
			t.Errorf("%s.Allows(%s) = %v, want %v", tc.security, tc.action, got, tc.want)
		}
	}
}
