package tradebook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJournal = `{"trade_id":1,"strategy_id":1,"brokerage":"IBKR","account":"U1234567","strategy":["WHEEL"],"security":"STOCK","date":"2025-01-10","symbol":"AAPL","action":"BUY","quantity":100,"fees":5,"price_per_share":150}
{"trade_id":2,"strategy_id":1,"brokerage":"IBKR","account":"U1234567","strategy":["WHEEL"],"security":"OPTION","date":"2025-01-15","symbol":"AAPL","action":"SELL","sub_action":"OPEN","quantity":1,"fees":1,"expiration_date":"2025-02-21","strike":160,"premium":2,"option_type":"CALL"}
{"trade_id":3,"strategy_id":1,"brokerage":"IBKR","account":"U1234567","strategy":["INCOME"],"security":"DIVIDEND","date":"2025-02-14","symbol":"KO","action":"DIVIDEND","quantity":0,"fees":0,"dividend_amount":0.5}
`

func TestDecodeBook(t *testing.T) {
	book, err := DecodeBook(strings.NewReader(sampleJournal))
	require.NoError(t, err)
	require.Equal(t, 3, book.Len())

	var kinds []SecurityType
	for _, ev := range book.Events() {
		kinds = append(kinds, ev.Kind())
	}
	assert.Equal(t, []SecurityType{SecStock, SecOption, SecDividend}, kinds)

	// The journal feeds the reducer directly.
	results, err := book.Profits()
	require.NoError(t, err)
	assert.Equal(t, "-14806", results["AAPL"].Profit.Decimal().String())
}

func TestDecodeBookCanonicalizes(t *testing.T) {
	// Wire values in lower case are accepted and come out canonical.
	line := `{"trade_id":9,"strategy_id":1,"brokerage":"ibkr","account":"U1234567","strategy":["wheel"],"security":"stock","date":"2025-01-10","symbol":"aapl","action":"buy","quantity":10,"fees":0,"price_per_share":150}`
	book, err := DecodeBook(strings.NewReader(line + "\n"))
	require.NoError(t, err)
	require.Equal(t, 1, book.Len())
	for _, ev := range book.Events() {
		assert.Equal(t, "AAPL", ev.Symbol())
		assert.Equal(t, SecStock, ev.Kind())
	}
}

func TestDecodeBookKeepsValidLines(t *testing.T) {
	journal := sampleJournal +
		"{not json}\n" +
		`{"trade_id":4,"security":"BOND"}` + "\n" +
		`{"trade_id":5,"strategy_id":1,"brokerage":"IBKR","account":"U1234567","strategy":["WHEEL"],"security":"STOCK","date":"2025-03-01","symbol":"AAPL","action":"BUY","quantity":-1,"fees":0,"price_per_share":150}` + "\n"

	book, err := DecodeBook(strings.NewReader(journal))
	require.Error(t, err)
	assert.Equal(t, 3, book.Len(), "valid lines survive bad ones")
	assert.Contains(t, err.Error(), "line 4")
	assert.Contains(t, err.Error(), "line 5")
	assert.Contains(t, err.Error(), "line 6")
	assert.Contains(t, err.Error(), "quantity must not be negative")
}

func TestDecodeBookSkipsBlankLines(t *testing.T) {
	book, err := DecodeBook(strings.NewReader("\n" + sampleJournal + "\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, book.Len())
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := NewBook(
		buy("2025-01-10", "AAPL", 100, 150, 5),
		option("2025-01-15", "AAPL", Call, ActSell, SubOpen, 1, 160, 2, 1),
		dividend("2025-02-14", "KO", 0.5, 0),
	)

	var buf bytes.Buffer
	require.NoError(t, EncodeBook(&buf, original))
	assert.Equal(t, original.Len(), strings.Count(buf.String(), "\n"), "one line per record")

	decoded, err := DecodeBook(&buf)
	require.NoError(t, err)
	require.Equal(t, original.Len(), decoded.Len())

	var got []TradeEvent
	for _, ev := range decoded.Events() {
		got = append(got, ev)
	}
	i := 0
	for _, want := range original.Events() {
		assert.True(t, got[i].Equal(want), "record %d differs after round trip", i)
		i++
	}
}
