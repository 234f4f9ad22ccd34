package pix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("happy: round trip", func(t *testing.T) {
		in := petShopPayload()
		out, err := in.Build()
		require.NoError(t, err)

		got, err := Decode(out)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("happy: default transaction id decodes as empty", func(t *testing.T) {
		out, err := Encode("test@email.com", "Loja Teste", "Sao Paulo", "25.50")
		require.NoError(t, err)

		got, err := Decode(out)
		require.NoError(t, err)
		assert.Empty(t, got.TransactionID)
		assert.Equal(t, "25.50", got.Amount)
	})

	t.Run("happy: surrounding whitespace and lowercase CRC", func(t *testing.T) {
		out, err := petShopPayload().Build()
		require.NoError(t, err)

		_, err = Decode(" " + out[:len(out)-4] + strings.ToLower(out[len(out)-4:]) + "\n")
		assert.NoError(t, err)
	})

	t.Run("bad: tampered amount", func(t *testing.T) {
		out, err := petShopPayload().Build()
		require.NoError(t, err)

		tampered := strings.Replace(out, "540510.00", "540590.00", 1)
		_, err = Decode(tampered)
		assert.ErrorIs(t, err, ErrChecksumMismatch)
	})

	t.Run("bad: too short", func(t *testing.T) {
		_, err := Decode("6304")
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("bad: missing CRC field", func(t *testing.T) {
		_, err := Decode("0002015802BRABCD")
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})

	t.Run("bad: foreign GUI", func(t *testing.T) {
		account, err := formatFields(Field{ID: "00", Value: "com.example"}, Field{ID: "01", Value: "key"})
		require.NoError(t, err)
		body, err := formatFields(
			Field{ID: "00", Value: "01"},
			Field{ID: "26", Value: account},
			Field{ID: "54", Value: "1.00"},
		)
		require.NoError(t, err)
		body += "6304"

		_, err = Decode(body + Checksum(body))
		assert.ErrorIs(t, err, ErrNotPix)
	})
}
