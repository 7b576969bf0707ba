package qrcode

import (
	"testing"

	qr "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCorrectionLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    CorrectionLevel
		wantErr bool
	}{
		{input: "L", want: CorrectionL},
		{input: "M", want: CorrectionM},
		{input: "Q", want: CorrectionQ},
		{input: "H", want: CorrectionH},
		{input: "", wantErr: true},
		{input: "h", wantErr: true},
		{input: "A", wantErr: true},
		{input: "HH", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCorrectionLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCorrectionLevel)
				assert.Equal(t, MsgInvalidCorrectionLevel, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestRecoveryLevel(t *testing.T) {
	assert.Equal(t, qr.Low, CorrectionL.RecoveryLevel())
	assert.Equal(t, qr.Medium, CorrectionM.RecoveryLevel())
	assert.Equal(t, qr.High, CorrectionQ.RecoveryLevel())
	assert.Equal(t, qr.Highest, CorrectionH.RecoveryLevel())
}

func TestRecoveryLevelPanicsOnUnvalidatedValue(t *testing.T) {
	assert.PanicsWithValue(t, `unsupported error correction level: 'X'`, func() {
		CorrectionLevel('X').RecoveryLevel()
	})
	assert.Panics(t, func() {
		var zero CorrectionLevel
		zero.RecoveryLevel()
	})
}
