package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewPhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "ten digits", raw: "0501234567"},
		{name: "all zeros", raw: "0000000000"},
		{name: "too short", raw: "123456789", wantErr: true},
		{name: "too long", raw: "12345678901", wantErr: true},
		{name: "letters", raw: "12345abcde", wantErr: true},
		{name: "leading plus", raw: "+123456789", wantErr: true},
		{name: "decimal point", raw: "12345.6789", wantErr: true},
		{name: "spaces", raw: "123 456 78", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "non-ascii digits", raw: "١٢٣٤٥٦٧٨٩٠", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhone(tt.raw)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, MsgInvalidPhone, verr.Msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, phone.String())
		})
	}
}

func Test_ParseBirthday(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "regular date", raw: "24.08.1991"},
		{name: "leap day in leap year", raw: "29.02.2024"},
		{name: "first of year", raw: "01.01.2000"},
		{name: "day out of range", raw: "31.02.2020", wantErr: true},
		{name: "leap day in common year", raw: "29.02.2023", wantErr: true},
		{name: "iso layout", raw: "2024-01-01", wantErr: true},
		{name: "single digit parts", raw: "1.1.2024", wantErr: true},
		{name: "two digit year", raw: "01.01.24", wantErr: true},
		{name: "slashes", raw: "01/01/2024", wantErr: true},
		{name: "month 13", raw: "01.13.2024", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birthday, err := ParseBirthday(tt.raw)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, MsgInvalidBirthday, verr.Msg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, birthday.String())
			assert.Zero(t, birthday.Date().Hour())
		})
	}
}
